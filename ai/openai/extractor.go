// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/recall/ai"
	"github.com/poiesic/recall/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ActionExtractor implements ai.ActionExtractor using OpenAI-compatible
// chat APIs with function calling.
type ActionExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// actionPayload is an internal type used for JSON unmarshaling.
// It matches the set_action_items parameter schema.
type actionPayload struct {
	Title string `json:"title"`
	Owner string `json:"owner"`
	Due   string `json:"due,omitempty"`
}

// actionList is the wrapper structure for the function-call arguments.
type actionList struct {
	Items []actionPayload `json:"items"`
}

// newActionExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newActionExtractor(config *ai.Config) (*ActionExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &ActionExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewActionExtractor creates a new action extractor using the provided
// configuration.
//
// Returns ai.ActionExtractor interface to enforce abstraction.
func NewActionExtractor(config *ai.Config) (ai.ActionExtractor, error) {
	return newActionExtractor(config)
}

// ExtractActions extracts structured action items from the transcript.
// The model is constrained to invoke set_action_items; arguments that do
// not parse against the schema are reported as ai.ErrMalformedResponse.
func (e *ActionExtractor) ExtractActions(ctx context.Context, transcript string) ([]core.ActionItem, error) {
	tools := []llms.Tool{
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        setActionItemsName,
				Description: "Record the action items found in a meeting transcript.",
				Parameters:  setActionItemsParameters,
			},
		},
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(extractionPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(transcript),
			},
		},
	}

	response, err := e.client.GenerateContent(ctx, content,
		llms.WithTemperature(0.0),
		llms.WithTools(tools),
		llms.WithToolChoice(map[string]any{
			"type":     "function",
			"function": map[string]any{"name": setActionItemsName},
		}),
	)
	if err != nil {
		e.logger.Error("failed to generate action items", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		return nil, fmt.Errorf("%w: no choices", ai.ErrEmptyResponse)
	}

	arguments := functionArguments(response.Choices[0])
	if arguments == "" {
		return nil, fmt.Errorf("%w: no %s call in response", ai.ErrMalformedResponse, setActionItemsName)
	}

	items, err := parseActionArguments(arguments)
	if err != nil {
		e.logger.Error("error parsing action payload", "response", arguments, "err", err)
		return nil, err
	}

	e.logger.Debug("extracted action items", "count", len(items))
	return items, nil
}

// functionArguments pulls the raw function-call arguments out of a choice,
// handling both the tools API and the legacy function_call field.
func functionArguments(choice *llms.ContentChoice) string {
	for _, call := range choice.ToolCalls {
		if call.FunctionCall != nil && call.FunctionCall.Name == setActionItemsName {
			return call.FunctionCall.Arguments
		}
	}
	if choice.FuncCall != nil {
		return choice.FuncCall.Arguments
	}
	return ""
}

// parseActionArguments parses and validates the set_action_items arguments.
// One repair pass runs before the payload is declared malformed; the network
// call is never retried.
func parseActionArguments(arguments string) ([]core.ActionItem, error) {
	// Strip markdown code fences if present
	text := strings.TrimSpace(arguments)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var payload actionList
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		// Try to repair common JSON issues before giving up
		repaired := repairJSON(text)
		if repairErr := json.Unmarshal([]byte(repaired), &payload); repairErr != nil {
			return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
		}
	}

	items := make([]core.ActionItem, len(payload.Items))
	for i, item := range payload.Items {
		items[i] = core.ActionItem{
			Title: strings.TrimSpace(item.Title),
			Owner: strings.TrimSpace(item.Owner),
			Due:   strings.TrimSpace(item.Due),
		}
		if err := core.ValidateActionItem(&items[i]); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ai.ErrMalformedResponse, i, err)
		}
	}

	return items, nil
}
