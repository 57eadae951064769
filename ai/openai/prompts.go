package openai

// summarySystemPrompt is the fixed system instruction for the summary stage.
const summarySystemPrompt = "You are a helpful assistant that writes 2-3 sentence " +
	"executive summaries of meeting transcripts."

// extractionPrompt is the fixed instruction for the action extraction stage.
// The transcript follows as a separate message.
const extractionPrompt = "Extract action items with owner names and optional due dates " +
	"from this transcript. Call set_action_items with every action you find, in the " +
	"order they come up. Do not invent actions that are not in the transcript."

// setActionItemsName is the function the extraction call is constrained to invoke.
const setActionItemsName = "set_action_items"

// setActionItemsParameters is the JSON schema for the set_action_items call.
// title and owner are required; due is optional free text.
var setActionItemsParameters = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{"type": "string"},
					"owner": map[string]any{"type": "string"},
					"due":   map[string]any{"type": "string"},
				},
				"required": []string{"title", "owner"},
			},
		},
	},
	"required": []string{"items"},
}
