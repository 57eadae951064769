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


package core

import "fmt"

// ValidateMeeting validates a Meeting according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Transcript must not be empty
//   - CalendarLinks must be index-aligned with Actions
//   - every ActionItem must be valid
//
// NOT validated:
//   - Summary (a placeholder is substituted upstream when generation fails)
//   - ImageURL and Chunks (shaped by the inference service; the store takes
//     them as-is)
func ValidateMeeting(meeting *Meeting) error {
	if meeting == nil {
		return fmt.Errorf("%w: meeting is nil", ErrInvalidMeeting)
	}

	if meeting.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMeeting, ErrEmptyID)
	}

	if meeting.Transcript == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMeeting, ErrEmptyTranscript)
	}

	if len(meeting.CalendarLinks) != len(meeting.Actions) {
		return fmt.Errorf("%w: %w: %d links for %d actions",
			ErrInvalidMeeting, ErrLinkMismatch, len(meeting.CalendarLinks), len(meeting.Actions))
	}

	for i := range meeting.Actions {
		if err := ValidateActionItem(&meeting.Actions[i]); err != nil {
			return fmt.Errorf("%w: action %d: %w", ErrInvalidMeeting, i, err)
		}
	}

	return nil
}

// ValidateActionItem validates an ActionItem according to domain rules.
// Title and Owner are required; Due is optional free text.
func ValidateActionItem(action *ActionItem) error {
	if action == nil {
		return fmt.Errorf("%w: action is nil", ErrInvalidActionItem)
	}

	if action.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidActionItem, ErrEmptyActionTitle)
	}

	if action.Owner == "" {
		return fmt.Errorf("%w: %w", ErrInvalidActionItem, ErrEmptyActionOwner)
	}

	return nil
}
