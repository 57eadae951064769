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

import "errors"

// Domain validation errors
var (
	// ErrInvalidMeeting indicates a Meeting failed validation.
	ErrInvalidMeeting = errors.New("invalid meeting")

	// ErrInvalidActionItem indicates an ActionItem failed validation.
	ErrInvalidActionItem = errors.New("invalid action item")

	// ErrEmptyID indicates the meeting Id field is empty.
	ErrEmptyID = errors.New("meeting id cannot be empty")

	// ErrEmptyTranscript indicates the Transcript field is empty.
	ErrEmptyTranscript = errors.New("transcript cannot be empty")

	// ErrEmptyActionTitle indicates the action Title field is empty.
	ErrEmptyActionTitle = errors.New("action title cannot be empty")

	// ErrEmptyActionOwner indicates the action Owner field is empty.
	ErrEmptyActionOwner = errors.New("action owner cannot be empty")

	// ErrLinkMismatch indicates calendar links are not index-aligned with actions.
	ErrLinkMismatch = errors.New("calendar links must align with actions")
)
