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


// Package calendar builds calendar deep links for action items.
package calendar

import (
	"net/url"
	"strings"

	"github.com/poiesic/recall/core"
)

const eventEditURL = "https://calendar.google.com/calendar/r/eventedit?text="

// EventLinks maps action items to Google Calendar event-creation links,
// one per item, order-preserving. The link text carries the item's title
// and owner.
func EventLinks(actions []core.ActionItem) []string {
	links := make([]string, len(actions))
	for i, action := range actions {
		links[i] = eventEditURL + escapeQuery(action.Title+" – "+action.Owner)
	}
	return links
}

// escapeQuery percent-encodes a query value, using %20 for spaces.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
