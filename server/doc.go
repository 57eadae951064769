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


// Package server exposes the HTTP API for recall.
//
// Endpoints:
//   - POST /api/upload: ingest a raw recording body; the Content-Type
//     header distinguishes audio from video
//   - GET /api/search?q=...: semantic search over stored chunks
//   - GET /api/list: meeting index with display positions
//   - GET /api/meeting?id=...: full meeting detail
//
// Uploads run through a bounded worker pool so a burst of ingestions
// cannot saturate the inference service; each request blocks until its
// own pipeline run completes.
package server
