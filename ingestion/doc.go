// Package ingestion turns one uploaded recording into a stored meeting.
//
// The Pipeline type runs a fixed sequence of stages:
//   - Normalizing video input to audio with ffmpeg
//   - Transcribing the audio, keeping speaker labels when available
//   - Summarizing the transcript
//   - Extracting action items and building calendar links for them
//   - Generating an illustrative image
//   - Chunking the transcript and embedding each chunk
//   - Appending the assembled meeting to the store
//
// Stages run strictly in order. A failed summarization degrades to a
// placeholder; every other stage failure aborts the run and nothing is
// persisted. Temporary files are removed on every exit path.
package ingestion
