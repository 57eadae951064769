package ai

// Transcript is the output of a speech-to-text call.
type Transcript struct {
	// Text is the plain transcript of the whole recording.
	Text string

	// Segments holds per-speaker segments when the backend returned
	// diarization data. Nil or empty when it did not; callers fall back to
	// Text in that case.
	Segments []TranscriptSegment
}

// TranscriptSegment is one diarized span of a transcript.
type TranscriptSegment struct {
	// Speaker is the speaker tag for the segment, e.g. "S0".
	Speaker string

	// Text is the transcribed speech for the segment.
	Text string
}
