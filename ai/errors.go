package ai

import "errors"

var (
	// ErrMalformedResponse indicates a structured model response did not
	// match the expected schema. Callers treat this as distinct from a
	// transport failure.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrEmptyResponse indicates a well-formed response carried no usable
	// payload (no choices, no image data, no embedding).
	ErrEmptyResponse = errors.New("empty model response")
)
