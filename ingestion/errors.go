package ingestion

import "errors"

var (
	// ErrStoreRequired is returned when a meeting store is not provided.
	ErrStoreRequired = errors.New("meeting store required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrEmptyUpload is returned when the uploaded body contains no data.
	ErrEmptyUpload = errors.New("empty upload")
)
