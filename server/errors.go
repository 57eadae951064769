package server

import "errors"

var (
	// ErrStoreRequired is returned when a meeting store is not provided.
	ErrStoreRequired = errors.New("meeting store required")

	// ErrPipelineRequired is returned when an ingestion pipeline is not provided.
	ErrPipelineRequired = errors.New("ingestion pipeline required")

	// ErrSearcherRequired is returned when a searcher is not provided.
	ErrSearcherRequired = errors.New("searcher required")
)
