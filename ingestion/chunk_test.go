package ingestion

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTranscriptEmpty(t *testing.T) {
	assert.Nil(t, chunkTranscript(""))
	assert.Nil(t, chunkTranscript("   \n\t  "))
}

func TestChunkTranscriptShort(t *testing.T) {
	chunks := chunkTranscript("just a few words here")
	require.Len(t, chunks, 1)
	assert.Equal(t, "just a few words here", chunks[0])
}

func TestChunkTranscriptWindows(t *testing.T) {
	words := make([]string, 130)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}

	chunks := chunkTranscript(strings.Join(words, " "))
	require.Len(t, chunks, 3)

	assert.Len(t, strings.Fields(chunks[0]), 60)
	assert.Len(t, strings.Fields(chunks[1]), 60)
	assert.Len(t, strings.Fields(chunks[2]), 10)

	// Windows preserve transcript position.
	assert.True(t, strings.HasPrefix(chunks[0], "w0 "))
	assert.True(t, strings.HasPrefix(chunks[1], "w60 "))
	assert.True(t, strings.HasPrefix(chunks[2], "w120 "))
}

func TestChunkTranscriptExactBoundary(t *testing.T) {
	words := make([]string, 120)
	for i := range words {
		words[i] = "x"
	}

	chunks := chunkTranscript(strings.Join(words, " "))
	require.Len(t, chunks, 2)
	assert.Len(t, strings.Fields(chunks[1]), 60)
}

func TestChunkTranscriptCollapsesWhitespace(t *testing.T) {
	chunks := chunkTranscript("Alice: hello\nBob: hi   there")
	require.Len(t, chunks, 1)
	assert.Equal(t, "Alice: hello Bob: hi there", chunks[0])
}
