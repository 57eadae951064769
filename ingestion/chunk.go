package ingestion

import "strings"

// chunkWords is the fixed word-window size for transcript chunking.
const chunkWords = 60

// chunkTranscript splits text into non-overlapping windows of chunkWords
// words. The final window may be shorter. Window order follows transcript
// position.
func chunkTranscript(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+chunkWords-1)/chunkWords)
	for i := 0; i < len(words); i += chunkWords {
		end := i + chunkWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}
