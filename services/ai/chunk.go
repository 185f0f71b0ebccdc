package AIService

import (
	"regexp"
	"strings"

	"github.com/okanay/backend-translate-lingua/configs"
)

// Paragraph separator: any whitespace run containing a blank line.
var paragraphBreak = regexp.MustCompile(`\n[ \t\r]*\n[\s]*`)

// estimateTokens approximates context-window usage from character count.
// The divisor is a rough heuristic, see configs.AI_CHARS_PER_TOKEN.
func estimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + configs.AI_CHARS_PER_TOKEN - 1) / configs.AI_CHARS_PER_TOKEN
}

// splitParagraphs splits text on blank-line boundaries, preserving order
// and dropping empty segments.
func splitParagraphs(text string) []string {
	parts := paragraphBreak.Split(text, -1)

	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			paragraphs = append(paragraphs, part)
		}
	}

	return paragraphs
}

// packParagraphs greedily packs paragraphs into chunks of at most
// maxChunkSize characters. Paragraphs inside a chunk are rejoined with a
// blank line. A single paragraph longer than maxChunkSize becomes its own
// chunk, it is never split further.
func packParagraphs(paragraphs []string, maxChunkSize int) []string {
	if len(paragraphs) == 0 {
		return nil
	}

	var chunks []string
	var current strings.Builder

	for _, paragraph := range paragraphs {
		if current.Len() == 0 {
			current.WriteString(paragraph)
			continue
		}

		// +2 accounts for the blank-line separator
		if current.Len()+2+len(paragraph) > maxChunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
			current.WriteString(paragraph)
			continue
		}

		current.WriteString("\n\n")
		current.WriteString(paragraph)
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// chunkText splits text into paragraph-bounded chunks for the chunked
// translation path.
func chunkText(text string, maxChunkSize int) []string {
	return packParagraphs(splitParagraphs(text), maxChunkSize)
}
