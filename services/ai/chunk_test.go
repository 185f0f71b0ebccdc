package AIService

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty string", text: "", expected: 0},
		{name: "below one token", text: "hi", expected: 1},
		{name: "exact multiple", text: "abcdef", expected: 2},
		{name: "rounds up", text: "abcdefg", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, estimateTokens(tt.text))
		})
	}
}

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "single paragraph",
			text:     "one single paragraph",
			expected: []string{"one single paragraph"},
		},
		{
			name:     "blank line separator",
			text:     "first\n\nsecond\n\nthird",
			expected: []string{"first", "second", "third"},
		},
		{
			name:     "blank line with spaces",
			text:     "first\n   \nsecond",
			expected: []string{"first", "second"},
		},
		{
			name:     "multiple blank lines",
			text:     "first\n\n\n\nsecond",
			expected: []string{"first", "second"},
		},
		{
			name:     "windows line endings",
			text:     "first\r\n\r\nsecond",
			expected: []string{"first", "second"},
		},
		{
			name:     "single newlines stay inside a paragraph",
			text:     "line one\nline two\n\nnext paragraph",
			expected: []string{"line one\nline two", "next paragraph"},
		},
		{
			name:     "leading and trailing whitespace dropped",
			text:     "\n\nfirst\n\nsecond\n\n",
			expected: []string{"first", "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitParagraphs(tt.text))
		})
	}
}

func TestPackParagraphs(t *testing.T) {
	t.Run("all fit in one chunk", func(t *testing.T) {
		chunks := packParagraphs([]string{"aaa", "bbb", "ccc"}, 100)
		assert.Equal(t, []string{"aaa\n\nbbb\n\nccc"}, chunks)
	})

	t.Run("two paragraphs of 1500 become two chunks at 2500", func(t *testing.T) {
		p1 := strings.Repeat("a", 1500)
		p2 := strings.Repeat("b", 1500)

		chunks := packParagraphs([]string{p1, p2}, 2500)

		assert.Equal(t, []string{p1, p2}, chunks)
	})

	t.Run("oversized paragraph kept whole", func(t *testing.T) {
		big := strings.Repeat("x", 4000)
		chunks := packParagraphs([]string{"small", big, "tiny"}, 2500)

		assert.Equal(t, []string{"small", big, "tiny"}, chunks)
	})

	t.Run("chunk size bound holds for multi-paragraph chunks", func(t *testing.T) {
		var paragraphs []string
		for i := 0; i < 40; i++ {
			paragraphs = append(paragraphs, strings.Repeat("p", 700))
		}

		chunks := packParagraphs(paragraphs, 2500)

		for i, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk), 2500, "chunk %d exceeds bound", i)
		}
	})

	t.Run("joining chunks reconstructs the paragraph sequence", func(t *testing.T) {
		paragraphs := []string{
			strings.Repeat("a", 900),
			strings.Repeat("b", 900),
			strings.Repeat("c", 900),
			strings.Repeat("d", 900),
			strings.Repeat("e", 900),
		}

		chunks := packParagraphs(paragraphs, 2500)

		assert.Greater(t, len(chunks), 1)
		assert.Equal(t, strings.Join(paragraphs, "\n\n"), strings.Join(chunks, "\n\n"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, packParagraphs(nil, 2500))
	})
}

func TestChunkText(t *testing.T) {
	text := strings.Repeat("a", 1500) + "\n\n" + strings.Repeat("b", 1500)

	chunks := chunkText(text, 2500)

	assert.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("a", 1500), chunks[0])
	assert.Equal(t, strings.Repeat("b", 1500), chunks[1])
}
