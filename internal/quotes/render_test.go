package quotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	renderer := NewRenderer()
	quote := &Quote{ID: 3, Phrase: "Be water, my friend.", Author: "Bruce Lee"}

	tests := []struct {
		name     string
		opts     RenderOptions
		expected string
	}{
		{
			name:     "card",
			opts:     RenderOptions{Quote: quote},
			expected: "\"Be water, my friend.\"\n  - Bruce Lee",
		},
		{
			name:     "card with id",
			opts:     RenderOptions{Quote: quote, IncludeID: true},
			expected: "#3\n\"Be water, my friend.\"\n  - Bruce Lee",
		},
		{
			name:     "blank author",
			opts:     RenderOptions{Quote: &Quote{ID: 1, Phrase: "Carpe diem.", Author: "  "}},
			expected: "\"Carpe diem.\"\n  - Unknown",
		},
		{
			name:     "phrase with quotes is escaped",
			opts:     RenderOptions{Quote: &Quote{Phrase: `He said "no"`, Author: "Someone"}},
			expected: "\"He said \\\"no\\\"\"\n  - Someone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := renderer.Render(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestRenderer_RenderNil(t *testing.T) {
	_, err := NewRenderer().Render(RenderOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot render nil quote")
}

func TestRenderer_RenderCard(t *testing.T) {
	text, err := NewRenderer().RenderCard(&Quote{ID: 9, Phrase: "Carpe diem.", Author: "Horace"})
	require.NoError(t, err)
	assert.Equal(t, "\"Carpe diem.\"\n  - Horace", text)
}

func TestRenderer_RenderList(t *testing.T) {
	renderer := NewRenderer()

	assert.Equal(t, "No quotes yet.", renderer.RenderList(nil))
	assert.Equal(t, "No quotes yet.", renderer.RenderList([]Quote{}))

	list := renderer.RenderList([]Quote{
		{ID: 1, Phrase: "Be water, my friend.", Author: "Bruce Lee"},
		{ID: 2, Phrase: "Carpe diem.", Author: "Horace"},
	})
	assert.Equal(t, "#1 \"Be water, my friend.\" - Bruce Lee\n#2 \"Carpe diem.\" - Horace", list)
}
