package hashtags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantClean string
		wantTags  []string
	}{
		{
			name:      "tags in the middle of text",
			input:     "Loving #Azure and #Copilot today",
			wantClean: "Loving and today",
			wantTags:  []string{"#Azure", "#Copilot"},
		},
		{
			name:      "no tags",
			input:     "Just a plain thought",
			wantClean: "Just a plain thought",
			wantTags:  nil,
		},
		{
			name:      "empty input",
			input:     "",
			wantClean: "",
			wantTags:  nil,
		},
		{
			name:      "only tags",
			input:     "#Build2025 #Azure",
			wantClean: "",
			wantTags:  []string{"#Build2025", "#Azure"},
		},
		{
			name:      "duplicates kept in first-seen order",
			input:     "#go is great, #go is simple",
			wantClean: "is great, is simple",
			wantTags:  []string{"#go", "#go"},
		},
		{
			name:      "case preserved as typed",
			input:     "shipping with #DotNet and #dotnet",
			wantClean: "shipping with and",
			wantTags:  []string{"#DotNet", "#dotnet"},
		},
		{
			name:      "underscores and digits are part of the tag",
			input:     "see #remote_work2",
			wantClean: "see",
			wantTags:  []string{"#remote_work2"},
		},
		{
			name:      "bare hash is not a tag",
			input:     "issue # 42",
			wantClean: "issue # 42",
			wantTags:  nil,
		},
		{
			name:      "tag stops at punctuation",
			input:     "try #Teams! now",
			wantClean: "try ! now",
			wantTags:  []string{"#Teams"},
		},
		{
			name:      "whitespace collapses after removal",
			input:     "  a   #x   b  ",
			wantClean: "a b",
			wantTags:  []string{"#x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, tags := Extract(tt.input)
			assert.Equal(t, tt.wantClean, clean)
			assert.Equal(t, tt.wantTags, tags)
		})
	}
}

// Extract must leave no hashtag token behind in the cleaned text, whatever
// the input looks like.
func TestExtract_CleanTextHasNoTags(t *testing.T) {
	inputs := []string{
		"#a#b#c",
		"edge#case inside a word",
		"trailing #tag",
		"#leading tag",
		"###multi",
	}

	for _, in := range inputs {
		clean, _ := Extract(in)
		assert.False(t, ContainsTag(clean), "clean text %q still contains a tag (input %q)", clean, in)
	}
}
