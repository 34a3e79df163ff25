package transcript_test

import (
	"testing"

	"github.com/caprica-im/caprica/pkg/transcript"
	"github.com/m-mizutani/gt"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "simple",
			text:     "are you free tonight",
			expected: []string{"are", "you", "free", "tonight"},
		},
		{
			name:     "case folding",
			text:     "ARE You Free",
			expected: []string{"are", "you", "free"},
		},
		{
			name:     "punctuation stripped",
			text:     "hey!! what's up?",
			expected: []string{"hey", "what", "s", "up"},
		},
		{
			name:     "numbers kept",
			text:     "see you at 8",
			expected: []string{"see", "you", "at", "8"},
		},
		{
			name:     "empty",
			text:     "",
			expected: nil,
		},
		{
			name:     "only punctuation",
			text:     "?!... --",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, transcript.Tokenize(tt.text), tt.expected)
		})
	}
}
