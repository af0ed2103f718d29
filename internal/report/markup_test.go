package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRemainder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:  "all markers",
			input: "Overall Evaluation: Strong candidate.\nStrengths: good\nWeaknesses: none\nFinal Recommendation: Hire",
			expected: "<b>Overall Evaluation:</b> Strong candidate.<br/><b>Strengths:</b> good<br/>" +
				"<b>Weaknesses:</b> none<br/><br/><br/><b>Final Recommendation:</b> Hire",
		},
		{
			name:     "markers are case sensitive",
			input:    "strengths: listed",
			expected: "strengths: listed",
		},
		{
			name:     "escapes markup characters",
			input:    "A < B & C > D",
			expected: "A &lt; B &amp; C &gt; D",
		},
		{
			name:     "windows line endings",
			input:    "one\r\ntwo",
			expected: "one<br/>two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRemainder(tt.input))
		})
	}
}

func TestParseMarkup(t *testing.T) {
	runs := ParseMarkup("<b>Strengths:</b> a &lt;b&gt; tag<br/>x < y")

	assert.Equal(t, []Run{
		{Text: "Strengths:", Bold: true},
		{Text: " a <b> tag"},
		{Break: true},
		{Text: "x "},
		{Text: "<"},
		{Text: " y"},
	}, runs)
}

func TestParseMarkup_RoundTripKeepsText(t *testing.T) {
	input := "Overall Evaluation: 5 < 6 & ok"

	var text string
	for _, r := range ParseMarkup(FormatRemainder(input)) {
		text += r.Text
	}
	assert.Equal(t, input, text)
}
