package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidFieldName(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected bool
	}{
		{
			desc:     "plain name",
			input:    "Content-Type",
			expected: true,
		},
		{
			desc:     "name with digits and symbols",
			input:    "X-Request-ID_2",
			expected: true,
		},
		{
			desc:     "empty name",
			input:    "",
			expected: false,
		},
		{
			desc:     "name with space",
			input:    "Bad Name",
			expected: false,
		},
		{
			desc:     "name with colon",
			input:    "Name:",
			expected: false,
		},
		{
			desc:     "name with control character",
			input:    "Na\x00me",
			expected: false,
		},
		{
			desc:     "name with DEL",
			input:    "Name\x7f",
			expected: false,
		},
		{
			desc:     "name with line break",
			input:    "Na\r\nme",
			expected: false,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			result := IsValidFieldName(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestIsValidFieldValue(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected bool
	}{
		{
			desc:     "plain value",
			input:    "text/plain",
			expected: true,
		},
		{
			desc:     "empty value",
			input:    "",
			expected: true,
		},
		{
			desc:     "value with inner whitespace",
			input:    "no-cache, no-store",
			expected: true,
		},
		{
			desc:     "folded continuation with CRLF",
			input:    "line one\r\n line two",
			expected: true,
		},
		{
			desc:     "folded continuation with tab",
			input:    "line one\r\n\tline two",
			expected: true,
		},
		{
			desc:     "folded continuation with bare LF",
			input:    "line one\n line two",
			expected: true,
		},
		{
			desc:     "bare CR",
			input:    "line one\rline two",
			expected: false,
		},
		{
			desc:     "bare LF",
			input:    "line one\nline two",
			expected: false,
		},
		{
			desc:     "CRLF without continuation",
			input:    "line one\r\nline two",
			expected: false,
		},
		{
			desc:     "trailing CRLF",
			input:    "line one\r\n",
			expected: false,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			result := IsValidFieldValue(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestFoldName(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected string
	}{
		{
			desc:     "all lowercase",
			input:    "content-type",
			expected: "content-type",
		},
		{
			desc:     "all uppercase",
			input:    "CONTENT-TYPE",
			expected: "content-type",
		},
		{
			desc:     "mixed case",
			input:    "cOnTeNt-TyPe",
			expected: "content-type",
		},
		{
			desc:     "non-ASCII bytes untouched",
			input:    "X-Na\xc3\xafve",
			expected: "x-na\xc3\xafve",
		},
		{
			desc:     "empty string",
			input:    "",
			expected: "",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			result := FoldName(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}
