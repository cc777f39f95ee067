package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		retries int
	}{
		{"y", "y\n", true, 0},
		{"yes mixed case", "  YeS \n", true, 0},
		{"n", "n\n", false, 0},
		{"no", "no\n", false, 0},
		{"empty means no", "\n", false, 0},
		{"eof means no", "", false, 0},
		{"re-prompts until recognized", "what\nmaybe\ny\n", true, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := newPrompter(strings.NewReader(tc.input), &out)

			got, err := p.Confirm("Sure? ")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.retries+1, strings.Count(out.String(), "Sure? "))
			assert.Equal(t, tc.retries, strings.Count(out.String(), "Please enter 'y' for yes or 'n' for no."))
		})
	}
}
