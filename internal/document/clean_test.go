// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hyphenated break", "The experi-\nment failed.", "The experiment failed."},
		{"hyphenated break with indent", "inter-  \n   national", "international"},
		{"real hyphen kept", "well-known result", "well-known result"},
		{"collapse spaces and tabs", "a  b\t\tc \t d", "a b c d"},
		{"collapse newlines", "para one\n\n\n\n\npara two", "para one\n\npara two"},
		{"trim lines", "  first  \n\tsecond\t", "first\nsecond"},
		{"crlf", "one\r\ntwo", "one\ntwo"},
		{"trim whole", "\n\n  body  \n\n", "body"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	in := "Ab-\nstract   text\n\n\n\nNext  para-\n graph"
	once := CleanText(in)
	assert.Equal(t, once, CleanText(once))
}
