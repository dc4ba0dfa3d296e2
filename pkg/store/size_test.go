package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.0B"},
		{1, "1.0B"},
		{1023, "1023.0B"},
		{1024, "1.0KiB"},
		{1536, "1.5KiB"},
		{2148, "2.1KiB"},
		{1024 * 1024, "1.0MiB"},
		{5*1024*1024*1024 + 512*1024*1024, "5.5GiB"},
		{1024 * 1024 * 1024 * 1024, "1.0TiB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, humanSize(tt.bytes))
		})
	}
}

func TestValidateKey_Lengths(t *testing.T) {
	assert.NoError(t, validateKey(strings.Repeat("k", maxKeyLen)))
	err := validateKey(strings.Repeat("k", maxKeyLen+1))
	assert.Error(t, err)
}
