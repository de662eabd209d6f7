package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"dev version unchanged", "dev", "dev"},
		{"empty version unchanged", "", ""},
		{"adds v prefix", "1.2.3", "v1.2.3"},
		{"keeps existing v prefix", "v1.2.3", "v1.2.3"},
		{"prerelease gets prefix", "1.0.0-rc.1", "v1.0.0-rc.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatVersion(tt.input))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer SetVersionInfo(origVersion, origCommit, origDate)

	SetVersionInfo("1.4.0", "abc1234", "2026-08-23")

	assert.Equal(t, "1.4.0", GetVersion())
	assert.Equal(t, "abc1234", commit)
	assert.Equal(t, "2026-08-23", date)
}
