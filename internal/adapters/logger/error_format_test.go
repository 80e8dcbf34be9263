package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ripple/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "standard error",
			err:          errors.New("disk full"),
			wantMessages: []string{"disk full"},
		},
		{
			name:         "zerr chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("disk full"), "failed to write entry"), "failed to explode package"),
			wantMessages: []string{"failed to explode package", "failed to write entry", "disk full"},
		},
		{
			name:         "metadata stays on its layer",
			err:          zerr.With(zerr.With(zerr.New("package not found"), "package", "Bottles"), "feed", "/srv/nuget"),
			wantMessages: []string{"package not found"},
		},
		{
			name: "nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			var messages []string
			for _, e := range entries {
				messages = append(messages, e.Message)
			}
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "package not found"}},
			want:    "Error: package not found",
		},
		{
			name: "causes",
			entries: []logger.ErrorEntry{
				{Message: "restore failed"},
				{Message: "failed to restore package", Metadata: map[string]any{"package": "Bottles"}},
				{Message: "package not found"},
			},
			want: "Error: restore failed\n\n  Caused by:\n" +
				"    → failed to restore package\n      package: Bottles\n" +
				"    → package not found",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{{
				Message:  "invalid solution",
				Metadata: map[string]any{"path": "ripple.yaml", "dependency": "FubuCore"},
			}},
			want: "Error: invalid solution\n       dependency: FubuCore\n       path: ripple.yaml",
		},
		{
			name:    "multiline",
			entries: []logger.ErrorEntry{{Message: "first\nsecond"}},
			want:    "Error: first\n       second",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
