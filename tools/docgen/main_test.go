package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/sales-tracker/cmd/salesctl/cmd"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		format   string
		wantFile string
	}{
		{format: "markdown", wantFile: "salesctl_analytics_monthly.md"},
		{format: "man", wantFile: "salesctl-sync-runs.1"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, generate(cmd.Root(), tt.format, dir))

			_, err := os.Stat(filepath.Join(dir, tt.wantFile))
			assert.NoError(t, err)
		})
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	err := generate(cmd.Root(), "html", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
