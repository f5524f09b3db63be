package converter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		content  string
		expected Config
		wantErr  bool
	}{
		{
			name: "full file",
			content: `
name: site
log_level: debug
debug: true
workers: 4
format: json
color: never
`,
			expected: Config{Name: "site", LogLevel: "debug", Debug: true, Workers: 4, Format: "json", Color: "never"},
		},
		{
			name:     "partial file keeps defaults",
			content:  "workers: 2\n",
			expected: Config{Name: "razorconv", LogLevel: "info", Workers: 2, Format: "text", Color: "auto"},
		},
		{
			name:     "empty file",
			content:  "",
			expected: DefaultConfig(),
		},
		{
			name:    "invalid yaml",
			content: "workers: [",
			wantErr: true,
		},
		{
			name:    "invalid format",
			content: "format: xml\n",
			wantErr: true,
		},
		{
			name:    "negative workers",
			content: "workers: -1\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), ".razorconv.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			config, err := LoadConfig(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, config)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultConfigPath)
	want := DefaultConfig()
	want.Workers = 8
	require.NoError(t, WriteConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
