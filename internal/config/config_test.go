package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FLUNKY_LOGGING_LEVEL", "debug")
	t.Setenv("FLUNKY_LOGGING_OUTPUT", "both")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "both", cfg.Logging.Output)
}

func TestLoad_InvalidLevel(t *testing.T) {
	t.Setenv("FLUNKY_LOGGING_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "default is valid",
			cfg:     *Default(),
			wantErr: false,
		},
		{
			name: "bad format",
			cfg: Config{Logging: LoggingConfig{
				Level: "info", Format: "xml", Output: "console", FilePath: "logs/x.log",
			}},
			wantErr: true,
		},
		{
			name: "bad output",
			cfg: Config{Logging: LoggingConfig{
				Level: "info", Format: "json", Output: "syslog", FilePath: "logs/x.log",
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
