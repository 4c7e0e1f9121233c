package validation

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileValidator_ValidateFile(t *testing.T) {
	v := NewFileValidator(slog.Default())

	tests := []struct {
		name          string
		setupFunc     func(t *testing.T) string
		wantErr       bool
		errorContains string
	}{
		{
			name: "existing readable file",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "data.csv")
				require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))
				return path
			},
			wantErr: false,
		},
		{
			name: "missing file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			wantErr:       true,
			errorContains: "does not exist",
		},
		{
			name: "directory instead of file",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr:       true,
			errorContains: "is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateFile(tt.setupFunc(t))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFileValidator_ValidateCSVFile(t *testing.T) {
	v := NewFileValidator(nil)

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "list.csv")
	txtPath := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(csvPath, []byte("x\n"), 0644))
	require.NoError(t, os.WriteFile(txtPath, []byte("x\n"), 0644))

	assert.NoError(t, v.ValidateCSVFile(csvPath))

	err := v.ValidateCSVFile(txtPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a CSV file")
}

func TestFileValidator_ValidateOutputDirectory(t *testing.T) {
	v := NewFileValidator(slog.Default())

	dir := filepath.Join(t.TempDir(), "visualizations", "Kordun Jesen_2025")
	require.NoError(t, v.ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// No leftover write-test file.
	assert.NoFileExists(t, filepath.Join(dir, ".write_test"))
}
