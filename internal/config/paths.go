package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations in both stages.
type Paths struct {
	BaseDir           string
	DataDir           string
	VisualizationsDir string
	LogsDir           string

	// Well-known stage files
	RawCSV     string
	CleanedCSV string
}

// GetPaths returns the application paths relative to the executable
// location, never the current working directory.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return GetPathsFrom(filepath.Dir(exe)), nil
}

// GetPathsFrom builds the path set rooted at the given base directory.
// Split out from GetPaths so tests can point it at a temp directory.
func GetPathsFrom(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")

	return &Paths{
		BaseDir:           baseDir,
		DataDir:           dataDir,
		VisualizationsDir: filepath.Join(baseDir, "visualizations"),
		LogsDir:           filepath.Join(baseDir, "logs"),
		RawCSV:            filepath.Join(dataDir, RawCSVName),
		CleanedCSV:        filepath.Join(dataDir, CleanedCSVName),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.VisualizationsDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// OutputDir returns the per-tournament chart directory,
// visualizations/<Name>_<Year>.
func (p *Paths) OutputDir() string {
	return filepath.Join(p.VisualizationsDir, fmt.Sprintf("%s_%d", TournamentName, TournamentYear))
}

// ReportPDFPath returns the path of the composed multi-page PDF report.
func (p *Paths) ReportPDFPath() string {
	return filepath.Join(p.OutputDir(), fmt.Sprintf("%s_%d_Complete_Report.pdf", TournamentName, TournamentYear))
}

// WorkbookPath returns the path of the Excel statistics workbook.
func (p *Paths) WorkbookPath() string {
	return filepath.Join(p.OutputDir(), fmt.Sprintf("%s_%d_Statistika.xlsx", TournamentName, TournamentYear))
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
