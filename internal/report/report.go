package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/KarloVrd/FlunkyStats/internal/config"
	"github.com/KarloVrd/FlunkyStats/internal/dataset"
	"github.com/KarloVrd/FlunkyStats/internal/errors"
	"github.com/KarloVrd/FlunkyStats/internal/stats"
)

// Generator runs the full reporting stage: statistics, charts, PDF and
// workbook.
type Generator struct {
	logger *slog.Logger
	paths  *config.Paths
}

// NewGenerator creates a new Generator
func NewGenerator(logger *slog.Logger, paths *config.Paths) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger, paths: paths}
}

// Generate computes statistics from the table and writes the complete
// output set under the tournament's visualization directory. The
// returned summary backs the caller's console output.
func (g *Generator) Generate(ctx context.Context, table *dataset.Table) (*stats.Summary, error) {
	reference, err := time.Parse(config.ReferenceDateLayout, config.ReferenceDate)
	if err != nil {
		return nil, errors.NewConfigError("invalid reference date", err)
	}

	summary := stats.Compute(table, reference)
	g.logger.InfoContext(ctx, "statistics computed",
		slog.Int("participants", summary.Overview.Participants),
		slog.Int("sections", len(summary.Sections)),
		slog.Int("days", summary.Overview.Days))

	outDir := g.paths.OutputDir()
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, errors.NewStorageError("failed to create output directory", err)
	}

	label := fmt.Sprintf("%s %d", config.TournamentName, config.TournamentYear)
	renderer := NewRenderer(g.logger, label, outDir)
	if err := renderer.RenderAll(summary); err != nil {
		return nil, err
	}

	if err := ComposePDF(g.logger, outDir, g.paths.ReportPDFPath()); err != nil {
		return nil, err
	}

	// The workbook is auxiliary: a failed export does not fail the run.
	if err := WriteWorkbook(summary, g.paths.WorkbookPath()); err != nil {
		g.logger.ErrorContext(ctx, "workbook export failed", slog.Any("error", err))
	} else {
		g.logger.InfoContext(ctx, "workbook exported",
			slog.String("path", g.paths.WorkbookPath()))
	}

	return summary, nil
}
