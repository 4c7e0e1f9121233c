// Command report reads the cleaned tournament CSV, derives the
// statistics, renders the chart set and composes the PDF report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/KarloVrd/FlunkyStats/internal/config"
	"github.com/KarloVrd/FlunkyStats/internal/dataset"
	"github.com/KarloVrd/FlunkyStats/internal/infrastructure"
	"github.com/KarloVrd/FlunkyStats/internal/report"
	"github.com/KarloVrd/FlunkyStats/internal/validation"
)

func main() {
	in := flag.String("in", "", "cleaned CSV path (defaults to data/cleaned_jesen.csv relative to executable)")
	quiet := flag.Bool("quiet", false, "suppress the console summary tables")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *in == "" {
		*in = paths.CleanedCSV
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
		cfg.Logging.FilePath = paths.GetLogPath("report.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.NewRunContext(context.Background())

	logger.InfoContext(ctx, "Starting report generation",
		slog.String("input", *in),
		slog.String("output_dir", paths.OutputDir()))

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateCSVFile(*in); err != nil {
		logger.ErrorContext(ctx, "Input validation failed",
			slog.String("path", *in),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	table, err := dataset.NewLoader(logger).Load(ctx, *in)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	summary, err := report.NewGenerator(logger, paths).Generate(ctx, table)
	if err != nil {
		logger.ErrorContext(ctx, "Report generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Report generation finished",
		slog.String("pdf", paths.ReportPDFPath()),
		slog.Int("participants", summary.Overview.Participants))

	if !*quiet {
		label := fmt.Sprintf("%s %d", config.TournamentName, config.TournamentYear)
		report.PrintSummary(os.Stdout, label, summary)
	}
}
