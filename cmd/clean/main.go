// Command clean normalizes the raw tournament CSV into the cleaned form
// the report stage consumes.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/KarloVrd/FlunkyStats/internal/cleaner"
	"github.com/KarloVrd/FlunkyStats/internal/config"
	"github.com/KarloVrd/FlunkyStats/internal/infrastructure"
	"github.com/KarloVrd/FlunkyStats/internal/validation"
)

func main() {
	in := flag.String("in", "", "raw CSV path (defaults to data/jesen.csv relative to executable)")
	out := flag.String("out", "", "cleaned CSV path (defaults to data/cleaned_jesen.csv)")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *in == "" {
		*in = paths.RawCSV
	}
	if *out == "" {
		*out = paths.CleanedCSV
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
		cfg.Logging.FilePath = paths.GetLogPath("clean.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.NewRunContext(context.Background())

	logger.InfoContext(ctx, "Starting CSV cleaning",
		slog.String("input", *in),
		slog.String("output", *out))

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateCSVFile(*in); err != nil {
		logger.ErrorContext(ctx, "Input validation failed",
			slog.String("path", *in),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	result, err := cleaner.New(logger).Clean(ctx, *in, *out)
	if err != nil {
		logger.ErrorContext(ctx, "Cleaning failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Cleaning finished",
		slog.Int("rows_read", result.RowsRead),
		slog.Int("rows_written", result.RowsWritten),
		slog.Int("dropped_empty", result.DroppedEmpty),
		slog.Int("coerced_counts", result.CoercedCounts),
		slog.Int("unparsed_dates", result.UnparsedDates),
		slog.String("output", *out))
}
