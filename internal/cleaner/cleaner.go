package cleaner

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KarloVrd/FlunkyStats/internal/config"
	"github.com/KarloVrd/FlunkyStats/internal/errors"
)

// Cleaner normalizes a raw tournament CSV into the cleaned form the
// report generator consumes. Malformed cells are coerced, never dropped:
// the only rows removed are fully empty ones.
type Cleaner struct {
	logger *slog.Logger
}

// New creates a new Cleaner
func New(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{logger: logger}
}

// Result summarizes a cleaning run.
type Result struct {
	RowsRead      int
	RowsWritten   int
	DroppedEmpty  int
	CoercedCounts int
	UnparsedDates int
	DayColumns    int
}

// Clean reads the raw CSV at inputPath, normalizes every row, and writes
// the cleaned CSV to outputPath, overwriting any existing file. The
// output is deterministic, so cleaning the same input twice yields
// byte-identical files.
func (c *Cleaner) Clean(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("input CSV %s", inputPath))
		}
		return nil, errors.NewStorageError("failed to open input CSV", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewParsingError("failed to read CSV header", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if err := validateHeader(header); err != nil {
		return nil, err
	}

	result := &Result{DayColumns: len(header) - config.TextColumnCount}

	var cleaned [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError(
				fmt.Sprintf("failed to read CSV row %d", result.RowsRead+2), err)
		}
		result.RowsRead++

		row = normalizeWidth(row, len(header))
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}

		if isEmptyRow(row) {
			result.DroppedEmpty++
			c.logger.DebugContext(ctx, "dropped empty row",
				slog.Int("row", result.RowsRead))
			continue
		}

		cleaned = append(cleaned, c.cleanRow(ctx, row, result))
	}

	if err := c.write(outputPath, header, cleaned); err != nil {
		return nil, err
	}
	result.RowsWritten = len(cleaned)

	c.logger.InfoContext(ctx, "cleaning complete",
		slog.Int("rows_read", result.RowsRead),
		slog.Int("rows_written", result.RowsWritten),
		slog.Int("dropped_empty", result.DroppedEmpty),
		slog.Int("coerced_counts", result.CoercedCounts),
		slog.Int("unparsed_dates", result.UnparsedDates))

	return result, nil
}

// cleanRow normalizes a single trimmed row in place and returns it.
func (c *Cleaner) cleanRow(ctx context.Context, row []string, result *Result) []string {
	row[0] = capitalize(fillNA(row[0]))
	row[1] = capitalize(fillNA(row[1]))

	birthDate := fillNA(row[2])
	if normalized, ok := NormalizeDate(birthDate); ok {
		row[2] = normalized
	} else {
		row[2] = birthDate
		if birthDate != config.NASymbol {
			result.UnparsedDates++
			c.logger.WarnContext(ctx, "birth date could not be normalized",
				slog.String("name", row[1]),
				slog.String("value", birthDate))
		}
	}

	for i := config.TextColumnCount; i < len(row); i++ {
		value, coerced := coerceCount(row[i])
		if coerced {
			result.CoercedCounts++
			c.logger.WarnContext(ctx, "day count coerced to zero",
				slog.String("name", row[1]),
				slog.Int("column", i),
				slog.String("value", row[i]))
		}
		row[i] = strconv.Itoa(value)
	}

	return row
}

// write writes the cleaned rows, creating the output directory if needed.
func (c *Cleaner) write(outputPath string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return errors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return errors.NewStorageError("failed to create cleaned CSV", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return errors.NewStorageError("failed to write CSV header", err)
	}
	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.NewStorageError(fmt.Sprintf("failed to write CSV row %d", i+1), err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush cleaned CSV", err)
	}

	return nil
}

// validateHeader checks the fixed text columns and requires at least one
// day column.
func validateHeader(header []string) error {
	if len(header) < config.TextColumnCount+1 {
		return errors.NewValidationError(
			fmt.Sprintf("header has %d columns, need at least %d", len(header), config.TextColumnCount+1))
	}

	want := []string{config.ColumnSection, config.ColumnName, config.ColumnBirthDate}
	for i, name := range want {
		if header[i] != name {
			return errors.NewValidationError(
				fmt.Sprintf("column %d is %q, expected %q", i+1, header[i], name))
		}
	}

	return nil
}

// normalizeWidth pads or truncates a row to the header width.
func normalizeWidth(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row[:width]
}

// isEmptyRow reports whether every cell is empty after trimming.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// fillNA replaces an empty text cell with the N/A sentinel.
func fillNA(s string) string {
	if s == "" {
		return config.NASymbol
	}
	return s
}

// capitalize upper-cases the first letter, leaving the rest unchanged.
// The "0" placeholder is passed through as-is.
func capitalize(s string) string {
	if s == "" || s == "0" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// coerceCount parses a day cell into a bounded non-negative count. The
// second return value reports whether the original value was invalid and
// had to be coerced to zero. Empty cells coerce silently.
func coerceCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// "3.0" style values still count as numeric.
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil && f == float64(int(f)) {
			n = int(f)
		} else {
			return 0, true
		}
	}
	if n < config.DayValueMin || n > config.DayValueMax {
		return 0, true
	}
	return n, false
}
