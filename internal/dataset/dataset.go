// Package dataset loads the cleaned tournament CSV into typed records
// for the statistics and report stages.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/KarloVrd/FlunkyStats/internal/config"
	"github.com/KarloVrd/FlunkyStats/internal/errors"
)

// Record is one participant row from the cleaned CSV.
type Record struct {
	Section   string
	Name      string
	BirthDate string // dd.mm.yyyy, or the N/A sentinel
	Days      []int  // per-day counts, aligned with Table.Days
}

// Sections splits a compound section cell ("Prvi odred - Drugi odred")
// into its individual sections. A simple cell yields a single element.
func (r *Record) Sections() []string {
	parts := strings.Split(r.Section, " - ")
	sections := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sections = append(sections, p)
		}
	}
	return sections
}

// Total returns the sum of the record's day counts.
func (r *Record) Total() int {
	total := 0
	for _, v := range r.Days {
		total += v
	}
	return total
}

// DaysPresent counts days with a non-zero value.
func (r *Record) DaysPresent() int {
	present := 0
	for _, v := range r.Days {
		if v > 0 {
			present++
		}
	}
	return present
}

// Table is the full cleaned dataset.
type Table struct {
	Days    []string // day column names, in file order
	Records []Record
}

// Loader reads cleaned CSVs.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new Loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load parses the cleaned CSV at path. It expects the fixed text columns
// followed by at least one day column, and integer day values; anything
// else means the file did not come from the cleaning stage.
func (l *Loader) Load(ctx context.Context, path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("cleaned CSV %s", path))
		}
		return nil, errors.NewStorageError("failed to open cleaned CSV", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewParsingError("failed to read CSV header", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	if len(header) < config.TextColumnCount+1 {
		return nil, errors.NewValidationError(
			fmt.Sprintf("header has %d columns, need at least %d", len(header), config.TextColumnCount+1))
	}

	table := &Table{Days: header[config.TextColumnCount:]}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to read CSV rows", err)
	}

	for i, row := range rows {
		record := Record{
			Section:   row[0],
			Name:      row[1],
			BirthDate: row[2],
			Days:      make([]int, len(table.Days)),
		}
		for j, cell := range row[config.TextColumnCount:] {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, errors.NewParsingError(
					fmt.Sprintf("row %d: day value %q is not an integer", i+2, cell), err)
			}
			record.Days[j] = v
		}
		table.Records = append(table.Records, record)
	}

	l.logger.InfoContext(ctx, "dataset loaded",
		slog.String("path", path),
		slog.Int("participants", len(table.Records)),
		slog.Int("days", len(table.Days)))

	return table, nil
}
