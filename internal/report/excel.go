package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/KarloVrd/FlunkyStats/internal/errors"
	"github.com/KarloVrd/FlunkyStats/internal/stats"
)

const (
	sheetParticipants = "Sudionici"
	sheetSections     = "Sekcije"
	sheetDaily        = "Dani"
)

// WriteWorkbook exports the derived statistics as a three-sheet Excel
// workbook next to the charts. The workbook is auxiliary output; callers
// treat failures as non-fatal.
func WriteWorkbook(summary *stats.Summary, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetParticipants)
	writeParticipantsSheet(f, summary)

	f.NewSheet(sheetSections)
	writeSectionsSheet(f, summary)

	f.NewSheet(sheetDaily)
	writeDailySheet(f, summary)

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save workbook", err)
	}
	return nil
}

func writeParticipantsSheet(f *excelize.File, summary *stats.Summary) {
	headers := []string{"Mjesto", "Ime i Prezime", "Sekcija", "Ukupno", "Max u danu", "CV"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetParticipants, cell, h)
	}

	for i, p := range stats.RankByTotal(summary.Participants) {
		row := i + 2
		f.SetCellValue(sheetParticipants, fmt.Sprintf("A%d", row), p.Rank)
		f.SetCellValue(sheetParticipants, fmt.Sprintf("B%d", row), p.Name)
		f.SetCellValue(sheetParticipants, fmt.Sprintf("C%d", row), p.Section)
		f.SetCellValue(sheetParticipants, fmt.Sprintf("D%d", row), p.Total)
		f.SetCellValue(sheetParticipants, fmt.Sprintf("E%d", row), p.Max)
		if p.CVValid {
			f.SetCellValue(sheetParticipants, fmt.Sprintf("F%d", row), fmt.Sprintf("%.3f", p.CV))
		} else {
			f.SetCellValue(sheetParticipants, fmt.Sprintf("F%d", row), "N/A")
		}
	}
}

func writeSectionsSheet(f *excelize.File, summary *stats.Summary) {
	headers := []string{"Mjesto", "Sekcija", "Broj članova", "Ukupno", "Piva po osobi"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetSections, cell, h)
	}

	for i, s := range stats.RankSections(summary.Sections) {
		row := i + 2
		f.SetCellValue(sheetSections, fmt.Sprintf("A%d", row), s.Rank)
		f.SetCellValue(sheetSections, fmt.Sprintf("B%d", row), s.Section)
		f.SetCellValue(sheetSections, fmt.Sprintf("C%d", row), s.Members)
		f.SetCellValue(sheetSections, fmt.Sprintf("D%d", row), s.Total)
		f.SetCellValue(sheetSections, fmt.Sprintf("E%d", row), fmt.Sprintf("%.2f", s.PerPerson))
	}
}

func writeDailySheet(f *excelize.File, summary *stats.Summary) {
	headers := []string{"Dan", "Ukupno piva", "Aktivni sudionici", "Postotak aktivnih"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetDaily, cell, h)
	}

	for i, d := range summary.Daily {
		row := i + 2
		f.SetCellValue(sheetDaily, fmt.Sprintf("A%d", row), d.Day)
		f.SetCellValue(sheetDaily, fmt.Sprintf("B%d", row), d.Total)
		f.SetCellValue(sheetDaily, fmt.Sprintf("C%d", row), d.Active)
		f.SetCellValue(sheetDaily, fmt.Sprintf("D%d", row), fmt.Sprintf("%.1f%%", d.ActivePct))
	}
}
