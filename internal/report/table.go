package report

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/KarloVrd/FlunkyStats/internal/stats"
)

// tableRow is one label/value pair of the overview table. Rows with an
// empty value act as section headers, fully empty rows as separators.
type tableRow struct {
	label string
	value string
}

func (r *Renderer) renderOverview(s *stats.Summary, path string) error {
	o := s.Overview
	pct := func(n int, p float64) string { return fmt.Sprintf("%d (%.1f%%)", n, p) }

	rows := []tableRow{
		{"STATISTIKE KONZUMACIJE", ""},
		{"Prosječno popijeno dnevno po osobi", fmt.Sprintf("%.2f", o.MeanPerPersonDay)},
		{"Ukupno popijenih piva", strconv.Itoa(o.TotalConsumed)},
		{"", ""},
		{"SUDJELOVANJE", ""},
		{"Pili svaki dan", pct(o.DrankEveryDay, o.DrankEveryDayPct)},
		{"Nisu pili ništa", pct(o.NeverDrank, o.NeverDrankPct)},
		{"Aktivni sudionici", pct(o.ActiveTotal, o.ActiveTotalPct)},
		{"", ""},
		{"EKSTREMNE VRIJEDNOSTI", ""},
		{"Najviše piva u jednom danu", fmt.Sprintf("%d piva", o.MaxSingleDay)},
		{"Najviše piva ukupno", fmt.Sprintf("%d piva", o.MaxTotal)},
	}

	p := newTitledPlot(r.label + " - Pregled Statistika")
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, float64(len(rows)+1)

	for i, row := range rows {
		if row.label == "" {
			continue
		}
		y := float64(len(rows) - i)
		if err := addLabel(p, 0.05, y, row.label, draw.XLeft); err != nil {
			return err
		}
		if row.value != "" {
			if err := addLabel(p, 0.65, y, row.value, draw.XLeft); err != nil {
				return err
			}
		}
	}

	return savePNG(p, 10*vg.Inch, 10*vg.Inch, path)
}

func (r *Renderer) renderTotalsAll(s *stats.Summary, path string) error {
	return r.twoColumnTable(stats.RankByTotal(s.Participants),
		r.label+"\nSvi - Ukupno Piva Kroz Cijeli Teren", path,
		func(v float64) string { return strconv.Itoa(int(v)) })
}

func (r *Renderer) renderMaxAll(s *stats.Summary, path string) error {
	return r.twoColumnTable(stats.RankByMax(s.Participants),
		r.label+"\nSvi - Najviše Piva U Jednom Danu", path,
		func(v float64) string { return strconv.Itoa(int(v)) })
}

func (r *Renderer) renderCVAll(s *stats.Summary, path string) error {
	return r.twoColumnTable(stats.RankByCV(s.Participants),
		r.label+"\nSvi - Konzistentnost Pijenja po Danima, Koeficijent Varijacije CV",
		path,
		func(v float64) string { return fmt.Sprintf("%.3f", v) })
}

// twoColumnTable lays the full ranking out as two side-by-side columns
// of "rank. name value" rows to halve the image height.
func (r *Renderer) twoColumnTable(ranked []stats.RankedParticipant, title, path string,
	format func(float64) string) error {
	if len(ranked) == 0 {
		return r.placeholder(title, path, 10, 10)
	}

	perColumn := (len(ranked) + 1) / 2
	left := ranked[:perColumn]
	right := ranked[perColumn:]

	p := newTitledPlot(title)
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, float64(perColumn+2)

	header := float64(perColumn + 1)
	columns := []struct {
		offset  float64
		entries []stats.RankedParticipant
	}{
		{0.02, left},
		{0.54, right},
	}

	for _, col := range columns {
		if len(col.entries) == 0 {
			continue
		}
		if err := addLabel(p, col.offset, header, "Mjesto  Ime i Prezime  Vrijednost", draw.XLeft); err != nil {
			return err
		}
		for i, e := range col.entries {
			y := float64(perColumn - i)
			line := fmt.Sprintf("%d.  %s  %s", e.Rank, e.Name, format(e.Value))
			if err := addLabel(p, col.offset, y, line, draw.XLeft); err != nil {
				return err
			}
		}
	}

	return savePNG(p, 10*vg.Inch, 10*vg.Inch, path)
}
