package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/KarloVrd/FlunkyStats/internal/config"
	"github.com/KarloVrd/FlunkyStats/internal/stats"
)

// PrintSummary writes the overview block and the top-10 total ranking
// to w as text tables.
func PrintSummary(w io.Writer, label string, summary *stats.Summary) {
	o := summary.Overview

	color.New(color.FgCyan, color.Bold).Fprintf(w, "\n%s - Pregled\n", label)

	overview := tablewriter.NewWriter(w)
	overview.SetHeader([]string{"Statistika", "Vrijednost"})
	overview.Append([]string{"Sudionici", strconv.Itoa(o.Participants)})
	overview.Append([]string{"Dani", strconv.Itoa(o.Days)})
	overview.Append([]string{"Ukupno popijenih piva", strconv.Itoa(o.TotalConsumed)})
	overview.Append([]string{"Prosječno dnevno po osobi", fmt.Sprintf("%.2f", o.MeanPerPersonDay)})
	overview.Append([]string{"Pili svaki dan", fmt.Sprintf("%d (%.1f%%)", o.DrankEveryDay, o.DrankEveryDayPct)})
	overview.Append([]string{"Aktivni sudionici", fmt.Sprintf("%d (%.1f%%)", o.ActiveTotal, o.ActiveTotalPct)})
	overview.Append([]string{"Najviše piva u jednom danu", strconv.Itoa(o.MaxSingleDay)})
	overview.Append([]string{"Najviše piva ukupno", strconv.Itoa(o.MaxTotal)})
	overview.Render()

	top := stats.TopWithTies(stats.RankByTotal(summary.Participants), config.TopRankSize)
	if len(top) == 0 {
		return
	}

	color.New(color.FgYellow, color.Bold).Fprintln(w, "\nTop 10 - Ukupno popijenih piva")

	ranking := tablewriter.NewWriter(w)
	ranking.SetHeader([]string{"Mjesto", "Ime i Prezime", "Sekcija", "Ukupno"})
	for _, p := range top {
		ranking.Append([]string{
			fmt.Sprintf("%d.", p.Rank),
			p.Name,
			p.Section,
			strconv.Itoa(p.Total),
		})
	}
	ranking.Render()
}
