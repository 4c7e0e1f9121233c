// Package report renders the chart images, composes the PDF report and
// the Excel workbook, and prints the console summary.
package report

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/KarloVrd/FlunkyStats/internal/config"
	"github.com/KarloVrd/FlunkyStats/internal/errors"
	"github.com/KarloVrd/FlunkyStats/internal/stats"
)

// Chart file names, in render order. The numeric prefix fixes the
// on-disk ordering.
const (
	ChartOverview      = "00_overview_statistics.png"
	ChartDailyTotals   = "01_piva_po_danu.png"
	ChartDailyActivity = "02_aktivni_ljudi_po_danu.png"
	ChartTotalsTop     = "03_ukupno_top10.png"
	ChartTotalsAll     = "03_ukupno_svi.png"
	ChartMaxTop        = "04_max_piva_top10.png"
	ChartMaxAll        = "04_max_piva_svi.png"
	ChartSections      = "05_sekcije_piva_po_osobi.png"
	ChartCVTop         = "06_cv_top10.png"
	ChartCVAll         = "06_cv_svi.png"
	ChartAgeLine       = "07_line_graph_godine.png"
)

var (
	colorGold       = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	colorCoral      = color.RGBA{R: 240, G: 128, B: 128, A: 255}
	colorOrange     = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	colorLightGreen = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	colorPurple     = color.RGBA{R: 128, G: 0, B: 128, A: 180}
	colorDarkBlue   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	colorLightBlue  = color.RGBA{R: 173, G: 216, B: 230, A: 255}
)

// Renderer draws the chart PNGs for one tournament into a fixed output
// directory.
type Renderer struct {
	logger *slog.Logger
	label  string // "<Name> <Year>" title prefix
	outDir string
}

// NewRenderer creates a new Renderer
func NewRenderer(logger *slog.Logger, label, outDir string) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger, label: label, outDir: outDir}
}

// RenderAll draws the full chart sequence. Charts whose underlying data
// is empty degrade to placeholder images; any other failure aborts.
func (r *Renderer) RenderAll(s *stats.Summary) error {
	steps := []struct {
		file   string
		render func(*stats.Summary, string) error
	}{
		{ChartOverview, r.renderOverview},
		{ChartDailyTotals, r.renderDailyTotals},
		{ChartDailyActivity, r.renderDailyActivity},
		{ChartTotalsTop, r.renderTotalsTop},
		{ChartTotalsAll, r.renderTotalsAll},
		{ChartMaxTop, r.renderMaxTop},
		{ChartMaxAll, r.renderMaxAll},
		{ChartSections, r.renderSections},
		{ChartCVTop, r.renderCVTop},
		{ChartCVAll, r.renderCVAll},
		{ChartAgeLine, r.renderAgeLine},
	}

	for _, step := range steps {
		path := filepath.Join(r.outDir, step.file)
		if err := step.render(s, path); err != nil {
			return errors.NewRenderError(fmt.Sprintf("failed to render %s", step.file), err)
		}
		r.logger.Debug("chart rendered", slog.String("file", step.file))
	}
	return nil
}

func (r *Renderer) renderDailyTotals(s *stats.Summary, path string) error {
	if len(s.Daily) == 0 {
		return r.placeholder(r.label+"\nUkupno Popijenih Piva Po Danu", path, 10, 6)
	}

	values := make(plotter.Values, len(s.Daily))
	labels := make([]string, len(s.Daily))
	for i, d := range s.Daily {
		values[i] = float64(d.Total)
		labels[i] = d.Day
	}

	p := newTitledPlot(r.label + "\nUkupno Popijenih Piva Po Danu")
	p.X.Label.Text = "Dan"
	p.Y.Label.Text = "Broj Piva"

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = colorGold
	bars.LineStyle.Width = vg.Points(1)
	p.Add(bars)
	p.NominalX(labels...)

	addBarValueLabels(p, values, func(v float64) string {
		return strconv.Itoa(int(v))
	})

	return savePNG(p, 10*vg.Inch, 6*vg.Inch, path)
}

func (r *Renderer) renderDailyActivity(s *stats.Summary, path string) error {
	title := fmt.Sprintf("%s\nPostotak Aktivnih Sudionika Po Danu\n(od ukupno %d sudionika, Aktivni = popili bar jednu pivu)",
		r.label, s.Overview.Participants)
	if len(s.Daily) == 0 {
		return r.placeholder(title, path, 10, 6)
	}

	values := make(plotter.Values, len(s.Daily))
	labels := make([]string, len(s.Daily))
	counts := make([]int, len(s.Daily))
	for i, d := range s.Daily {
		values[i] = d.ActivePct
		labels[i] = d.Day
		counts[i] = d.Active
	}

	p := newTitledPlot(title)
	p.X.Label.Text = "Dan"
	p.Y.Label.Text = "Postotak Aktivnih (%)"
	p.Y.Min = 0
	p.Y.Max = 100

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = colorCoral
	bars.LineStyle.Width = vg.Points(1)
	p.Add(bars)
	p.NominalX(labels...)

	// Labels show percentage and headcount.
	for i, v := range values {
		if err := addLabel(p, float64(i), v+2,
			fmt.Sprintf("%.1f%% (%d)", v, counts[i]), draw.XCenter); err != nil {
			return err
		}
	}

	return savePNG(p, 10*vg.Inch, 6*vg.Inch, path)
}

func (r *Renderer) renderTotalsTop(s *stats.Summary, path string) error {
	top := stats.TopWithTies(stats.RankByTotal(s.Participants), config.TopRankSize)
	return r.rankingBars(top,
		r.label+"\nTop 10 - Ukupno Popijenih Piva Kroz Cijeli Teren",
		"Broj Piva", colorCoral, path,
		func(v float64) string { return strconv.Itoa(int(v)) })
}

func (r *Renderer) renderMaxTop(s *stats.Summary, path string) error {
	top := stats.TopWithTies(stats.RankByMax(s.Participants), config.TopRankSize)
	return r.rankingBars(top,
		r.label+"\nTop 10 - Najviše Piva U Jednom Danu",
		"Broj Piva", colorOrange, path,
		func(v float64) string { return strconv.Itoa(int(v)) })
}

func (r *Renderer) renderCVTop(s *stats.Summary, path string) error {
	top := stats.TopWithTies(stats.RankByCV(s.Participants), config.TopRankSize)
	return r.rankingBars(top,
		r.label+"\nTop 10 - Konzistentnost Pijenja po Danima\n(Koeficijent Varijacije, najmanja razlika u dnevnoj konzumaciji)",
		"Stupanj Varijacije (manji broj = veća konzistentnost)", colorPurple, path,
		func(v float64) string { return fmt.Sprintf("%.3f", v) })
}

// rankingBars draws a horizontal bar chart with rank 1 at the top.
func (r *Renderer) rankingBars(ranked []stats.RankedParticipant, title, xLabel string,
	barColor color.Color, path string, format func(float64) string) error {
	if len(ranked) == 0 {
		return r.placeholder(title, path, 12, 8)
	}

	// Bars grow bottom-up, so feed the slice reversed to put first
	// place on top.
	n := len(ranked)
	values := make(plotter.Values, n)
	labels := make([]string, n)
	for i, rp := range ranked {
		values[n-1-i] = rp.Value
		labels[n-1-i] = fmt.Sprintf("%d. %s", rp.Rank, rp.Name)
	}

	p := newTitledPlot(title)
	p.X.Label.Text = xLabel

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return err
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = vg.Points(0.5)
	p.Add(bars)
	p.NominalY(labels...)

	max := values[0]
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	for i, v := range values {
		if err := addLabel(p, v+max*0.01, float64(i), format(v), draw.XLeft); err != nil {
			return err
		}
	}

	return savePNG(p, 12*vg.Inch, 8*vg.Inch, path)
}

func (r *Renderer) renderSections(s *stats.Summary, path string) error {
	title := r.label + "\nNajžednija Sekcija Po Prosječnoj Konzumaciji\n(Piva po osobi u sekciji)"
	ranked := stats.RankSections(s.Sections)
	if len(ranked) == 0 {
		return r.placeholder(title, path, 12, 6)
	}

	values := make(plotter.Values, len(ranked))
	labels := make([]string, len(ranked))
	for i, sec := range ranked {
		values[i] = sec.PerPerson
		labels[i] = fmt.Sprintf("%d. %s", sec.Rank, sec.Section)
	}

	p := newTitledPlot(title)
	p.Y.Label.Text = "Prosjek Piva Po Članu Sekcije"

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = colorLightGreen
	bars.LineStyle.Width = vg.Points(1)
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	addBarValueLabels(p, values, func(v float64) string {
		return fmt.Sprintf("%.1f", v)
	})

	return savePNG(p, 12*vg.Inch, 6*vg.Inch, path)
}

func (r *Renderer) renderAgeLine(s *stats.Summary, path string) error {
	title := r.label + "\nProsjek Konzumacije Piva Po Godinama Starosti\n(Praznine = nema sudionika te dobi)"
	if len(s.Ages) == 0 {
		return r.placeholder(title, path, 12, 6)
	}

	pts := make(plotter.XYs, len(s.Ages))
	for i, b := range s.Ages {
		pts[i].X = float64(b.Age)
		pts[i].Y = b.MeanTotal
	}

	p := newTitledPlot(title)
	p.X.Label.Text = "Godine Starosti"
	p.Y.Label.Text = "Prosjek Popijenih Piva"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.Color = colorDarkBlue

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = colorLightBlue
	scatter.GlyphStyle.Radius = vg.Points(4)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(line, scatter)

	// Sample-size annotations above each point.
	for i, b := range s.Ages {
		if err := addLabel(p, pts[i].X, pts[i].Y+0.3,
			fmt.Sprintf("n=%d", b.Participants), draw.XCenter); err != nil {
			return err
		}
	}

	// Every age from min to max gets a tick, so missing ages show as
	// gaps on the axis.
	minAge, maxAge := s.Ages[0].Age, s.Ages[len(s.Ages)-1].Age
	ticks := make([]plot.Tick, 0, maxAge-minAge+1)
	for age := minAge; age <= maxAge; age++ {
		ticks = append(ticks, plot.Tick{Value: float64(age), Label: strconv.Itoa(age)})
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	return savePNG(p, 12*vg.Inch, 6*vg.Inch, path)
}

// placeholder renders a title plus a "no data" annotation so an empty
// dataset still produces the full file set.
func (r *Renderer) placeholder(title, path string, w, h float64) error {
	p := newTitledPlot(title)
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	if err := addLabel(p, 0.5, 0.5, "Nema podataka", draw.XCenter); err != nil {
		return err
	}
	r.logger.Warn("no data for chart, rendering placeholder",
		slog.String("file", filepath.Base(path)))
	return savePNG(p, vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, path)
}

func newTitledPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)
	return p
}

// addBarValueLabels puts a formatted value above each vertical bar.
func addBarValueLabels(p *plot.Plot, values plotter.Values, format func(float64) string) {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	for i, v := range values {
		_ = addLabel(p, float64(i), v+max*0.02, format(v), draw.XCenter)
	}
}

func addLabel(p *plot.Plot, x, y float64, text string, align draw.XAlignment) error {
	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i].XAlign = align
	}
	p.Add(lbl)
	return nil
}

// savePNG writes the plot at the configured DPI so the PDF composer can
// recover the intended page size from pixel dimensions.
func savePNG(p *plot.Plot, w, h vg.Length, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(config.ChartDPI))
	p.Draw(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}
