package report

import (
	"fmt"
	"image"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/KarloVrd/FlunkyStats/internal/config"
	"github.com/KarloVrd/FlunkyStats/internal/errors"
)

// pdfCharts is the fixed page order: the comprehensive table variants
// replace the top-10 charts in the printed report.
var pdfCharts = []string{
	ChartOverview,
	ChartDailyTotals,
	ChartDailyActivity,
	ChartTotalsAll,
	ChartMaxAll,
	ChartCVAll,
	ChartSections,
	ChartAgeLine,
}

// ComposePDF concatenates the rendered charts into a multi-page PDF,
// one image per page, each page sized to the image at the render DPI.
// Missing images are skipped with a warning so a partial render still
// yields a report.
func ComposePDF(logger *slog.Logger, chartDir, outputPath string) error {
	if logger == nil {
		logger = slog.Default()
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: 10, Ht: 10},
	})

	pages := 0
	for _, name := range pdfCharts {
		imgPath := filepath.Join(chartDir, name)
		w, h, err := imageSizeInches(imgPath)
		if err != nil {
			logger.Warn("chart missing, skipping PDF page",
				slog.String("file", name), slog.Any("error", err))
			continue
		}

		orientation := "P"
		if w > h {
			orientation = "L"
		}
		pdf.AddPageFormat(orientation, fpdf.SizeType{Wd: w, Ht: h})
		pdf.ImageOptions(imgPath, 0, 0, w, h, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pages++
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return errors.NewRenderError("failed to write PDF report", err)
	}

	logger.Info("PDF report composed",
		slog.String("path", outputPath),
		slog.Int("pages", pages))
	return nil
}

// imageSizeInches reads a PNG header and converts pixel dimensions to
// inches at the render DPI.
func imageSizeInches(path string) (w, h float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	dpi := float64(config.ChartDPI)
	return float64(cfg.Width) / dpi, float64(cfg.Height) / dpi, nil
}
