// Package charts renders report figures as PNG files on disk.
package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"

	"alcancia/internal/logger"
	"alcancia/internal/uuid"
)

// PNGRenderer writes bar and pie charts into a directory and returns the
// file paths. It satisfies the report generator's renderer contract.
type PNGRenderer struct {
	dir string
}

// NewPNGRenderer creates a renderer that writes into dir, creating it if
// needed.
func NewPNGRenderer(dir string) (*PNGRenderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating chart directory: %w", err)
	}
	return &PNGRenderer{dir: dir}, nil
}

// RenderBar draws recommended and actual amounts side by side per label.
func (r *PNGRenderer) RenderBar(labels []string, recommended, actual []float64) (string, error) {
	bars := make([]chart.Value, 0, len(labels)*2)
	for i, label := range labels {
		bars = append(bars,
			chart.Value{Label: label + " (plan)", Value: recommended[i]},
			chart.Value{Label: label + " (real)", Value: actual[i]},
		)
	}

	graph := chart.BarChart{
		Title:    "Presupuesto vs. gasto real",
		Height:   512,
		Width:    128 * len(bars),
		BarWidth: 60,
		Bars:     bars,
	}

	return r.renderToFile("bar", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// RenderPie draws the share of actual spending per category.
func (r *PNGRenderer) RenderPie(labels []string, values []float64) (string, error) {
	slices := make([]chart.Value, 0, len(labels))
	for i, label := range labels {
		slices = append(slices, chart.Value{Label: label, Value: values[i]})
	}

	graph := chart.PieChart{
		Title:  "Gasto por categoría",
		Width:  512,
		Height: 512,
		Values: slices,
	}

	return r.renderToFile("pie", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

func (r *PNGRenderer) renderToFile(kind string, render func(*os.File) error) (string, error) {
	path := filepath.Join(r.dir, fmt.Sprintf("%s-%s.png", kind, uuid.New()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		// Leave no half-written image behind.
		os.Remove(path)
		return "", fmt.Errorf("rendering %s chart: %w", kind, err)
	}

	logger.Get().Debugw("Rendered chart", "kind", kind, "path", path)
	return path, nil
}
