// Package charts renders the report's chart images with gonum/plot. It is
// the only place that knows anything about plotting; the report service just
// hands over the bucketed data and a target path.
package charts

import (
	"fmt"
	"image/color"
	"strconv"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/ports"
)

type Renderer struct {
	log *zap.Logger
}

func NewRenderer(log *zap.Logger) ports.ChartRenderer {
	return &Renderer{log: log}
}

// RenderHistogram draws the duration distribution as a bar chart with one
// bar per minute bin.
func (r *Renderer) RenderHistogram(h domain.DurationHistogram, path string) error {
	p := plot.New()
	p.Title.Text = "Verteilung der Austrittsdauer"
	p.X.Label.Text = "Dauer (Minuten)"
	p.Y.Label.Text = "Anzahl"

	values := make(plotter.Values, len(h.Bins))
	labels := make([]string, len(h.Bins))
	for i, c := range h.Bins {
		values[i] = float64(c)
		labels[i] = strconv.Itoa(i)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	bars.LineStyle.Color = color.Black

	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save histogram: %w", err)
	}
	return nil
}

// RenderHeatmap draws the exit frequency grid, weekdays on X, slot rows on
// Y labeled with their configured time window.
func (r *Renderer) RenderHeatmap(g domain.FrequencyGrid, path string) error {
	if len(g.Slots) == 0 {
		return fmt.Errorf("frequency grid has no slots")
	}

	p := plot.New()
	p.Title.Text = "Heatmap der Austritte"
	p.X.Label.Text = "Wochentag"
	p.Y.Label.Text = "Schulstunde"

	hm := plotter.NewHeatMap(gridData{g: g}, palette.Heat(16, 1))
	hm.Min = 0
	if hm.Max <= hm.Min {
		// All-zero grid: keep a non-degenerate color range.
		hm.Max = 1
	}
	p.Add(hm)

	xticks := make([]plot.Tick, len(domain.Weekdays))
	for i, day := range domain.Weekdays {
		xticks[i] = plot.Tick{Value: float64(i), Label: day}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xticks)

	yticks := make([]plot.Tick, len(g.Slots))
	for i, slot := range g.Slots {
		// Row 0 is drawn at the bottom; put the first slot on top.
		yticks[i] = plot.Tick{Value: float64(len(g.Slots) - 1 - i), Label: slot.Label()}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)

	if err := p.Save(6.5*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save heatmap: %w", err)
	}
	return nil
}

// gridData adapts a FrequencyGrid to plotter.GridXYZ. Slot row 0 maps to
// the top of the chart.
type gridData struct {
	g domain.FrequencyGrid
}

func (d gridData) Dims() (int, int) {
	return len(domain.Weekdays), len(d.g.Slots)
}

func (d gridData) Z(c, r int) float64 {
	slot := len(d.g.Slots) - 1 - r
	return float64(d.g.Counts[slot][c])
}

func (d gridData) X(c int) float64 { return float64(c) }
func (d gridData) Y(r int) float64 { return float64(r) }
