package report

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sartorproj/goallan/adev"
)

// ErrNothingToPlot is returned when no row has a positive tau and deviation.
var ErrNothingToPlot = errors.New("report: no positive rows to plot")

// PlotOptions controls Plot.
type PlotOptions struct {
	Title     string    // Plot title (default: "Allan Deviation")
	Label     string    // Legend label (default: none)
	Width     vg.Length // Default 800pt
	Height    vg.Length // Default 400pt
	Format    string    // "png" (default), "svg" or "pdf"
	ErrorBars bool      // Draw ±Error bars
}

// DefaultPlotOptions returns a PNG plot with error bars.
func DefaultPlotOptions() *PlotOptions {
	return &PlotOptions{
		Title:     "Allan Deviation",
		Width:     vg.Points(800),
		Height:    vg.Points(400),
		Format:    "png",
		ErrorBars: true,
	}
}

// rowPoints adapts rows to plotter.XYer and plotter.YErrorer.
type rowPoints []adev.Row

func (p rowPoints) Len() int { return len(p) }

func (p rowPoints) XY(i int) (float64, float64) { return p[i].Tau, p[i].Deviation }

// YError keeps the lower bar above zero so it stays drawable on a log axis.
func (p rowPoints) YError(i int) (float64, float64) {
	low := p[i].Error
	if limit := 0.9 * p[i].Deviation; low > limit {
		low = limit
	}
	return low, p[i].Error
}

// Plot renders deviation versus tau on log-log axes and returns the encoded image.
// Rows with a non-positive tau or deviation are skipped.
func Plot(rows []adev.Row, opts *PlotOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePlot(&buf, rows, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePlot is Plot writing to w.
func WritePlot(w io.Writer, rows []adev.Row, opts *PlotOptions) error {
	defaults := DefaultPlotOptions()
	if opts == nil {
		opts = defaults
	}
	title, width, height, format := opts.Title, opts.Width, opts.Height, strings.ToLower(opts.Format)
	if title == "" {
		title = defaults.Title
	}
	if width <= 0 {
		width = defaults.Width
	}
	if height <= 0 {
		height = defaults.Height
	}
	if format == "" {
		format = defaults.Format
	}

	pts := make(rowPoints, 0, len(rows))
	for _, r := range rows {
		if r.Tau > 0 && r.Deviation > 0 {
			pts = append(pts, r)
		}
	}
	if len(pts) == 0 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Tau (s)"
	p.Y.Label.Text = "Deviation"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	grid := plotter.NewGrid()
	grid.Horizontal.Color = color.Gray{Y: 200}
	grid.Vertical.Color = color.Gray{Y: 200}
	p.Add(grid)

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("report: failed to create line: %w", err)
	}
	line.Color = color.RGBA{B: 200, A: 255}
	line.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(2.5)
	points.Color = color.RGBA{B: 200, A: 255}
	p.Add(line, points)

	if opts.ErrorBars {
		bars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return fmt.Errorf("report: failed to create error bars: %w", err)
		}
		bars.Color = color.Gray{Y: 96}
		p.Add(bars)
	}

	setLogRange(p, pts, opts.ErrorBars)

	if opts.Label != "" {
		p.Legend.Add(opts.Label, line, points)
		p.Legend.Top = true
	}

	writer, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("report: failed to create plot writer: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("report: failed to write plot: %w", err)
	}
	return nil
}

// setLogRange pads the axes by a constant factor. A single point would
// otherwise get a linear ±1 range, which is invalid on a log axis.
func setLogRange(p *plot.Plot, pts rowPoints, bars bool) {
	const pad = 1.5

	p.X.Min, p.X.Max = pts[0].Tau, pts[0].Tau
	p.Y.Min, p.Y.Max = pts[0].Deviation, pts[0].Deviation
	for i, r := range pts {
		lo, hi := r.Deviation, r.Deviation
		if bars {
			el, eh := pts.YError(i)
			lo, hi = lo-el, hi+eh
		}
		p.X.Min = min(p.X.Min, r.Tau)
		p.X.Max = max(p.X.Max, r.Tau)
		p.Y.Min = min(p.Y.Min, lo)
		p.Y.Max = max(p.Y.Max, hi)
	}
	p.X.Min /= pad
	p.X.Max *= pad
	p.Y.Min /= pad
	p.Y.Max *= pad
}
