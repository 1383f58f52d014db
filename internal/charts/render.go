// Package charts renders dashboard chart payloads to images with gonum/plot.
package charts

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/jengzang/solar-site-backend-go/internal/models"
)

var (
	// ErrNoData is returned when a chart has nothing to draw
	ErrNoData = errors.New("chart has no data")
	// ErrUnsupportedFormat is returned for an image format other than png or svg
	ErrUnsupportedFormat = errors.New("unsupported chart format")
)

// Supported image formats
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var (
	barColor       = color.RGBA{R: 244, G: 162, B: 38, A: 255}
	selectedColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	selectedFill   = color.RGBA{R: 31, G: 119, B: 180, A: 70}
	benchmarkColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	spokeColor     = color.Gray{Y: 200}
)

// Size is the output image size
type Size struct {
	Width  vg.Length
	Height vg.Length
}

// DefaultSize is 16cm x 10cm
var DefaultSize = Size{Width: 16 * vg.Centimeter, Height: 10 * vg.Centimeter}

// ContentType returns the MIME type of a format
func ContentType(format string) (string, error) {
	switch format {
	case FormatPNG:
		return "image/png", nil
	case FormatSVG:
		return "image/svg+xml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// RenderTopBar draws the ranking as horizontal bars, best region on top
func RenderTopBar(w io.Writer, chart models.BarChart, format string, size Size) error {
	if _, err := ContentType(format); err != nil {
		return err
	}
	if len(chart.Bars) == 0 {
		return ErrNoData
	}

	n := len(chart.Bars)
	values := make(plotter.Values, n)
	labels := make([]string, n)
	// Index 0 is drawn at the bottom, so reverse the rank order
	for i, b := range chart.Bars {
		values[n-1-i] = b.Value
		labels[n-1-i] = b.Label
	}

	p := plot.New()
	p.Title.Text = chart.Title
	p.X.Label.Text = chart.XAxis
	p.Y.Label.Text = chart.YAxis

	bars, err := plotter.NewBarChart(values, barWidth(size.Height, n))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	p.NominalY(labels...)
	p.X.Min = 0
	if max := maxValue(values); max > 0 {
		p.X.Max = max * 1.1
	}
	p.Add(plotter.NewGrid())

	return write(w, p, format, size)
}

// RenderRadar draws the region profile against the benchmark. Each spoke is
// scaled by its benchmark so metrics with different units share one chart.
func RenderRadar(w io.Writer, radar models.RadarChart, format string, size Size) error {
	if _, err := ContentType(format); err != nil {
		return err
	}
	if len(radar.Axes) < 3 {
		return ErrNoData
	}

	k := len(radar.Axes)
	selected := make(plotter.XYs, k)
	benchmark := make(plotter.XYs, k+1)
	labelXYs := make([]plotter.XY, k)
	labels := make([]string, k)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: %s", radar.Title, radar.RegionID)
	p.HideAxes()

	for i, axis := range radar.Axes {
		angle := math.Pi/2 - 2*math.Pi*float64(i)/float64(k)
		cos, sin := math.Cos(angle), math.Sin(angle)

		r := 0.0
		if axis.Benchmark > 0 && !axis.Missing {
			r = axis.Selected / axis.Benchmark
		}
		selected[i] = plotter.XY{X: r * cos, Y: r * sin}
		benchmark[i] = plotter.XY{X: cos, Y: sin}
		labelXYs[i] = plotter.XY{X: 1.15 * cos, Y: 1.15 * sin}
		labels[i] = axis.Metric

		spoke, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: cos, Y: sin}})
		if err != nil {
			return fmt.Errorf("failed to build spoke %s: %w", axis.Metric, err)
		}
		spoke.Color = spokeColor
		p.Add(spoke)
	}
	benchmark[k] = benchmark[0]

	area, err := plotter.NewPolygon(selected)
	if err != nil {
		return fmt.Errorf("failed to build region polygon: %w", err)
	}
	area.Color = selectedFill
	area.LineStyle.Color = selectedColor
	area.LineStyle.Width = vg.Points(2)

	outline, err := plotter.NewLine(benchmark)
	if err != nil {
		return fmt.Errorf("failed to build benchmark outline: %w", err)
	}
	outline.Color = benchmarkColor
	outline.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
	if err != nil {
		return fmt.Errorf("failed to build labels: %w", err)
	}
	for i := range names.TextStyle {
		names.TextStyle[i].XAlign = draw.XCenter
		names.TextStyle[i].YAlign = draw.YCenter
	}

	p.Add(area, outline, names)
	p.Legend.Add("Selected Region", area)
	p.Legend.Add("Max Value", outline)
	p.Legend.Top = true

	p.X.Min, p.X.Max = -1.4, 1.4
	p.Y.Min, p.Y.Max = -1.3, 1.3

	return write(w, p, format, size)
}

func write(w io.Writer, p *plot.Plot, format string, size Size) error {
	wt, err := p.WriterTo(size.Width, size.Height, format)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", format, err)
	}
	return nil
}

func barWidth(height vg.Length, n int) vg.Length {
	width := height / vg.Length(2*n+4)
	if width > vg.Points(24) {
		width = vg.Points(24)
	}
	if width < vg.Points(2) {
		width = vg.Points(2)
	}
	return width
}

func maxValue(values plotter.Values) float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}
