// SPDX-License-Identifier: MIT

// Package visualize renders metric distributions as sorted bar charts.
//
// Scores are sorted descending and drawn left to right, one bar per node,
// so the chart shows the shape of the distribution rather than individual
// nodes. Output is PNG by default; the format follows the file extension
// (.png, .svg, .pdf, .jpg) when writing to a path.
package visualize

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/copurchase/core"
)

// ErrNoData is returned when no score survives filtering.
var ErrNoData = errors.New("visualize: no data to plot")

// pointsPerPixel converts pixels at the 96 DPI raster default into points.
const pointsPerPixel = 72.0 / 96.0

// Defaults for BarChart.
const (
	DefaultWidthPx  = 800
	DefaultHeightPx = 600
	// plot area width in points used to size bars
	barAreaPoints = 520.0
	minBarPoints  = 0.05
)

// Option configures a chart.
type Option func(*options)

type options struct {
	positiveOnly bool
	maxBars      int
	widthPx      int
	heightPx     int
	color        color.Color
	xLabel       string
	yLabel       string
}

// PositiveOnly drops scores ≤ 0 (unsampled or isolated nodes in closeness maps).
func PositiveOnly() Option {
	return func(o *options) { o.positiveOnly = true }
}

// WithMaxBars keeps only the n highest scores; n ≤ 0 keeps all.
func WithMaxBars(n int) Option {
	return func(o *options) { o.maxBars = n }
}

// WithSize sets the raster size in pixels. Non-positive values are ignored.
func WithSize(widthPx, heightPx int) Option {
	return func(o *options) {
		if widthPx > 0 && heightPx > 0 {
			o.widthPx, o.heightPx = widthPx, heightPx
		}
	}
}

// WithColor sets the bar fill color.
func WithColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.color = c
		}
	}
}

// WithAxisLabels sets the X and Y axis captions.
func WithAxisLabels(x, y string) Option {
	return func(o *options) { o.xLabel, o.yLabel = x, y }
}

func resolve(opts []Option) options {
	o := options{
		widthPx:  DefaultWidthPx,
		heightPx: DefaultHeightPx,
		color:    color.RGBA{B: 255, A: 255},
		xLabel:   "Nodes (sorted by score)",
		yLabel:   "Score",
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// SortedValues returns the scores of m that pass the filters, descending.
func SortedValues(m core.MetricMap, opts ...Option) []float64 {
	o := resolve(opts)

	return sortedValues(m, o)
}

func sortedValues(m core.MetricMap, o options) []float64 {
	vals := make([]float64, 0, len(m))
	for _, v := range m {
		if o.positiveOnly && !(v > 0) {
			continue
		}
		vals = append(vals, v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	if o.maxBars > 0 && len(vals) > o.maxBars {
		vals = vals[:o.maxBars]
	}

	return vals
}

// newPlot builds the bar chart plot for m.
func newPlot(m core.MetricMap, title string, o options) (*plot.Plot, error) {
	vals := sortedValues(m, o)
	if len(vals) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = o.xLabel
	p.Y.Label.Text = o.yLabel
	p.Y.Min = 0

	width := barAreaPoints / float64(len(vals))
	if width < minBarPoints {
		width = minBarPoints
	}
	bars, err := plotter.NewBarChart(plotter.Values(vals), vg.Points(width))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = o.color
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.X.Tick.Marker = plot.ConstantTicks(nil)

	return p, nil
}

func (o options) size() (vg.Length, vg.Length) {
	return vg.Points(float64(o.widthPx) * pointsPerPixel), vg.Points(float64(o.heightPx) * pointsPerPixel)
}

// BarChart renders m to path; the image format follows the extension.
func BarChart(m core.MetricMap, title, path string, opts ...Option) error {
	o := resolve(opts)
	p, err := newPlot(m, title, o)
	if err != nil {
		return fmt.Errorf("BarChart %s: %w", path, err)
	}
	w, h := o.size()
	if err = p.Save(w, h, path); err != nil {
		return fmt.Errorf("BarChart %s: %w", path, err)
	}

	return nil
}

// WriteBarChart renders m as PNG to w.
func WriteBarChart(w io.Writer, m core.MetricMap, title string, opts ...Option) error {
	o := resolve(opts)
	p, err := newPlot(m, title, o)
	if err != nil {
		return fmt.Errorf("WriteBarChart: %w", err)
	}
	width, height := o.size()
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("WriteBarChart: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("WriteBarChart: %w", err)
	}

	return nil
}
