// Package chart draws analytics series as bar and line charts.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/emiliopalmerini/streamstats/internal/analytics"
)

// Format selects the output encoding of a chart.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ErrEmptySeries is returned when there is nothing to draw.
var ErrEmptySeries = errors.New("series has no points")

const (
	defaultHeight = 420
	minWidth      = 640
	maxWidth      = 2400
	barWidth      = 22
	barSpacing    = 8
	rotateAfter   = 12
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case SVG, PNG:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported chart format: %s (use svg or png)", s)
	}
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) renderer() gochart.RendererProvider {
	if f == PNG {
		return gochart.PNG
	}
	return gochart.SVG
}

// Bar draws s as a bar chart, one bar per point in series order.
func Bar(w io.Writer, s analytics.Series, f Format) error {
	if len(s.Points) == 0 {
		return ErrEmptySeries
	}

	bars := make([]gochart.Value, len(s.Points))
	var maxValue float64
	for i, p := range s.Points {
		bars[i] = gochart.Value{Label: p.Label, Value: p.Value}
		maxValue = math.Max(maxValue, p.Value)
	}

	bottom := 40
	xStyle := gochart.Style{}
	if len(bars) > rotateAfter {
		xStyle.TextRotationDegrees = 90
		bottom = 150
	}

	bc := gochart.BarChart{
		Title:      s.Title,
		Width:      widthFor(len(bars)),
		Height:     defaultHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: gochart.Style{Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: bottom}},
		XAxis:      xStyle,
		YAxis: gochart.YAxis{
			Name:  s.YLabel,
			Range: yRange(maxValue),
		},
		Bars: bars,
	}

	if err := bc.Render(f.renderer(), w); err != nil {
		return fmt.Errorf("failed to render %q: %w", s.Title, err)
	}
	return nil
}

// Lines draws c as a line chart with one line per profile.
func Lines(w io.Writer, c analytics.Comparison, f Format) error {
	if len(c.Labels) == 0 || len(c.Lines) == 0 {
		return ErrEmptySeries
	}

	xs := make([]float64, len(c.Labels))
	ticks := make([]gochart.Tick, len(c.Labels))
	for i, label := range c.Labels {
		xs[i] = float64(i)
		ticks[i] = gochart.Tick{Value: float64(i), Label: label}
	}

	var maxValue float64
	series := make([]gochart.Series, 0, len(c.Lines))
	for i, line := range c.Lines {
		for _, v := range line.Values {
			maxValue = math.Max(maxValue, v)
		}
		color := gochart.GetDefaultColor(i)
		series = append(series, gochart.ContinuousSeries{
			Name:    line.Profile,
			XValues: xs,
			YValues: line.Values,
			Style: gochart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    4,
			},
		})
	}

	bottom := 40
	xStyle := gochart.Style{}
	if len(ticks) > rotateAfter {
		xStyle.TextRotationDegrees = 90
		bottom = 80
	}

	ch := gochart.Chart{
		Title:      c.Title,
		Width:      widthFor(len(ticks)),
		Height:     defaultHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: bottom}},
		XAxis: gochart.XAxis{
			Name:  c.XLabel,
			Style: xStyle,
			Ticks: ticks,
			Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(len(ticks)) - 0.5},
		},
		YAxis: gochart.YAxis{
			Name:  c.YLabel,
			Range: yRange(maxValue),
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(f.renderer(), w); err != nil {
		return fmt.Errorf("failed to render %q: %w", c.Title, err)
	}
	return nil
}

// yRange starts at zero and leaves headroom above the tallest value. An
// all-zero series still gets a non-empty range.
func yRange(maxValue float64) *gochart.ContinuousRange {
	if maxValue <= 0 {
		return &gochart.ContinuousRange{Min: 0, Max: 1}
	}
	return &gochart.ContinuousRange{Min: 0, Max: maxValue * 1.1}
}

func widthFor(n int) int {
	w := 120 + n*(barWidth+barSpacing)
	if w < minWidth {
		return minWidth
	}
	if w > maxWidth {
		return maxWidth
	}
	return w
}
