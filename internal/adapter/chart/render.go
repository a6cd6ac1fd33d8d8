// Package chart renders state accident maps as PNG scatter plots. Markers are
// drawn over a light graticule, with the viewport fitted to the sanitized
// coordinate ranges.
package chart

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/fars-report/internal/domain"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Renderer draws StateMap images at a fixed pixel size.
type Renderer struct {
	width  int
	height int
}

// New returns a renderer. Non-positive dimensions fall back to 800x600.
func New(width, height int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &Renderer{width: width, height: height}
}

// markerStyle renders points only, no connecting line.
func markerStyle() chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    chart.ColorRed,
	}
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: drawing.Color{R: 220, G: 220, B: 220, A: 255},
		StrokeWidth: 1.0,
	}
}

// axisBounds pads [min,max] by a 5% margin so markers never sit on the frame.
// A degenerate span (single point, or every marker on one meridian/parallel)
// widens to half a degree on each side.
func axisBounds(min, max float64) (float64, float64) {
	span := max - min
	if span <= 0 {
		return min - 0.5, max + 0.5
	}
	pad := span * 0.05
	return min - pad, max + pad
}

// Render draws the map and returns the encoded PNG.
func (r *Renderer) Render(m domain.StateMap) ([]byte, error) {
	xs := make([]float64, len(m.Points))
	ys := make([]float64, len(m.Points))
	for i, p := range m.Points {
		xs[i] = p.Lon
		ys[i] = p.Lat
	}

	lonMin, lonMax := axisBounds(m.LonMin, m.LonMax)
	latMin, latMax := axisBounds(m.LatMin, m.LatMax)

	ch := chart.Chart{
		Title:      m.Title(),
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 10}},
		XAxis: chart.XAxis{
			Name:           "Longitude",
			Range:          &chart.ContinuousRange{Min: lonMin, Max: lonMax},
			Ticks:          degreeTicks(lonMin, lonMax),
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Latitude",
			Range:          &chart.ContinuousRange{Min: latMin, Max: latMax},
			Ticks:          degreeTicks(latMin, latMax),
			GridMajorStyle: gridStyle(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Accidents",
				XValues: xs,
				YValues: ys,
				Style:   markerStyle(),
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// degreeTicks places up to eight ticks between [min,max] on nice degree steps.
func degreeTicks(min, max float64) []chart.Tick {
	span := max - min
	if span <= 0 {
		return nil
	}
	step := math.Pow(10, math.Floor(math.Log10(span/7)))
	for _, mult := range []float64{1, 2, 2.5, 5, 10} {
		if span/(step*mult) <= 8 {
			step *= mult
			break
		}
	}
	start := math.Floor(min/step) * step
	ticks := []chart.Tick{}
	for v := start; v <= max+step/2; v += step {
		if v < min {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatDegree(v)})
		if len(ticks) > 10 {
			break
		}
	}
	if len(ticks) < 2 {
		return nil
	}
	return ticks
}

func formatDegree(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
