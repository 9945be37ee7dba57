// Package viz renders the strain-vs-mass curve for the terminal: a
// braille log-log plot with the detector sensitivity threshold drawn
// as a dashed horizontal line.
package viz

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultPlotWidth  = 72
	DefaultPlotHeight = 18
)

// LogLogPlot maps a positive curve into log-log canvas space.
type LogLogPlot struct {
	Width     int     // canvas width in character cells
	Height    int     // canvas height in character cells
	Threshold float64 // horizontal reference line; 0 disables it
}

func NewLogLogPlot(threshold float64) *LogLogPlot {
	return &LogLogPlot{
		Width:     DefaultPlotWidth,
		Height:    DefaultPlotHeight,
		Threshold: threshold,
	}
}

// Render draws the curve and returns the framed plot with decade axis
// labels. Masses and strains must be index-aligned and strictly
// positive.
func (p *LogLogPlot) Render(masses, strains []float64) string {
	if len(masses) < 2 || len(masses) != len(strains) {
		return ""
	}

	lx0 := math.Log10(masses[0])
	lx1 := math.Log10(masses[len(masses)-1])

	ly0, ly1 := logBounds(strains, p.Threshold)

	canvas := NewCanvas(p.Width, p.Height)
	subW := float64(p.Width*2 - 1)
	subH := float64(p.Height*4 - 1)

	toX := func(m float64) int {
		return int(subW * (math.Log10(m) - lx0) / (lx1 - lx0))
	}
	toY := func(h float64) int {
		// Canvas rows grow downward; larger strain sits higher.
		return int(subH * (ly1 - math.Log10(h)) / (ly1 - ly0))
	}

	if p.Threshold > 0 {
		canvas.DrawHLine(toY(p.Threshold), true)
	}

	px, py := toX(masses[0]), toY(strains[0])
	for i := 1; i < len(masses); i++ {
		x, y := toX(masses[i]), toY(strains[i])
		canvas.DrawLine(px, py, x, y)
		px, py = x, y
	}

	return p.frame(canvas, lx0, lx1, ly0, ly1)
}

func (p *LogLogPlot) frame(canvas *Canvas, lx0, lx1, ly0, ly1 float64) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  1e%-4.0f ┌%s┐\n", ly1, strings.Repeat("─", p.Width)))

	rows := strings.Split(strings.TrimRight(canvas.String(), "\n"), "\n")
	for i, row := range rows {
		if i == len(rows)/2 {
			b.WriteString(fmt.Sprintf("  1e%-4.0f │%s│\n", (ly0+ly1)/2, row))
		} else {
			b.WriteString(fmt.Sprintf("         │%s│\n", row))
		}
	}

	b.WriteString(fmt.Sprintf("  1e%-4.0f └%s┘\n", ly0, strings.Repeat("─", p.Width)))
	b.WriteString(fmt.Sprintf("          1e%.0f%s1e%.0f g\n",
		lx0, strings.Repeat(" ", p.Width-10), lx1))

	return b.String()
}

// logBounds returns the decade bounds of the plot: the curve's span
// widened to whole decades and to include the threshold line.
func logBounds(strains []float64, threshold float64) (float64, float64) {
	lo, hi := strains[0], strains[0]
	for _, h := range strains {
		if h < lo {
			lo = h
		}
		if h > hi {
			hi = h
		}
	}

	llo, lhi := math.Floor(math.Log10(lo)), math.Ceil(math.Log10(hi))
	if threshold > 0 {
		lt := math.Log10(threshold)
		llo = math.Min(llo, math.Floor(lt))
		lhi = math.Max(lhi, math.Ceil(lt))
	}
	if llo == lhi {
		lhi++
	}
	return llo, lhi
}
