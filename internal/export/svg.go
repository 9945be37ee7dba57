// Package export renders a sweep to SVG, the vector counterpart of the
// terminal plot.
package export

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/akathpalia/kmrsim/internal/viz"
)

// CanvasToSVG converts a braille canvas to an SVG dot field.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#4169e1">
`, width, height, width, height))

	// Braille dot-to-bit mapping.
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CurveToSVG renders the strain curve as a log-log polyline with a
// dashed sensitivity threshold line and decade axis labels.
func CurveToSVG(masses, strains []float64, threshold float64, width, height int) string {
	if len(masses) < 2 || len(masses) != len(strains) {
		return ""
	}

	const margin = 50.0
	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin

	lx0 := math.Log10(masses[0])
	lx1 := math.Log10(masses[len(masses)-1])

	ly0, ly1 := math.Log10(strains[0]), math.Log10(strains[0])
	for _, h := range strains {
		ly0 = math.Min(ly0, math.Log10(h))
		ly1 = math.Max(ly1, math.Log10(h))
	}
	if threshold > 0 {
		ly0 = math.Min(ly0, math.Log10(threshold))
		ly1 = math.Max(ly1, math.Log10(threshold))
	}
	ly0, ly1 = math.Floor(ly0), math.Ceil(ly1)

	toX := func(m float64) float64 {
		return margin + plotW*(math.Log10(m)-lx0)/(lx1-lx0)
	}
	toY := func(lh float64) float64 {
		return margin + plotH*(ly1-lh)/(ly1-ly0)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="none" stroke="#333333"/>
`, width, height, width, height, margin, margin, plotW, plotH))

	if threshold > 0 {
		y := toY(math.Log10(threshold))
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#dc143c" stroke-width="1.8" stroke-dasharray="6,4"/>
`, margin, y, margin+plotW, y))
	}

	sb.WriteString(`<path fill="none" stroke="#4169e1" stroke-width="2.3" d="M`)
	for i := range masses {
		x := toX(masses[i])
		y := toY(math.Log10(strains[i]))
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	// Axis labels on whole decades.
	for e := lx0; e <= lx1+1e-9; e++ {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="11" text-anchor="middle" fill="#333333">1e%.0f</text>
`, toX(math.Pow(10, e)), margin+plotH+16, e))
	}
	for e := ly0; e <= ly1+1e-9; e++ {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="11" text-anchor="end" fill="#333333">1e%.0f</text>
`, margin-6, toY(e)+4, e))
	}

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="13" text-anchor="middle" fill="#111111">PBH mass [g]</text>
<text x="%.1f" y="%.1f" font-size="13" text-anchor="middle" fill="#111111" transform="rotate(-90 14 %.1f)">GW memory strain</text>
</svg>`, margin+plotW/2, margin+plotH+36, 14.0, margin+plotH/2, margin+plotH/2))

	return sb.String()
}

// WriteCurveSVG writes the curve SVG to path.
func WriteCurveSVG(path string, masses, strains []float64, threshold float64, width, height int) error {
	svg := CurveToSVG(masses, strains, threshold, width, height)
	if svg == "" {
		return fmt.Errorf("curve too short to render")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
