// Package export renders grid snapshots to standalone image formats.
package export

import (
	"fmt"
	"strings"

	"github.com/mgrid/casim/internal/grid"
)

// statePalette maps cell states to SVG fill colors; states beyond the
// palette wrap around.
var statePalette = []string{
	"",
	"#00ff88",
	"#00ccff",
	"#ff4444",
	"#ffcc00",
	"#ff00ff",
	"#ff8800",
	"#00ffff",
}

// GridToSVG renders a grid snapshot as an SVG document with one rect per
// live cell, cellSize pixels on a side.
func GridToSVG(g *grid.Grid, cellSize float64) string {
	if g == nil {
		return ""
	}
	if cellSize <= 0 {
		cellSize = 8
	}

	width := float64(g.W) * cellSize
	height := float64(g.H) * cellSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := cells[y*g.W+x]
			if v == 0 {
				continue
			}
			fill := statePalette[int(v)%len(statePalette)]
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(x)*cellSize, float64(y)*cellSize, cellSize, cellSize, fill))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG plots a metric series as an SVG polyline, for run reports.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	rangeV := maxV - minV
	if rangeV == 0 {
		rangeV = 1
	}
	minV -= rangeV * 0.1
	maxV += rangeV * 0.1
	rangeV = maxV - minV

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / float64(len(values)-1) * float64(width)
		y := float64(height) - (v-minV)/rangeV*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
