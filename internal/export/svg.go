package export

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/san-kum/fitscape/internal/viz"
)

const background = "#0a0a0a"

// CanvasToSVG converts a Braille canvas to SVG dots colored by cell class.
func CanvasToSVG(canvas *viz.Canvas, scale float64, th viz.Theme) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	header(&sb, width, height)

	dotRadius := scale * 0.4
	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			fill := string(th.ClassColor(canvas.Classes[y/4][x/2]))
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, float64(x)*scale+scale/2, float64(y)*scale+scale/2, dotRadius, fill))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

type svgLine struct {
	x1, y1, x2, y2 float64
	depth          float64
	class          viz.Class
}

// SceneToSVG projects the scene with cam onto a width×height drawing: the
// wireframe as lines (far first), the path dashed, points as circles with
// their labels.
func SceneToSVG(s *viz.Scene, cam *viz.Camera, width, height int, th viz.Theme) string {
	if s == nil || cam == nil {
		return ""
	}
	w, h := float64(width), float64(height)

	lines := make([]svgLine, 0, len(s.Edges))
	for _, e := range s.Edges {
		x1, y1, d1, v1 := cam.ProjectF(e.Start, w, h)
		x2, y2, d2, v2 := cam.ProjectF(e.End, w, h)
		if d1 <= cam.Near || d2 <= cam.Near || (!v1 && !v2) {
			continue
		}
		lines = append(lines, svgLine{x1, y1, x2, y2, (d1 + d2) / 2, e.Class})
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].depth > lines[j].depth })

	var sb strings.Builder
	header(&sb, w, h)
	for _, l := range lines {
		stroke, extra := string(th.ClassColor(l.class)), ""
		if l.class == viz.ClassPath {
			extra = ` stroke-width="2" stroke-dasharray="6,4"`
		}
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"%s/>
`, l.x1, l.y1, l.x2, l.y2, stroke, extra))
	}
	for k, p := range s.Points {
		x, y, _, ok := cam.ProjectF(p, w, h)
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>
`, x, y, th.Point))
		if k < len(s.Labels) {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="10" text-anchor="middle">%s</text>
`, x, y-8, th.Text, html.EscapeString(s.Labels[k].Text)))
		}
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// WriteSVG writes an svg document produced by SceneToSVG or CanvasToSVG.
func WriteSVG(w io.Writer, svg string) error {
	_, err := io.WriteString(w, svg)
	return err
}

func header(sb *strings.Builder, width, height float64) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))
}
