// Package figure assembles the landscape, the annotated path and the scene
// layout into a plotly.js figure: one surface trace, one marker+text trace
// for the points and one dashed line trace per segment.
package figure

import (
	"fmt"

	"github.com/san-kum/fitscape/internal/alphabet"
	"github.com/san-kum/fitscape/internal/annotate"
	"github.com/san-kum/fitscape/internal/config"
	"github.com/san-kum/fitscape/internal/landscape"
)

const (
	colorbarTitle    = "Fitness"
	colorbarTickSize = 10
	colorbarFontSize = 12
	transparent      = "rgba(0,0,0,0)"
)

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace covers the subset of plotly surface and scatter3d attributes used
// here. X and Y hold []int or []float64, Z holds [][]float64 for surfaces.
type Trace struct {
	Type         string    `json:"type"`
	Name         string    `json:"name,omitempty"`
	X            any       `json:"x"`
	Y            any       `json:"y"`
	Z            any       `json:"z"`
	Mode         string    `json:"mode,omitempty"`
	Text         []string  `json:"text,omitempty"`
	TextPosition string    `json:"textposition,omitempty"`
	Colorscale   string    `json:"colorscale,omitempty"`
	Colorbar     *Colorbar `json:"colorbar,omitempty"`
	ShowScale    *bool     `json:"showscale,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
	Line         *Line     `json:"line,omitempty"`
}

type Colorbar struct {
	Title    Title     `json:"title"`
	TickVals []float64 `json:"tickvals"`
	TickText []string  `json:"ticktext"`
	TickFont Font      `json:"tickfont"`
}

type Title struct {
	Text string `json:"text"`
	Font *Font  `json:"font,omitempty"`
}

type Font struct {
	Size int `json:"size"`
}

type Marker struct {
	Size       float64   `json:"size"`
	Color      any       `json:"color"`
	Colorscale string    `json:"colorscale,omitempty"`
	Colorbar   *Colorbar `json:"colorbar,omitempty"`
	ShowScale  *bool     `json:"showscale,omitempty"`
}

type Line struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
	Dash  string  `json:"dash,omitempty"`
}

type Layout struct {
	Title Title `json:"title"`
	Scene Scene `json:"scene"`
}

type Scene struct {
	XAxis  Axis   `json:"xaxis"`
	YAxis  Axis   `json:"yaxis"`
	ZAxis  Axis   `json:"zaxis"`
	Camera Camera `json:"camera"`
}

type Axis struct {
	Title           Title    `json:"title"`
	TickMode        string   `json:"tickmode,omitempty"`
	TickVals        []int    `json:"tickvals,omitempty"`
	TickText        []string `json:"ticktext,omitempty"`
	ShowGrid        bool     `json:"showgrid"`
	ZeroLine        bool     `json:"zeroline"`
	ShowBackground  bool     `json:"showbackground"`
	BackgroundColor string   `json:"backgroundcolor"`
}

type Camera struct {
	Eye Eye `json:"eye"`
}

type Eye struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Build lays out the figure. The surface z matrix is row-indexed by the
// second symbol so that the surface at (x=i, y=j) has height f(i, j), the
// same height carried by the annotated points.
func Build(cfg *config.Config, a *alphabet.Alphabet, l *landscape.Landscape, p *annotate.Path) *Figure {
	axis := a.Indices()
	ticks := colorbar(l, cfg.ColorbarTicks)

	fig := &Figure{
		Data: make([]Trace, 0, 2+len(p.Segments)),
		Layout: Layout{
			Title: Title{Text: cfg.Title},
			Scene: Scene{
				XAxis:  categoryAxis("Amino Acid 1", axis, a.Symbols()),
				YAxis:  categoryAxis("Amino Acid 2", axis, a.Symbols()),
				ZAxis:  Axis{Title: Title{Text: "Fitness"}, BackgroundColor: transparent},
				Camera: Camera{Eye: Eye{X: cfg.Camera.X, Y: cfg.Camera.Y, Z: cfg.Camera.Z}},
			},
		},
	}

	fig.Data = append(fig.Data, Trace{
		Type:       "surface",
		Name:       "landscape",
		X:          axis,
		Y:          axis,
		Z:          l.Transposed(),
		Colorscale: cfg.SurfaceColorscale,
		Colorbar:   ticks,
		ShowScale:  boolPtr(true),
	})

	xs, ys := make([]int, len(p.Points)), make([]int, len(p.Points))
	for k, pt := range p.Points {
		xs[k], ys[k] = pt.I, pt.J
	}
	fig.Data = append(fig.Data, Trace{
		Type:         "scatter3d",
		Name:         "points",
		X:            xs,
		Y:            ys,
		Z:            p.Heights(),
		Mode:         "markers+text",
		Text:         p.Labels(),
		TextPosition: "top center",
		Marker: &Marker{
			Size:       cfg.MarkerSize,
			Color:      p.Heights(),
			Colorscale: cfg.MarkerColorscale,
			Colorbar:   ticks,
			ShowScale:  boolPtr(true),
		},
	})

	for _, seg := range p.Segments {
		fig.Data = append(fig.Data, Trace{
			Type: "scatter3d",
			Name: fmt.Sprintf("%s → %s", seg.From.Pair, seg.To.Pair),
			X:    []int{seg.From.I, seg.To.I},
			Y:    []int{seg.From.J, seg.To.J},
			Z:    []float64{seg.From.Height, seg.To.Height},
			Mode: "lines+markers",
			Line: &Line{Color: cfg.Path.Color, Width: cfg.Path.Width, Dash: cfg.Path.Dash},
			Marker: &Marker{
				Size:  cfg.Path.MarkerSize,
				Color: cfg.Path.Color,
			},
		})
	}

	return fig
}

func colorbar(l *landscape.Landscape, k int) *Colorbar {
	vals := l.Ticks(k)
	text := make([]string, len(vals))
	for i, v := range vals {
		text[i] = fmt.Sprintf("%.2f", v)
	}
	return &Colorbar{
		Title:    Title{Text: colorbarTitle, Font: &Font{Size: colorbarFontSize}},
		TickVals: vals,
		TickText: text,
		TickFont: Font{Size: colorbarTickSize},
	}
}

func categoryAxis(title string, vals []int, text []string) Axis {
	return Axis{
		Title:           Title{Text: title},
		TickMode:        "array",
		TickVals:        vals,
		TickText:        text,
		BackgroundColor: transparent,
	}
}

func boolPtr(b bool) *bool { return &b }
