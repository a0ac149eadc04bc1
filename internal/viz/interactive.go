package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	rotateStep = 0.1
	minCols    = 20
	minRows    = 8
)

// Viewer is a bubbletea model that orbits the scene in the terminal.
type Viewer struct {
	title         string
	scene         *Scene
	home          Camera
	camera        *Camera
	canvas        *Canvas
	theme         int
	width, height int
	summary       []string
	quitting      bool
}

// NewViewer starts on the named theme with the camera at cam. summary lines
// are shown under the plot.
func NewViewer(title string, scene *Scene, cam *Camera, theme string, summary []string) *Viewer {
	v := &Viewer{
		title:   title,
		scene:   scene,
		home:    *cam,
		camera:  cam,
		width:   80,
		height:  24,
		summary: summary,
	}
	for i, t := range Themes {
		if t.Name == theme {
			v.theme = i
		}
	}
	v.resize()
	return v
}

func (v *Viewer) Init() tea.Cmd { return nil }

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.resize()
	}
	return v, nil
}

func (v *Viewer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		v.quitting = true
		return v, tea.Quit
	case "left", "h":
		v.camera.Rotate(-rotateStep)
	case "right", "l":
		v.camera.Rotate(rotateStep)
	case "up", "k":
		v.camera.Tilt(rotateStep)
	case "down", "j":
		v.camera.Tilt(-rotateStep)
	case "+", "=":
		v.camera.ZoomIn()
	case "-", "_":
		v.camera.ZoomOut()
	case "t":
		v.theme = (v.theme + 1) % len(Themes)
	case "r":
		*v.camera = v.home
	}
	return v, nil
}

// resize keeps room for the header, footer and summary lines.
func (v *Viewer) resize() {
	cols := v.width - 2
	rows := v.height - 5 - len(v.summary)
	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	v.canvas = NewCanvas(cols, rows)
}

func (v *Viewer) Theme() Theme    { return Themes[v.theme] }
func (v *Viewer) Camera() *Camera { return v.camera }

func (v *Viewer) View() string {
	if v.quitting {
		return ""
	}
	th := v.Theme()
	v.canvas.Clear()
	Render3D(v.canvas, v.scene, v.camera)

	var b strings.Builder
	b.WriteString(Accented(th).Render(v.title))
	b.WriteString("\n")
	b.WriteString(v.canvas.Render(th))
	for _, line := range v.summary {
		b.WriteString(MetricLabel.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s\n",
		MetricLabel.Render("yaw"), MetricValue.Render(fmt.Sprintf("%.2f", v.camera.Yaw)),
		MetricLabel.Render("pitch"), MetricValue.Render(fmt.Sprintf("%.2f", v.camera.Pitch)),
		MetricLabel.Render("theme"), MetricValue.Render(th.Name)))
	b.WriteString(KeyHint.Render("←→ rotate  ↑↓ tilt  +/- zoom  t theme  r reset  q quit"))
	return b.String()
}

// Run blocks until the user quits.
func Run(v *Viewer) error {
	_, err := tea.NewProgram(v, tea.WithAltScreen()).Run()
	return err
}
