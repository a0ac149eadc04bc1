package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Class tags what a cell shows. A cell keeps the highest class drawn into it.
type Class uint8

const (
	ClassNone Class = iota
	ClassSurface0
	ClassSurface1
	ClassSurface2
	ClassSurface3
	ClassSurface4
	ClassPath
	ClassPoint
)

// SurfaceBands is the number of height bands the surface is split into.
const SurfaceBands = 5

// SurfaceClass maps a normalized height in [0, 1] to a surface band.
func SurfaceClass(t float64) Class {
	b := int(t * SurfaceBands)
	if b < 0 {
		b = 0
	}
	if b >= SurfaceBands {
		b = SurfaceBands - 1
	}
	return ClassSurface0 + Class(b)
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Classes       [][]Class
}

// NewCanvas allocates a w×h cell canvas; negative sizes are treated as 0.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{
		Width:   w,
		Height:  h,
		Grid:    make([][]rune, h),
		Classes: make([][]Class, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Classes[i] = make([]Class, w)
	}
	c.Clear()
	return c
}

// Set lights the sub-pixel (x, y). The canvas is (Width*2) x (Height*4)
// sub-pixels; out of range coordinates are ignored.
func (c *Canvas) Set(x, y int, class Class) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if class >= c.Classes[row][col] {
		c.Classes[row][col] = class
	}
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Classes[i][j] = ClassNone
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, class Class) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, class)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawDot fills a small square around (x, y), used for annotated points.
func (c *Canvas) DrawDot(x, y int, class Class) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c.Set(x+dx, y+dy, class)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colors each cell by its class using the theme. Runs of equal class
// share one style call.
func (c *Canvas) Render(th Theme) string {
	var b strings.Builder
	for r, row := range c.Grid {
		start := 0
		for col := 1; col <= len(row); col++ {
			if col < len(row) && c.Classes[r][col] == c.Classes[r][start] {
				continue
			}
			run := string(row[start:col])
			if cls := c.Classes[r][start]; cls == ClassNone {
				b.WriteString(run)
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(th.ClassColor(cls)).Render(run))
			}
			start = col
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
