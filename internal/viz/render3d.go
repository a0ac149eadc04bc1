package viz

import (
	"math"
	"sort"

	"github.com/san-kum/fitscape/internal/annotate"
	"github.com/san-kum/fitscape/internal/landscape"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// Camera orbits the scene origin with z up. Yaw is the azimuth of the eye in
// the xy plane, Pitch its elevation.
type Camera struct {
	Yaw, Pitch, Distance float64
	Zoom                 float64
	Near                 float64
}

const maxPitch = 1.55

// NewCamera places the camera at eye, looking at the origin.
func NewCamera(eye Vec3) *Camera {
	d := eye.Length()
	if d == 0 {
		eye, d = Vec3{1.5, 1.5, 1.5}, math.Sqrt(3*1.5*1.5)
	}
	c := &Camera{
		Yaw:      math.Atan2(eye.Y, eye.X),
		Pitch:    math.Atan2(eye.Z, math.Hypot(eye.X, eye.Y)),
		Distance: d,
		Zoom:     1.0,
		Near:     0.05,
	}
	c.Tilt(0)
	return c
}

func (c *Camera) Rotate(a float64) { c.Yaw += a }
func (c *Camera) Tilt(a float64) {
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+a))
}
func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// Eye is the camera position in world coordinates.
func (c *Camera) Eye() Vec3 {
	cp := math.Cos(c.Pitch)
	return Vec3{
		c.Distance * cp * math.Cos(c.Yaw),
		c.Distance * cp * math.Sin(c.Yaw),
		c.Distance * math.Sin(c.Pitch),
	}
}

// basis returns right, up and forward unit vectors of the view.
func (c *Camera) basis() (Vec3, Vec3, Vec3) {
	f := c.Eye().Scale(-1).Normalize()
	r := f.Cross(Vec3{0, 0, 1})
	if r.Length() < 1e-9 {
		r = Vec3{1, 0, 0}
	}
	r = r.Normalize()
	return r, r.Cross(f), f
}

// ProjectF maps world p onto a sw×sh plane. depth is the distance along the
// view direction; visible is false behind the near plane or off screen.
func (c *Camera) ProjectF(p Vec3, sw, sh float64) (x, y, depth float64, visible bool) {
	r, u, f := c.basis()
	depth = p.Dot(f) + c.Distance
	if depth <= c.Near {
		return 0, 0, depth, false
	}
	s := c.Distance / depth * c.Zoom * math.Min(sw, sh) * 0.9
	x = p.Dot(r)*s + sw/2
	y = -p.Dot(u)*s + sh/2
	return x, y, depth, x >= 0 && x < sw && y >= 0 && y < sh
}

// Project converts 3D world coordinates to 2D screen coordinates.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	x, y, d, v := c.ProjectF(p, float64(sw), float64(sh))
	return int(math.Round(x)), int(math.Round(y)), d, v
}

type Edge struct {
	Start, End Vec3
	Class      Class
}

// Label is text anchored at a world position.
type Label struct {
	At   Vec3
	Text string
}

// Scene is the landscape wireframe plus the annotated path, normalized to
// the cube [-0.5, 0.5]³.
type Scene struct {
	Edges  []Edge
	Points []Vec3
	Labels []Label
}

const heightScale = 0.6

// NewScene builds a wireframe over every grid row and column and overlays
// the path segments and points.
func NewScene(l *landscape.Landscape, p *annotate.Path) *Scene {
	n := l.Size()
	lo, hi := l.Bounds()
	span := hi - lo
	if span == 0 {
		span = 1
	}
	step := 1.0
	if n > 1 {
		step = 1 / float64(n-1)
	}
	norm := func(h float64) float64 { return (h - lo) / span }
	world := func(i, j int, h float64) Vec3 {
		return Vec3{float64(i)*step - 0.5, float64(j)*step - 0.5, (norm(h) - 0.5) * heightScale}
	}
	grid := l.Grid()

	s := &Scene{}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := world(i, j, grid[i][j])
			if i+1 < n {
				h := (grid[i][j] + grid[i+1][j]) / 2
				s.Edges = append(s.Edges, Edge{a, world(i+1, j, grid[i+1][j]), SurfaceClass(norm(h))})
			}
			if j+1 < n {
				h := (grid[i][j] + grid[i][j+1]) / 2
				s.Edges = append(s.Edges, Edge{a, world(i, j+1, grid[i][j+1]), SurfaceClass(norm(h))})
			}
		}
	}
	if p == nil {
		return s
	}
	for _, seg := range p.Segments {
		s.Edges = append(s.Edges, Edge{
			world(seg.From.I, seg.From.J, seg.From.Height),
			world(seg.To.I, seg.To.J, seg.To.Height),
			ClassPath,
		})
	}
	for _, pt := range p.Points {
		at := world(pt.I, pt.J, pt.Height)
		s.Points = append(s.Points, at)
		s.Labels = append(s.Labels, Label{At: at, Text: pt.Label()})
	}
	return s
}

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
	class          Class
}

// Render3D draws the scene far-to-near, then the path points on top.
func Render3D(c *Canvas, s *Scene, cam *Camera) {
	if c == nil || s == nil || cam == nil {
		return
	}
	sw, sh := c.Width*2, c.Height*4
	proj := make([]projectedEdge, 0, len(s.Edges))
	for _, e := range s.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if d1 <= cam.Near || d2 <= cam.Near || (!v1 && !v2) {
			continue
		}
		proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Class})
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].depth > proj[j].depth })
	for _, e := range proj {
		c.DrawLine(e.x1, e.y1, e.x2, e.y2, e.class)
	}
	for _, p := range s.Points {
		if x, y, _, ok := cam.Project(p, sw, sh); ok {
			c.DrawDot(x, y, ClassPoint)
		}
	}
}
