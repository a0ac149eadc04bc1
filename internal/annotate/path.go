// Package annotate resolves a fixed, ordered list of symbol pairs onto the
// landscape and joins consecutive points into a path.
//
// Segments connect point k to point k+1 in list order; no distance or
// similarity ordering is applied.
package annotate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/fitscape/internal/alphabet"
	"github.com/san-kum/fitscape/internal/landscape"
)

var (
	ErrMalformedPair = errors.New("annotate: malformed pair")
	ErrSizeMismatch  = errors.New("annotate: alphabet and landscape sizes differ")
)

// Pair is an ordered pair of alphabet symbols.
type Pair struct {
	First, Second string
}

func (p Pair) String() string { return p.First + "," + p.Second }

// DefaultPairs is the illustrative trajectory drawn over the landscape.
var DefaultPairs = []Pair{
	{"A", "C"},
	{"D", "E"},
	{"F", "G"},
	{"H", "I"},
	{"K", "L"},
	{"M", "N"},
	{"P", "Q"},
	{"R", "S"},
	{"T", "V"},
	{"W", "Y"},
}

// Point is a pair resolved to grid indices and its height.
type Point struct {
	Pair   Pair
	I, J   int
	Height float64
}

// Label is the text drawn next to the point, e.g. "A,C: 0.00".
func (p Point) Label() string {
	return fmt.Sprintf("%s: %.2f", p.Pair, p.Height)
}

// Segment joins two consecutive points.
type Segment struct {
	From, To Point
}

// Path is the annotated trajectory. len(Segments) == len(Points)-1 unless
// Points is empty.
type Path struct {
	Points   []Point
	Segments []Segment
}

// Build resolves every pair through the alphabet and reads its height from
// the landscape. The first unknown symbol aborts the build.
func Build(a *alphabet.Alphabet, l *landscape.Landscape, pairs []Pair) (*Path, error) {
	if a.Len() != l.Size() {
		return nil, fmt.Errorf("%w: %d symbols, %d×%d grid", ErrSizeMismatch, a.Len(), l.Size(), l.Size())
	}
	path := &Path{Points: make([]Point, 0, len(pairs))}
	for k, pr := range pairs {
		i, err := a.Index(pr.First)
		if err != nil {
			return nil, fmt.Errorf("pair %d (%s): %w", k, pr, err)
		}
		j, err := a.Index(pr.Second)
		if err != nil {
			return nil, fmt.Errorf("pair %d (%s): %w", k, pr, err)
		}
		h, err := l.At(i, j)
		if err != nil {
			return nil, err
		}
		path.Points = append(path.Points, Point{Pair: pr, I: i, J: j, Height: h})
	}
	if len(path.Points) > 1 {
		path.Segments = make([]Segment, 0, len(path.Points)-1)
		for k := 0; k+1 < len(path.Points); k++ {
			path.Segments = append(path.Segments, Segment{From: path.Points[k], To: path.Points[k+1]})
		}
	}
	return path, nil
}

// Heights returns the point heights in path order.
func (p *Path) Heights() []float64 {
	out := make([]float64, len(p.Points))
	for k, pt := range p.Points {
		out[k] = pt.Height
	}
	return out
}

func (p *Path) Labels() []string {
	out := make([]string, len(p.Points))
	for k, pt := range p.Points {
		out[k] = pt.Label()
	}
	return out
}

// ParsePair reads "A,C" (surrounding spaces ignored) into a Pair. Symbol
// membership is checked later by Build.
func ParsePair(s string) (Pair, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Pair{}, fmt.Errorf("%w: %q", ErrMalformedPair, s)
	}
	first, second := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if first == "" || second == "" {
		return Pair{}, fmt.Errorf("%w: %q", ErrMalformedPair, s)
	}
	return Pair{First: first, Second: second}, nil
}

// ParsePairs parses each entry with ParsePair. An empty input yields
// DefaultPairs.
func ParsePairs(entries []string) ([]Pair, error) {
	if len(entries) == 0 {
		out := make([]Pair, len(DefaultPairs))
		copy(out, DefaultPairs)
		return out, nil
	}
	out := make([]Pair, 0, len(entries))
	for _, e := range entries {
		p, err := ParsePair(e)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
