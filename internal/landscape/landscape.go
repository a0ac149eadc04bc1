package landscape

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrSize = errors.New("landscape: size must be positive")

	// ErrOutOfGrid indicates a cell index outside [0, n).
	ErrOutOfGrid = errors.New("landscape: cell outside grid")
)

// Landscape is an immutable n×n height field. Cell (i, j) of m holds
// Fitness(i, j, n).
type Landscape struct {
	n        int
	m        *mat.Dense
	min, max float64
}

// Generate evaluates Fitness over every cell of an n×n grid.
func Generate(n int) (*Landscape, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSize, n)
	}
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, Fitness(i, j, n))
		}
	}
	return &Landscape{n: n, m: m, min: mat.Min(m), max: mat.Max(m)}, nil
}

func (l *Landscape) Size() int { return l.n }

func (l *Landscape) inGrid(k int) bool { return k >= 0 && k < l.n }

// At returns the height of cell (i, j).
func (l *Landscape) At(i, j int) (float64, error) {
	if !l.inGrid(i) || !l.inGrid(j) {
		return 0, fmt.Errorf("%w: (%d, %d) with n=%d", ErrOutOfGrid, i, j, l.n)
	}
	return l.m.At(i, j), nil
}

// Bounds returns the smallest and largest heights.
func (l *Landscape) Bounds() (float64, float64) {
	return l.min, l.max
}

// Row returns heights f(i, 0..n-1).
func (l *Landscape) Row(i int) ([]float64, error) {
	if !l.inGrid(i) {
		return nil, fmt.Errorf("%w: row %d with n=%d", ErrOutOfGrid, i, l.n)
	}
	return mat.Row(nil, i, l.m), nil
}

// Column returns heights f(0..n-1, j).
func (l *Landscape) Column(j int) ([]float64, error) {
	if !l.inGrid(j) {
		return nil, fmt.Errorf("%w: column %d with n=%d", ErrOutOfGrid, j, l.n)
	}
	return mat.Col(nil, j, l.m), nil
}

// Dense returns a copy of the height field.
func (l *Landscape) Dense() *mat.Dense {
	return mat.DenseCopyOf(l.m)
}

// Grid returns a copy of the height field indexed [i][j].
func (l *Landscape) Grid() [][]float64 {
	return rows(l.m)
}

// Transposed returns the height field indexed [j][i], the row-major layout
// plotting surfaces expect when x runs along columns.
func (l *Landscape) Transposed() [][]float64 {
	return rows(mat.DenseCopyOf(l.m.T()))
}

func rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}

// Ticks returns k evenly spaced values from the minimum to the maximum height.
func (l *Landscape) Ticks(k int) []float64 {
	return Linspace(l.min, l.max, k)
}

// Linspace returns k evenly spaced values over [lo, hi], endpoints included.
func Linspace(lo, hi float64, k int) []float64 {
	switch {
	case k <= 0:
		return nil
	case k == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, k), lo, hi)
}
