package landscape

import (
	"errors"
	"math"
	"testing"
)

const n = 20

func direct(i, j, n float64) float64 {
	return 0.5*math.Sin(0.5*i)*math.Cos(0.5*j) +
		0.5*math.Exp(-0.1*((i-n/2)*(i-n/2)+(j-n/2)*(j-n/2))) +
		0.25*math.Sin(0.5*i)*math.Cos(0.5*j)
}

func TestFitnessDeterministic(t *testing.T) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := Fitness(i, j, n)
			b := Fitness(i, j, n)
			if math.Float64bits(a) != math.Float64bits(b) {
				t.Fatalf("f(%d,%d) not bit-identical: %v vs %v", i, j, a, b)
			}
		}
	}
}

func TestFitnessMatchesFormula(t *testing.T) {
	tests := []struct{ i, j int }{
		{0, 1}, {0, 0}, {10, 10}, {3, 7}, {19, 19}, {5, 0},
	}
	for _, tt := range tests {
		got := Fitness(tt.i, tt.j, n)
		want := direct(float64(tt.i), float64(tt.j), n)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("f(%d,%d) = %v, want %v", tt.i, tt.j, got, want)
		}
	}
}

func TestFitnessAC(t *testing.T) {
	// A=0, C=1: only the Gaussian term survives since sin(0) = 0.
	want := 0.5 * math.Exp(-0.1*(100+81))
	if got := Fitness(0, 1, n); math.Abs(got-want) > 1e-9 {
		t.Errorf("f(0,1) = %v, want %v", got, want)
	}
}

func TestFitnessAsymmetric(t *testing.T) {
	a, b := Fitness(0, 5, n), Fitness(5, 0, n)
	if a == b {
		t.Errorf("f(0,5) == f(5,0) == %v, landscape should not be symmetric", a)
	}
}

func TestGenerate(t *testing.T) {
	l, err := Generate(n)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if l.Size() != n {
		t.Errorf("expected size %d, got %d", n, l.Size())
	}
	lo, hi := l.Bounds()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h, err := l.At(i, j)
			if err != nil {
				t.Fatalf("at(%d,%d): %v", i, j, err)
			}
			if h != Fitness(i, j, n) {
				t.Errorf("cell (%d,%d) = %v, want %v", i, j, h, Fitness(i, j, n))
			}
			if h < lo || h > hi {
				t.Errorf("cell (%d,%d) = %v outside bounds [%v, %v]", i, j, h, lo, hi)
			}
		}
	}
}

func TestGenerateInvalidSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		if _, err := Generate(size); !errors.Is(err, ErrSize) {
			t.Errorf("size %d: expected ErrSize, got %v", size, err)
		}
	}
}

func TestAtOutOfGrid(t *testing.T) {
	l, _ := Generate(n)
	cells := [][2]int{{-1, 0}, {0, -1}, {n, 0}, {0, n}}
	for _, c := range cells {
		if _, err := l.At(c[0], c[1]); !errors.Is(err, ErrOutOfGrid) {
			t.Errorf("cell %v: expected ErrOutOfGrid, got %v", c, err)
		}
	}
}

func TestRowColumnTransposed(t *testing.T) {
	l, _ := Generate(n)
	row, err := l.Row(3)
	if err != nil {
		t.Fatal(err)
	}
	col, err := l.Column(3)
	if err != nil {
		t.Fatal(err)
	}
	tr := l.Transposed()
	for k := 0; k < n; k++ {
		if row[k] != Fitness(3, k, n) {
			t.Errorf("row[%d] mismatch", k)
		}
		if col[k] != Fitness(k, 3, n) {
			t.Errorf("col[%d] mismatch", k)
		}
		if tr[k][3] != Fitness(3, k, n) {
			t.Errorf("transposed[%d][3] mismatch", k)
		}
	}
}

func TestGridIsCopy(t *testing.T) {
	l, _ := Generate(n)
	g := l.Grid()
	g[0][0] = 42
	if h, _ := l.At(0, 0); h == 42 {
		t.Error("grid copy aliases landscape storage")
	}
}

func TestTicks(t *testing.T) {
	l, _ := Generate(n)
	lo, hi := l.Bounds()
	ticks := l.Ticks(5)
	if len(ticks) != 5 {
		t.Fatalf("expected 5 ticks, got %d", len(ticks))
	}
	if ticks[0] != lo || math.Abs(ticks[4]-hi) > 1e-12 {
		t.Errorf("ticks %v should span [%v, %v]", ticks, lo, hi)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] <= ticks[i-1] {
			t.Errorf("ticks not increasing: %v", ticks)
		}
	}
}

func TestDenseIsCopy(t *testing.T) {
	l, _ := Generate(n)
	d := l.Dense()
	if r, c := d.Dims(); r != n || c != n {
		t.Fatalf("expected %dx%d, got %dx%d", n, n, r, c)
	}
	want := d.At(2, 7)
	d.Set(2, 7, 42)
	if h, _ := l.At(2, 7); h != want {
		t.Error("dense copy aliases landscape storage")
	}
}

func TestRowIsCopy(t *testing.T) {
	l, _ := Generate(n)
	row, _ := l.Row(0)
	row[5] = 42
	if h, _ := l.At(0, 5); h == 42 {
		t.Error("row aliases landscape storage")
	}
}

func TestLinspaceSpan(t *testing.T) {
	got := Linspace(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("linspace[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLinspaceEdges(t *testing.T) {
	if got := Linspace(0, 1, 0); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := Linspace(2, 5, 1); len(got) != 1 || got[0] != 2 {
		t.Errorf("expected [2], got %v", got)
	}
}
