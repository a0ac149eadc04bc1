package landscape

import "math"

// Fitness is the closed-form height at grid cell (i, j) of an n×n grid.
func Fitness(i, j, n int) float64 {
	x, y := float64(i), float64(j)
	c := float64(n) / 2
	wave := math.Sin(0.5*x) * math.Cos(0.5*y)
	bump := math.Exp(-0.1 * ((x-c)*(x-c) + (y-c)*(y-c)))
	return 0.5*wave + 0.5*bump + 0.25*wave
}
