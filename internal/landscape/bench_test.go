package landscape

import "testing"

func BenchmarkFitness(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += Fitness(i%20, (i/20)%20, 20)
	}
	_ = sink
}

func BenchmarkGenerate20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Generate(20); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate200(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Generate(200); err != nil {
			b.Fatal(err)
		}
	}
}
