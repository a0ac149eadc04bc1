// Package landscape evaluates the synthetic fitness landscape over pairs of
// alphabet indices.
//
// The height of cell (i, j) on an n×n grid is
//
//	f(i,j) = 0.5·sin(0.5i)·cos(0.5j)
//	       + 0.5·exp(−0.1·((i−n/2)² + (j−n/2)²))
//	       + 0.25·sin(0.5i)·cos(0.5j)
//
// The sine/cosine terms make f asymmetric under i↔j; only the Gaussian bump
// centred on the grid is symmetric.
//
// # Example
//
//	land, _ := landscape.Generate(alphabet.AminoAcids.Len())
//	h, _ := land.At(0, 1)
package landscape
