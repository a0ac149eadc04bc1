// Package alphabet holds the fixed amino-acid alphabet used for both
// landscape axes.
package alphabet

import "strings"

// Symbols are the 20 standard amino acids in axis order.
const Symbols = "ACDEFGHIKLMNPQRSTVWY"

// Alphabet is an ordered set of single-letter residue codes. The position of
// a symbol is its index on both grid axes.
type Alphabet struct {
	symbols []string
	index   map[string]int
}

// AminoAcids is the alphabet shared by the landscape and the annotations.
var AminoAcids = mustNew(strings.Split(Symbols, "")...)

func mustNew(symbols ...string) *Alphabet {
	a, err := New(symbols...)
	if err != nil {
		panic(err)
	}
	return a
}

// New builds an alphabet from distinct symbols.
func New(symbols ...string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmpty
	}
	a := &Alphabet{
		symbols: make([]string, len(symbols)),
		index:   make(map[string]int, len(symbols)),
	}
	for i, s := range symbols {
		if _, dup := a.index[s]; dup {
			return nil, &DuplicateError{Symbol: s}
		}
		a.symbols[i] = s
		a.index[s] = i
	}
	return a, nil
}

func (a *Alphabet) Len() int { return len(a.symbols) }

// Index resolves a symbol to its axis position. Unknown symbols fail with a
// *LookupError; they never fall back to index 0.
func (a *Alphabet) Index(symbol string) (int, error) {
	i, ok := a.index[symbol]
	if !ok {
		return 0, &LookupError{Symbol: symbol}
	}
	return i, nil
}

// Symbol is the inverse of Index.
func (a *Alphabet) Symbol(i int) (string, error) {
	if i < 0 || i >= len(a.symbols) {
		return "", &RangeError{Index: i, Len: len(a.symbols)}
	}
	return a.symbols[i], nil
}

func (a *Alphabet) Contains(symbol string) bool {
	_, ok := a.index[symbol]
	return ok
}

// Symbols returns a copy of the symbols in axis order, suitable for tick text.
func (a *Alphabet) Symbols() []string {
	out := make([]string, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// Indices returns 0..Len()-1, the tick values matching Symbols.
func (a *Alphabet) Indices() []int {
	out := make([]int, len(a.symbols))
	for i := range out {
		out[i] = i
	}
	return out
}
