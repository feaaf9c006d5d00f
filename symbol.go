package huffman

import (
	"fmt"
	"math"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is in the range [0, MaxSymbol].
func (sym Symbol) IsValid() bool {
	return sym >= 0
}

// SymbolsFromBytes converts a byte string into a sequence of Symbols, one
// Symbol per byte.
func SymbolsFromBytes(data []byte) []Symbol {
	out := make([]Symbol, len(data))
	for index, b := range data {
		out[index] = Symbol(b)
	}
	return out
}

// BytesFromSymbols is the inverse of SymbolsFromBytes.  It fails if any
// Symbol lies outside the byte range.
func BytesFromSymbols(symbols []Symbol) ([]byte, error) {
	out := make([]byte, len(symbols))
	for index, sym := range symbols {
		if sym < 0 || sym > math.MaxUint8 {
			return nil, fmt.Errorf("symbol %d at index %d does not fit in a byte", sym, index)
		}
		out[index] = byte(sym)
	}
	return out, nil
}
