package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder maps Symbols to their Codes.
type Encoder struct {
	table   CodeTable
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from a CodeTable, as returned by Generate.
// The Encoder keeps a reference to the table, which must not be modified
// afterward.
func (e *Encoder) Init(table CodeTable) {
	var minSize, maxSize byte
	first := true
	for _, hc := range table {
		if first {
			minSize, maxSize = hc.Size, hc.Size
			first = false
		} else if minSize > hc.Size {
			minSize = hc.Size
		} else if maxSize < hc.Size {
			maxSize = hc.Size
		}
	}

	*e = Encoder{
		table:   table,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Encode concatenates the Codes of each Symbol in seq, in order.  It returns
// an *UnknownSymbolError if some Symbol has no Code.
func (e Encoder) Encode(seq []Symbol) (Stream, error) {
	out := make(Stream, 0, len(seq)*int(e.minSize))
	for index, sym := range seq {
		hc, found := e.table[sym]
		if !found {
			return nil, &UnknownSymbolError{Symbol: sym, Index: index}
		}
		out = out.AppendCode(hc)
	}
	return out, nil
}

// Lookup returns the Code for a single Symbol.
func (e Encoder) Lookup(sym Symbol) (Code, bool) {
	hc, found := e.table[sym]
	return hc, found
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, sym := range e.table.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbolLabel(sym), e.table[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode is a convenience function that encodes seq with a one-off Encoder.
func Encode(seq []Symbol, table CodeTable) (Stream, error) {
	var e Encoder
	e.Init(table)
	return e.Encode(seq)
}
