package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// FrequencyMap counts the occurrences of each Symbol in some input.  It also
// remembers the order in which the Symbols were first added, which Build
// uses to break ties between equally frequent Symbols.
//
// The zero value is an empty FrequencyMap, ready for use.
type FrequencyMap struct {
	counts map[Symbol]uint64
	order  []Symbol
	total  uint64
}

// Count scans a sequence of Symbols and returns the number of times each one
// occurs.  An empty sequence yields an empty FrequencyMap.
func Count(seq []Symbol) FrequencyMap {
	var fm FrequencyMap
	for _, sym := range seq {
		fm.Add(sym, 1)
	}
	return fm
}

// Add records n more occurrences of sym.  A Symbol added with n == 0 is
// remembered, but Build ignores it.
func (fm *FrequencyMap) Add(sym Symbol, n uint64) {
	assert.Assertf(sym.IsValid(), "invalid symbol %d", sym)
	assert.Assertf(fm.total <= math.MaxUint64-n, "total frequency overflows uint64: %d + %d", fm.total, n)

	if fm.counts == nil {
		fm.counts = make(map[Symbol]uint64)
	}
	if _, found := fm.counts[sym]; !found {
		fm.order = append(fm.order, sym)
	}
	fm.counts[sym] += n
	fm.total += n
}

// Len returns the number of distinct Symbols.
func (fm FrequencyMap) Len() int {
	return len(fm.order)
}

// Count returns the number of occurrences of sym.
func (fm FrequencyMap) Count(sym Symbol) uint64 {
	return fm.counts[sym]
}

// Symbols returns the distinct Symbols in the order they were first added.
func (fm FrequencyMap) Symbols() []Symbol {
	out := make([]Symbol, len(fm.order))
	copy(out, fm.order)
	return out
}

// Total returns the sum of all counts.  For a FrequencyMap returned by Count,
// this equals the length of the input.
func (fm FrequencyMap) Total() uint64 {
	return fm.total
}

// Dump writes a programmer-readable debugging dump of the FrequencyMap to the
// given writer.
func (fm FrequencyMap) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyMap{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", fm.total)
	for _, sym := range fm.order {
		fmt.Fprintf(&buf, "\tCount(%s) = %d\n", symbolLabel(sym), fm.counts[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
