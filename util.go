package huffman

import (
	"strconv"
	"unicode"
)

// symbolLabel renders a Symbol for the debugging dumps.  Printable byte-range
// symbols are shown quoted; everything else is shown as a number.
func symbolLabel(sym Symbol) string {
	if sym >= 0 && sym <= unicode.MaxASCII && unicode.IsPrint(rune(sym)) {
		return strconv.QuoteRune(rune(sym))
	}
	return strconv.FormatInt(int64(sym), 10)
}
