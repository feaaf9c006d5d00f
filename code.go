package huffman

import (
	"fmt"
	mathbits "math/bits"
	"strconv"
	"strings"
)

// MaxCodeSize is the longest Code, in bits, that can be represented.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// MakeReversedCode constructs a Code from a sequence of bits that's in the
// wrong order, i.e. the least significant bit is the *last* bit in the
// sequence, instead of the first.
func MakeReversedCode(size byte, bits uint64) Code {
	return MakeCode(size, reverseBits(size, bits))
}

// ParseCode parses a string of '0' and '1' characters, first bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is too long: got %d bits, max %d", str, len(str), MaxCodeSize)
	}
	var hc Code
	for index := 0; index < len(str); index++ {
		switch str[index] {
		case '0':
			hc = hc.Append(Zero)
		case '1':
			hc = hc.Append(One)
		default:
			return Code{}, fmt.Errorf("invalid character %q at index %d of code %q", str[index], index, str)
		}
	}
	return hc, nil
}

// Bit returns the index'th bit of this Code, counting from the first bit.
func (hc Code) Bit(index byte) Bit {
	return Bit((hc.Bits >> index) & 1)
}

// Append returns the Code formed by adding one more bit to the end of this
// Code.  The caller must ensure that hc.Size < MaxCodeSize.
func (hc Code) Append(bit Bit) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits | (uint64(bit&1) << hc.Size)}
}

// HasPrefix returns true iff the first prefix.Size bits of this Code equal
// prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	if prefix.Size == 0 {
		return true
	}
	mask := ^uint64(0) >> (MaxCodeSize - prefix.Size)
	return (hc.Bits & mask) == prefix.Bits
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	return MakeReversedCode(hc.Size, hc.Bits)
}

// String returns the string representation of this Code, first bit first.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var buf strings.Builder
	buf.Grow(int(hc.Size))
	for index := byte(0); index < hc.Size; index++ {
		buf.WriteByte('0' + byte(hc.Bit(index)))
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = Code{}

func reverseBits(size byte, bits uint64) uint64 {
	if size == 0 {
		return 0
	}
	return mathbits.Reverse64(bits) >> (MaxCodeSize - size)
}
