package huffman

import (
	"fmt"
	"strings"
)

// Bit is a single binary digit.  Only Zero and One are valid.
type Bit uint8

const (
	// Zero selects the left child of an Internal node.
	Zero Bit = 0

	// One selects the right child of an Internal node.
	One Bit = 1
)

// Stream is an encoded sequence of bits, in order.  Its length need not be a
// multiple of 8; packing a Stream into bytes is the job of package bitpack.
type Stream []Bit

// ParseStream parses a string of '0' and '1' characters into a Stream.
func ParseStream(str string) (Stream, error) {
	out := make(Stream, len(str))
	for index := 0; index < len(str); index++ {
		switch str[index] {
		case '0':
			out[index] = Zero
		case '1':
			out[index] = One
		default:
			return nil, fmt.Errorf("invalid character %q at index %d of bit string", str[index], index)
		}
	}
	return out, nil
}

// Len returns the number of bits in the Stream.
func (s Stream) Len() int {
	return len(s)
}

// AppendCode appends every bit of hc to the Stream and returns the result.
func (s Stream) AppendCode(hc Code) Stream {
	for index := byte(0); index < hc.Size; index++ {
		s = append(s, hc.Bit(index))
	}
	return s
}

// String returns the Stream as a string of '0' and '1' characters.  Bits
// other than Zero and One are rendered as '?'.
func (s Stream) String() string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, bit := range s {
		switch bit {
		case Zero:
			buf.WriteByte('0')
		case One:
			buf.WriteByte('1')
		default:
			buf.WriteByte('?')
		}
	}
	return buf.String()
}

var _ fmt.Stringer = Stream(nil)
