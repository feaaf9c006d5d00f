// Package bitpack stores a huffman.Stream as bytes.
//
// The format is the number of bits as an unsigned varint, followed by the
// bits themselves, most significant bit of each byte first.  The final byte
// is padded with zero bits.
package bitpack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	huffman "github.com/chronos-tachyon/huffcodec"
)

// maxPrealloc caps the capacity reserved up front for a Stream, so that a
// corrupt header cannot force a huge allocation before any bits are read.
const maxPrealloc = 1 << 20

// ErrNonZeroPadding is returned by Read when the bits after the end of the
// Stream are not all zero.
var ErrNonZeroPadding = errors.New("bitpack: non-zero padding bits")

// ErrTrailingData is returned by Unmarshal when bytes remain after the
// Stream.
var ErrTrailingData = errors.New("bitpack: trailing data after stream")

// Write packs s and writes it to w.
func Write(w io.Writer, s huffman.Stream) error {
	var hdr [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(hdr[:], uint64(len(s)))
	if _, err := w.Write(hdr[:n]); err != nil {
		return fmt.Errorf("bitpack: writing header: %w", err)
	}

	bw := bitio.NewWriter(w)
	for index, bit := range s {
		if bit != huffman.Zero && bit != huffman.One {
			return fmt.Errorf("bitpack: invalid bit value %d at index %d", bit, index)
		}
		if err := bw.WriteBool(bit == huffman.One); err != nil {
			return fmt.Errorf("bitpack: writing bit %d: %w", index, err)
		}
	}

	// Close pads the final byte with zeroes; it does not close w.
	if err := bw.Close(); err != nil {
		return fmt.Errorf("bitpack: flushing: %w", err)
	}
	return nil
}

// Read reads one packed Stream from r.  A short read is reported as an error
// wrapping io.ErrUnexpectedEOF.  If r is not an io.ByteReader it is buffered,
// and Read may consume bytes past the end of the Stream.
func Read(r io.Reader) (huffman.Stream, error) {
	br := bitio.NewReader(r)

	size, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, fmt.Errorf("bitpack: reading header: %w", unexpected(err))
	}

	prealloc := size
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}
	out := make(huffman.Stream, 0, prealloc)
	for index := uint64(0); index < size; index++ {
		one, err := br.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("bitpack: reading bit %d of %d: %w", index, size, unexpected(err))
		}
		if one {
			out = append(out, huffman.One)
		} else {
			out = append(out, huffman.Zero)
		}
	}

	if pad := uint8((8 - size%8) % 8); pad != 0 {
		bits, err := br.ReadBits(pad)
		if err != nil {
			return nil, fmt.Errorf("bitpack: reading padding: %w", unexpected(err))
		}
		if bits != 0 {
			return nil, ErrNonZeroPadding
		}
	}
	return out, nil
}

// Marshal returns the packed form of s.
func Marshal(s huffman.Stream) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal is the inverse of Marshal.  It fails if data holds anything
// after the packed Stream.
func Unmarshal(data []byte) (huffman.Stream, error) {
	r := bytes.NewReader(data)
	s, err := Read(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, r.Len())
	}
	return s, nil
}

// PackedSize returns the number of bytes Marshal produces for a Stream of
// the given number of bits.
func PackedSize(bits int) int {
	var hdr [binary.MaxVarintLen64]byte
	return binary.PutUvarint(hdr[:], uint64(bits)) + (bits+7)/8
}

func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
