package bitpack

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	huffman "github.com/chronos-tachyon/huffcodec"
)

func mustParse(t *testing.T, bits string) huffman.Stream {
	t.Helper()
	s, err := huffman.ParseStream(bits)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestMarshal(t *testing.T) {
	type testRow struct {
		bits   string
		expect []byte
	}

	testData := [...]testRow{
		{bits: "", expect: []byte{0x00}},
		{bits: "0001", expect: []byte{0x04, 0x10}},
		{bits: "10000001", expect: []byte{0x08, 0x81}},
		{bits: "101010101", expect: []byte{0x09, 0xaa, 0x80}},
	}
	for _, row := range testData {
		t.Run(row.bits, func(t *testing.T) {
			actual, err := Marshal(mustParse(t, row.bits))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(row.expect, actual) {
				t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", row.expect, actual)
			}
			if size := PackedSize(len(row.bits)); size != len(row.expect) {
				t.Errorf("PackedSize(%d): expected %d, got %d", len(row.bits), len(row.expect), size)
			}

			back, err := Unmarshal(actual)
			if err != nil {
				t.Fatal(err)
			}
			if back.String() != row.bits {
				t.Errorf("wrong round trip:\n\texpect: %s\n\tactual: %s", row.bits, back)
			}
		})
	}
}

func TestMarshal_InvalidBit(t *testing.T) {
	if _, err := Marshal(huffman.Stream{huffman.One, huffman.Bit(3)}); err == nil {
		t.Error("expected error for invalid bit, got nil")
	}
}

func TestUnmarshal_Errors(t *testing.T) {
	type testRow struct {
		name   string
		data   []byte
		expect error
	}

	testData := [...]testRow{
		{name: "no-header", data: nil, expect: io.ErrUnexpectedEOF},
		{name: "short-header", data: []byte{0x80}, expect: io.ErrUnexpectedEOF},
		{name: "truncated", data: []byte{0x09, 0xaa}, expect: io.ErrUnexpectedEOF},
		{name: "padding", data: []byte{0x04, 0x11}, expect: ErrNonZeroPadding},
		{name: "trailing", data: []byte{0x00, 0x00}, expect: ErrTrailingData},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := Unmarshal(row.data)
			if !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
		})
	}
}

func TestReadWrite_Sequence(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	streams := make([]huffman.Stream, 10)
	var buf bytes.Buffer
	for index := range streams {
		s := make(huffman.Stream, rng.Intn(100))
		for i := range s {
			s[i] = huffman.Bit(rng.Intn(2))
		}
		streams[index] = s
		if err := Write(&buf, s); err != nil {
			t.Fatal(err)
		}
	}

	r := bytes.NewReader(buf.Bytes())
	for index, expect := range streams {
		actual, err := Read(r)
		if err != nil {
			t.Fatalf("stream %d: %v", index, err)
		}
		if actual.String() != expect.String() {
			t.Errorf("stream %d: wrong bits:\n\texpect: %s\n\tactual: %s", index, expect, actual)
		}
	}
	if r.Len() != 0 {
		t.Errorf("expected all input consumed, %d bytes left", r.Len())
	}
}

func TestRoundTrip_Codec(t *testing.T) {
	seq := huffman.SymbolsFromBytes([]byte("data compression is essential"))
	c, err := huffman.NewCodec(seq)
	if err != nil {
		t.Fatal(err)
	}
	stream, err := c.Encode(seq)
	if err != nil {
		t.Fatal(err)
	}

	data, err := Marshal(stream)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Decode(back)
	if err != nil {
		t.Fatal(err)
	}
	text, err := huffman.BytesFromSymbols(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "data compression is essential" {
		t.Errorf("wrong output: %q", text)
	}
}
