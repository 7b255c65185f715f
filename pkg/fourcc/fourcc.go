package fourcc

import (
	"bytes"
	"encoding/binary"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// FourCC is a four-character code: a 4-byte identifier used to tag chunks,
// boxes, and headers in binary file formats.
type FourCC [4]byte

// hostOrder is the byte order of the host platform.
var hostOrder binary.ByteOrder = binary.LittleEndian

func init() {
	n := uint32(1)
	b := (*[4]byte)(unsafe.Pointer(&n))
	if b[0] == 0 {
		hostOrder = binary.BigEndian
	}
}

// New builds a FourCC from four explicit bytes, stored in argument order.
func New(b0, b1, b2, b3 byte) FourCC {
	return FourCC{b0, b1, b2, b3}
}

// FromBytes builds a FourCC from a 4-byte array.
func FromBytes(b [4]byte) FourCC {
	return FourCC(b)
}

// FromSlice builds a FourCC from a slice holding exactly 4 bytes. It returns
// an InvalidLengthError if len(b) != 4.
func FromSlice(b []byte) (FourCC, error) {
	if len(b) != 4 {
		return FourCC{}, InvalidLengthError{Len: len(b)}
	}
	var c FourCC
	copy(c[:], b)
	return c, nil
}

// Parse builds a FourCC from a string that encodes to exactly 4 bytes. Only
// the length is validated; any byte values are accepted. Strings whose UTF-8
// encoding is longer or shorter than 4 bytes are rejected with an
// InvalidLengthError.
func Parse(s string) (FourCC, error) {
	if len(s) != 4 {
		return FourCC{}, InvalidLengthError{Len: len(s)}
	}
	var c FourCC
	copy(c[:], s)
	return c, nil
}

// MustParse is Parse but panics on a wrong-length input. It is intended for
// fixed codes known at compile time:
//
//	var riff = fourcc.MustParse("RIFF")
func MustParse(s string) FourCC {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromUint32 builds a FourCC from the bytes of v in host byte order. It is
// the inverse of Uint32.
func FromUint32(v uint32) FourCC {
	var c FourCC
	hostOrder.PutUint32(c[:], v)
	return c
}

// FromUint32BE builds a FourCC from the bytes of v most significant first.
// This is the conventional integer reading of a four-character code:
// FromUint32BE(0x52494646) is 'RIFF'.
func FromUint32BE(v uint32) FourCC {
	var c FourCC
	binary.BigEndian.PutUint32(c[:], v)
	return c
}

// FromUint32LE builds a FourCC from the bytes of v least significant first.
func FromUint32LE(v uint32) FourCC {
	var c FourCC
	binary.LittleEndian.PutUint32(c[:], v)
	return c
}

// Bytes returns the stored bytes as a 4-byte array.
func (c FourCC) Bytes() [4]byte {
	return c
}

// Uint32 returns the stored bytes interpreted as a uint32 in host byte
// order. It is the inverse of FromUint32.
func (c FourCC) Uint32() uint32 {
	return hostOrder.Uint32(c[:])
}

// Uint32BE returns the stored bytes interpreted as a big-endian uint32.
func (c FourCC) Uint32BE() uint32 {
	return binary.BigEndian.Uint32(c[:])
}

// Uint32LE returns the stored bytes interpreted as a little-endian uint32.
func (c FourCC) Uint32LE() uint32 {
	return binary.LittleEndian.Uint32(c[:])
}

// Equal reports whether c and o hold the same 4 bytes. It is equivalent to
// c == o.
func (c FourCC) Equal(o FourCC) bool {
	return c == o
}

// Compare orders codes byte-wise with the first stored byte most
// significant, returning -1, 0, or +1. The order matches comparing Uint32BE
// values.
func (c FourCC) Compare(o FourCC) int {
	return bytes.Compare(c[:], o[:])
}

// Less reports whether c orders before o under Compare.
func (c FourCC) Less(o FourCC) bool {
	return c.Compare(o) < 0
}

// Hash returns a 64-bit hash of the 4 stored bytes. Equal codes always hash
// equal. The hash covers the raw bytes, never the rendered String form.
func (c FourCC) Hash() uint64 {
	return xxhash.Sum64(c[:])
}

const hexDigits = "0123456789abcdef"

// Append appends the escaped rendering of c to dst and returns the extended
// slice. It performs no allocation beyond what append requires; the
// rendering is at most 16 bytes.
func (c FourCC) Append(dst []byte) []byte {
	for _, b := range c {
		switch {
		case b == '\n':
			dst = append(dst, '\\', 'n')
		case b == '\r':
			dst = append(dst, '\\', 'r')
		case b == '\t':
			dst = append(dst, '\\', 't')
		case b < 0x20 || b == 0x7f:
			dst = append(dst, '\\', 'x', hexDigits[b>>4], hexDigits[b&0xf])
		default:
			dst = append(dst, b)
		}
	}
	return dst
}

// String renders the code with one output unit per stored byte. Control
// bytes (0x00-0x1F and 0x7F) are escaped so the result never contains raw
// control characters; all other bytes are emitted literally.
func (c FourCC) String() string {
	return string(c.Append(make([]byte, 0, 16)))
}
