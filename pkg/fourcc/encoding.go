package fourcc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
)

// printableASCII reports whether every stored byte renders as a plain ASCII
// character, making the literal text form unambiguous.
func (c FourCC) printableASCII() bool {
	for _, b := range c {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// MarshalText encodes c in its canonical text form: the four characters
// verbatim when all bytes are printable ASCII, otherwise 0x followed by 8
// lowercase hex digits of the big-endian integer value. Both forms decode
// back to the identical value. It never returns an error.
func (c FourCC) MarshalText() ([]byte, error) {
	if c.printableASCII() {
		return []byte{c[0], c[1], c[2], c[3]}, nil
	}
	return []byte(fmt.Sprintf("0x%08x", c.Uint32BE())), nil
}

// UnmarshalText decodes either canonical text form, distinguished by length:
// 4 bytes are taken literally, 10 bytes must be a 0x-prefixed hex integer.
// Any other length is an InvalidLengthError.
func (c *FourCC) UnmarshalText(text []byte) error {
	switch {
	case len(text) == 4:
		copy(c[:], text)
		return nil
	case len(text) == 10 && strings.HasPrefix(string(text), "0x"):
		v, err := strconv.ParseUint(string(text[2:]), 16, 32)
		if err != nil {
			return fmt.Errorf("fourcc: invalid hex text %q: %w", text, err)
		}
		*c = FromUint32BE(uint32(v))
		return nil
	default:
		return InvalidLengthError{Len: len(text)}
	}
}

// MarshalBinary encodes c as its raw 4 bytes. It never returns an error.
func (c FourCC) MarshalBinary() ([]byte, error) {
	return []byte{c[0], c[1], c[2], c[3]}, nil
}

// UnmarshalBinary decodes 4 raw bytes, returning an InvalidLengthError for
// any other input length.
func (c *FourCC) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return InvalidLengthError{Len: len(data)}
	}
	copy(c[:], data)
	return nil
}

// JSONSchema describes the canonical text forms accepted by UnmarshalText,
// for tools that validate encoded values.
func (FourCC) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Title:       "FourCC",
		Description: "Four-character code: either the four characters themselves or a 0x-prefixed 8-digit hexadecimal integer.",
		Pattern:     `^([ -~]{4}|0x[0-9a-fA-F]{8})$`,
	}
}
