// Package fourcc provides a compact four-character-code (FourCC) value type.
//
// A FourCC is a 4-byte identifier embedded in binary file and container
// formats, such as the 'RIFF' chunk tag in WAV/AVI files, the 'MThd' header
// of Standard MIDI Files, or the 'moov' box type in MP4. Using FourCC in an
// API instead of a bare uint32 makes the value's intended use explicit.
//
// # Representation
//
//	type FourCC [4]byte
//
// The type is exactly 4 bytes with no padding, so a FourCC can sit directly
// inside a binary header struct and be read or written with encoding/binary.
// It is comparable with ==, usable as a map key, and copied by value. Any
// 4-byte pattern is a valid FourCC; the type does not restrict values to
// printable or ASCII bytes.
//
// # Conversions
//
// FourCC converts losslessly to and from three representations:
//
//   - four explicit bytes, a [4]byte array, or a length-checked []byte slice
//   - a 4-character string (Parse / MustParse)
//   - a uint32 in native, big-endian, or little-endian byte order
//
// All conversions are total except Parse, FromSlice, and the Unmarshal
// methods, which reject inputs whose byte length is not exactly 4 and return
// an InvalidLengthError. Note that Parse checks encoded byte length, not
// character count: a string of 4 runes that encodes to more than 4 bytes of
// UTF-8 is rejected. The big-endian integer form is the conventional one for
// four-character codes: FromUint32BE(0x52494646) is 'RIFF'.
//
// # Display Escaping
//
// String renders one output unit per stored byte. Control bytes (0x00-0x1F
// and 0x7F) are escaped so the result never contains raw control
// characters: newline, carriage return, and tab render as \n, \r, and \t,
// and other control bytes as \xNN. All remaining bytes, including values at
// or above 0x80, are emitted literally.
//
//	fourcc.New('A', 0x0A, 'B', 0x00).String() // `A\nB\x00`
//
// Append writes the same rendering into a caller-provided buffer for code
// that cannot allocate.
//
// # Text and JSON Encoding
//
// FourCC implements encoding.TextMarshaler, TextUnmarshaler,
// BinaryMarshaler, and BinaryUnmarshaler. The binary form is the raw 4
// bytes. The text form is canonical and round-trips every value exactly:
//
//   - all four bytes printable ASCII: the four characters verbatim ("RIFF")
//   - otherwise: 0x followed by 8 lowercase hex digits of the big-endian
//     integer ("0x410a4200")
//
// UnmarshalText accepts either form, distinguished by length. encoding/json
// uses the text form automatically, so a FourCC field serializes as a JSON
// string. JSONSchema describes the two forms for schema-aware tooling.
//
// # Error Handling
//
// The only error condition is an input of the wrong length, reported as an
// InvalidLengthError carrying the offending length. Inputs are never
// truncated or padded. No operation on a constructed FourCC can fail.
//
// # Thread Safety
//
// FourCC values are immutable plain data. They may be copied and read from
// any number of goroutines without synchronization.
package fourcc
