package fourcc

import "fmt"

// InvalidLengthError is returned by Parse, FromSlice, UnmarshalText, and
// UnmarshalBinary when the input does not encode exactly 4 bytes.
type InvalidLengthError struct {
	Len int
}

func (err InvalidLengthError) Error() string {
	return fmt.Sprintf("fourcc: input must be 4 bytes, got %d", err.Len)
}
