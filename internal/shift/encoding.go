package shift

import "fmt"

// Encoding is the buffer-wide classification of a byte stream.
type Encoding byte

const (
	// MultiByteText marks a buffer that fully satisfies the multi-byte grammar.
	MultiByteText Encoding = iota + 1
	// SingleByteOrUnstructured marks any buffer that does not.
	SingleByteOrUnstructured
)

// String returns the name of the encoding.
func (e Encoding) String() string {
	switch e {
	case MultiByteText:
		return "MultiByteText"
	case SingleByteOrUnstructured:
		return "SingleByteOrUnstructured"
	default:
		return fmt.Sprintf("Encoding(%d)", byte(e))
	}
}

// Valid reports whether e is one of the known encodings.
func (e Encoding) Valid() bool {
	return e == MultiByteText || e == SingleByteOrUnstructured
}
