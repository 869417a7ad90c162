package shift

import "bytes"

// DefaultShift is the key used by the command-line surface.
const DefaultShift = 3

// Apply returns a shifted copy of data, using the transform for enc.
// Anything other than MultiByteText is shifted as unstructured bytes.
// data itself is never modified.
func Apply(enc Encoding, data []byte, shift int) []byte {
	out := bytes.Clone(data)

	if enc == MultiByteText {
		TransformMBE(out, shift)
	} else {
		TransformSBE(out, shift)
	}

	return out
}

// Encrypt classifies data and shifts it forward.
func Encrypt(data []byte, shift int) []byte {
	return Apply(Classify(data), data, shift)
}

// Decrypt classifies data as presented and shifts it back.
//
// Multi-byte text always re-classifies the same after encryption. Unstructured
// data may not: a flat shift can turn it into valid multi-byte text, in which
// case Decrypt takes the wrong branch. Callers that need an exact inverse for
// every input should keep the encryption-time Encoding and use Apply with -shift.
func Decrypt(data []byte, shift int) []byte {
	return Apply(Classify(data), data, -shift)
}
