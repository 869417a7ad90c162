// Package shift implements an encoding-aware additive byte cipher.
//
// A buffer is first classified as a whole: either every byte belongs to a
// well-formed 1 to 4 byte sequence of the variable-width multi-byte grammar
// (MultiByteText), or the buffer is treated as unstructured single-byte data
// (SingleByteOrUnstructured).
//
// Multi-byte text is shifted per byte class, with the arithmetic confined to
// the payload bits of each byte so lead and continuation prefixes survive:
//
//	0xxxxxxx  ASCII          7 payload bits, mod 128
//	10xxxxxx  continuation   6 payload bits, mod 64
//	110xxxxx  2-byte lead    5 payload bits, mod 32
//	1110xxxx  3-byte lead    4 payload bits, mod 16
//	11110xxx  4-byte lead    3 payload bits, mod 8
//
// Unstructured data is shifted byte-wise modulo 256.
//
// The cipher is not meant to resist analysis.
package shift
