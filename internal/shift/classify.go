package shift

const (
	continuationMask   = 0xC0
	continuationPrefix = 0x80
)

// sequenceLength returns the total length of the sequence started by lead,
// or 0 if lead cannot start a sequence.
func sequenceLength(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

func isContinuation(b byte) bool {
	return b&continuationMask == continuationPrefix
}

// walk scans data left to right and calls visit with the length of every
// well-formed sequence. It stops and returns false at the first malformed one.
func walk(data []byte, visit func(length int)) bool {
	for pos := 0; pos < len(data); {
		length := sequenceLength(data[pos])
		if length == 0 || pos+length > len(data) {
			return false
		}

		for _, b := range data[pos+1 : pos+length] {
			if !isContinuation(b) {
				return false
			}
		}

		if visit != nil {
			visit(length)
		}

		pos += length
	}

	return true
}

// Classify reports whether data is multi-byte text or unstructured bytes.
// The decision is buffer-wide: a single malformed or truncated sequence anywhere
// makes the whole buffer SingleByteOrUnstructured. An empty buffer is MultiByteText.
//
// Only the leading bit patterns are checked, so overlong forms and leads up to
// 0xF7 are accepted.
func Classify(data []byte) Encoding {
	if walk(data, nil) {
		return MultiByteText
	}

	return SingleByteOrUnstructured
}

// Segments returns the length of every sequence in data.
// The boolean is false if data is not multi-byte text.
func Segments(data []byte) ([]int, bool) {
	segments := []int{}

	ok := walk(data, func(length int) {
		segments = append(segments, length)
	})
	if !ok {
		return nil, false
	}

	return segments, true
}
