package shift

import "math/bits"

const byteValues = 256

// mod returns the non-negative remainder of a divided by m.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// prefixWidth returns the number of fixed high bits of b:
// its leading one bits plus the zero bit that terminates them.
func prefixWidth(b byte) int {
	return bits.LeadingZeros8(^b) + 1
}

// shiftPayload adds shift to the payload bits of b, modulo the payload size,
// and keeps the prefix bits untouched.
func shiftPayload(b byte, shift int) byte {
	size := 1 << (8 - prefixWidth(b))
	mask := byte(size - 1)

	return b&^mask | byte(mod(int(b&mask)+mod(shift, size), size))
}

// TransformMBE shifts multi-byte text in place.
//
// The buffer is segmented again from scratch. A byte that cannot start a
// sequence is left as is. A lead claims the slots that follow it: each slot
// holding a continuation byte is shifted, any other byte in a slot is left as
// is and still uses up the slot.
// Every rule keeps the class of the byte, so TransformMBE(data, -shift)
// restores the input, malformed bytes included.
func TransformMBE(data []byte, shift int) {
	for pos := 0; pos < len(data); {
		length := sequenceLength(data[pos])
		if length == 0 {
			pos++

			continue
		}

		data[pos] = shiftPayload(data[pos], shift)
		pos++

		for range length - 1 {
			if pos >= len(data) {
				break
			}

			if isContinuation(data[pos]) {
				data[pos] = shiftPayload(data[pos], shift)
			}

			pos++
		}
	}
}

// TransformSBE shifts every byte of data in place, modulo 256.
func TransformSBE(data []byte, shift int) {
	delta := byte(mod(shift, byteValues))

	for i := range data {
		data[i] += delta
	}
}
