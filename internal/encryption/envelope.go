package encryption

import (
	"bytes"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/idelchi/goshift/internal/shift"
)

const (
	envelopeMagic   = "GSFT"
	envelopeVersion = byte(1)
	envelopeDigest  = 32

	envelopeFlagExec = 0x01
)

// magic, version, flags, encoding, digest
const envelopeHeaderSize = len(envelopeMagic) + 3 + envelopeDigest

type envelopeHeader struct {
	encoding   shift.Encoding
	executable bool
	digest     [envelopeDigest]byte
}

// newEnvelopeHeader records how plain was classified and a BLAKE3 digest of it.
func newEnvelopeHeader(enc shift.Encoding, executable bool, plain []byte) []byte {
	header := make([]byte, envelopeHeaderSize)
	copy(header, envelopeMagic)

	header[len(envelopeMagic)] = envelopeVersion

	var flags byte

	if executable {
		flags |= envelopeFlagExec
	}

	header[len(envelopeMagic)+1] = flags
	header[len(envelopeMagic)+2] = byte(enc)

	sum := blake3.Sum256(plain)
	copy(header[len(envelopeMagic)+3:], sum[:])

	return header
}

func parseEnvelopeHeader(data []byte) (envelopeHeader, error) {
	if len(data) < envelopeHeaderSize {
		return envelopeHeader{}, fmt.Errorf("%w: header too short", ErrEnvelope)
	}

	if !bytes.Equal(data[:len(envelopeMagic)], []byte(envelopeMagic)) {
		return envelopeHeader{}, fmt.Errorf("%w: bad magic", ErrEnvelope)
	}

	version := data[len(envelopeMagic)]
	if version != envelopeVersion {
		return envelopeHeader{}, fmt.Errorf("%w: unsupported version %d", ErrEnvelope, version)
	}

	flags := data[len(envelopeMagic)+1]

	enc := shift.Encoding(data[len(envelopeMagic)+2])
	if !enc.Valid() {
		return envelopeHeader{}, fmt.Errorf("%w: unknown encoding %d", ErrEnvelope, enc)
	}

	header := envelopeHeader{
		encoding:   enc,
		executable: flags&envelopeFlagExec != 0,
	}

	copy(header.digest[:], data[len(envelopeMagic)+3:envelopeHeaderSize])

	return header, nil
}

// verify reports whether plain hashes to the digest recorded in the header.
func (h envelopeHeader) verify(plain []byte) bool {
	return blake3.Sum256(plain) == h.digest
}
