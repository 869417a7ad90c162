package encryption

import "errors"

var (
	// ErrEnvelope is returned when an envelope header is malformed.
	ErrEnvelope = errors.New("invalid envelope")
	// ErrDigestMismatch is returned when decrypted data does not match the digest stored in its envelope.
	ErrDigestMismatch = errors.New("digest mismatch, wrong shift or corrupted file")
	// ErrSameFile is returned when the output path would overwrite the input.
	ErrSameFile = errors.New("output path equals input path")
)
