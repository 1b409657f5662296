package packet

import "io"

const (
	// ErrTruncatedInput is returned when the buffer ends before every declared
	// field was read. It matches io.ErrUnexpectedEOF with errors.Is.
	ErrTruncatedInput = codecError(1)
	// ErrMalformedValue is returned when a decoded value violates the domain of
	// its type, such as a Boolean byte other than 0 or 1 or a length above the
	// sanity bound.
	ErrMalformedValue = codecError(2)
	// ErrNotFound is returned by a Registry for a packet id outside its catalog.
	// Callers should treat it as version skew and drop the packet.
	ErrNotFound = codecError(3)
)

type codecError uint8

func (e codecError) Error() string {
	switch e {
	case ErrTruncatedInput:
		return "truncated input"
	case ErrMalformedValue:
		return "malformed value"
	case ErrNotFound:
		return "packet not found"
	}
	return "unknown error"
}

func (e codecError) Unwrap() error {
	if e == ErrTruncatedInput {
		return io.ErrUnexpectedEOF
	}
	return nil
}
