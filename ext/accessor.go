package ext

import (
	"fmt"
	"io"

	"github.com/Termantita/globed2/packet"
)

// Phase tells whether a hook runs while a packet is being encoded or decoded.
type Phase uint8

const (
	PhaseSend Phase = iota + 1
	PhaseReceive
)

func (p Phase) String() string {
	switch p {
	case PhaseSend:
		return "send"
	case PhaseReceive:
		return "receive"
	}
	return "unknown"
}

// Accessor is the cursor handed to an extension callback. It is bound to the
// packet buffer position following the previous registration's data and is
// only valid until the callback returns. Set is only usable on send hooks and
// Get only on receive hooks.
type Accessor[T any] struct {
	phase Phase
	live  bool
	codec Codec[T]
	w     io.Writer
	r     *packet.Reader
	err   error
}

func newSendAccessor[T any](c Codec[T], w io.Writer) *Accessor[T] {
	return &Accessor[T]{phase: PhaseSend, live: true, codec: c, w: w}
}

func newReceiveAccessor[T any](c Codec[T], r *packet.Reader) *Accessor[T] {
	return &Accessor[T]{phase: PhaseReceive, live: true, codec: c, r: r}
}

// Set appends v to the extension region.
func (a *Accessor[T]) Set(v T) error {
	if err := a.check(PhaseSend, "Set"); err != nil {
		return err
	}
	if err := a.codec.Write(a.w, v); err != nil {
		a.err = err
	}
	return a.err
}

// Get reads the next value from the extension region.
func (a *Accessor[T]) Get() (v T, err error) {
	if err = a.check(PhaseReceive, "Get"); err != nil {
		return
	}
	if v, err = a.codec.Read(a.r); err != nil {
		a.err = err
	}
	return
}

// Err reports the first failure seen by this accessor.
func (a *Accessor[T]) Err() error {
	return a.err
}

func (a *Accessor[T]) check(want Phase, op string) error {
	if !a.live {
		return fmt.Errorf("%w: %s after the callback returned", ErrWrongPhase, op)
	}
	// one failed read misaligns every later offset, so errors are sticky
	if a.err != nil {
		return a.err
	}
	if a.phase != want {
		a.err = fmt.Errorf("%w: %s during %s", ErrWrongPhase, op, a.phase)
		return a.err
	}
	return nil
}

// release expires the accessor and returns the error to attribute to the
// registration, preferring codec and phase failures over the callback result.
func (a *Accessor[T]) release(cbErr error) error {
	a.live = false
	if a.err != nil {
		return a.err
	}
	return cbErr
}
