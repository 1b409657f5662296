package ext

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Termantita/globed2/packet"
)

var (
	// ErrWrongPhase is returned when Set is called while receiving, Get while
	// sending, or either after the callback that owned the accessor returned.
	ErrWrongPhase = errors.New("ext: accessor used outside its phase")
	ErrClosed     = errors.New("ext: registry closed")
)

// HookError attributes a failure to the registration that caused it.
type HookError struct {
	Mod      ModID
	Phase    Phase
	Category packet.Category
	Handle   uuid.UUID
	Packet   packet.ID
	Err      error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("ext: %s hook %s of mod %q on %s (packet %d): %v",
		e.Phase, e.Handle, e.Mod, e.Category, e.Packet, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}
