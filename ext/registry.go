// Package ext lets independently loaded mods attach extra fields to packets.
//
// Hooks are registered per attachment point (a packet.Category) and per
// phase. When a packet of that category is encoded, every send hook appends
// its values after the packet's fixed fields, in registration order. When it
// is decoded, receive hooks consume the same region in the same order. The
// format is positional, so both peers must agree on the registrations of a
// category before exchanging packets of it.
package ext

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Termantita/globed2/packet"
)

// ModID identifies the mod owning a registration, e.g. "dankmeme.globed2".
type ModID string

// SendType selects the outgoing attachment point of a send hook.
type SendType packet.Category

const (
	SendLogin       = SendType(packet.CategoryLogin)
	SendLevelJoin   = SendType(packet.CategoryLevelJoin)
	SendPlayerData  = SendType(packet.CategoryPlayerData)
	SendRoomCreate  = SendType(packet.CategoryRoomCreate)
	SendRoomJoin    = SendType(packet.CategoryRoomJoin)
	SendRoomInfo    = SendType(packet.CategoryRoomInfo)
	SendChatMessage = SendType(packet.CategoryChatMessage)
	SendProfiles    = SendType(packet.CategoryProfiles)
)

func (t SendType) String() string {
	return packet.Category(t).String()
}

// ReceiveType selects the incoming attachment point of a receive hook.
type ReceiveType packet.Category

const (
	ReceiveLogin       = ReceiveType(packet.CategoryLogin)
	ReceiveLevelJoin   = ReceiveType(packet.CategoryLevelJoin)
	ReceivePlayerData  = ReceiveType(packet.CategoryPlayerData)
	ReceiveRoomCreate  = ReceiveType(packet.CategoryRoomCreate)
	ReceiveRoomJoin    = ReceiveType(packet.CategoryRoomJoin)
	ReceiveRoomInfo    = ReceiveType(packet.CategoryRoomInfo)
	ReceiveChatMessage = ReceiveType(packet.CategoryChatMessage)
	ReceiveProfiles    = ReceiveType(packet.CategoryProfiles)
)

func (t ReceiveType) String() string {
	return packet.Category(t).String()
}

// Callback is invoked once per packet of the hook's category. Send
// callbacks write through f.Set, receive callbacks read through f.Get.
type Callback[T any] func(p packet.Packet, f *Accessor[T]) error

// FailurePolicy decides whether the remaining hooks of a packet still run
// after err. The default policy stops at the first failure, since a short
// or long read shifts the offsets of every later registration.
type FailurePolicy func(err *HookError) (proceed bool)

func AbortOnError(*HookError) bool {
	return false
}

// Registration describes one registered hook.
type Registration struct {
	Handle   uuid.UUID
	Mod      ModID
	Phase    Phase
	Category packet.Category
	// Fields is the declared layout of data field registrations, nil for
	// callback registrations.
	Fields []FieldMeta
}

type hook struct {
	Registration
	send    func(p packet.Packet, w io.Writer) error
	receive func(p packet.Packet, r *packet.Reader) error
}

type listKey struct {
	phase    Phase
	category packet.Category
}

// Registry is the process-wide table of extension hooks. Create one at
// startup, pass it to whatever encodes or decodes packets, and Close it at
// shutdown.
//
// Invocations hold a read lock for their whole duration and registration
// changes take the write lock, so an invocation always sees a consistent
// list and no callback runs after Unregister returns. Callbacks must not
// call back into the Registry.
type Registry struct {
	mu     sync.RWMutex
	lists  map[listKey][]*hook
	closed bool

	log    *zap.Logger
	policy FailurePolicy
}

type Option func(*Registry)

func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}

func WithFailurePolicy(p FailurePolicy) Option {
	return func(r *Registry) {
		r.policy = p
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		lists:  make(map[listKey][]*hook),
		log:    zap.NewNop(),
		policy: AbortOnError,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterSend attaches a send hook writing values of type T to packets of
// category t. Registering again for the same mod and category replaces the
// earlier hook in place.
func RegisterSend[T any](r *Registry, mod ModID, t SendType, c Codec[T], fn Callback[T]) (Registration, error) {
	if fn == nil {
		return Registration{}, fmt.Errorf("ext: nil send callback for mod %q", mod)
	}
	return r.add(sendHook(mod, t, c, fn))
}

func sendHook[T any](mod ModID, t SendType, c Codec[T], fn Callback[T]) *hook {
	h := &hook{Registration: Registration{Mod: mod, Phase: PhaseSend, Category: packet.Category(t)}}
	h.send = func(p packet.Packet, w io.Writer) error {
		a := newSendAccessor(c, w)
		return a.release(fn(p, a))
	}
	return h
}

// RegisterReceive attaches a receive hook reading values of type T from
// packets of category t. It must read exactly what the peer's matching send
// hook wrote.
func RegisterReceive[T any](r *Registry, mod ModID, t ReceiveType, c Codec[T], fn Callback[T]) (Registration, error) {
	if fn == nil {
		return Registration{}, fmt.Errorf("ext: nil receive callback for mod %q", mod)
	}
	return r.add(receiveHook(mod, t, c, fn))
}

func receiveHook[T any](mod ModID, t ReceiveType, c Codec[T], fn Callback[T]) *hook {
	h := &hook{Registration: Registration{Mod: mod, Phase: PhaseReceive, Category: packet.Category(t)}}
	h.receive = func(p packet.Packet, rd *packet.Reader) error {
		a := newReceiveAccessor(c, rd)
		return a.release(fn(p, a))
	}
	return h
}

func (r *Registry) add(h *hook) (Registration, error) {
	if h.Category == packet.CategoryNone {
		return Registration{}, fmt.Errorf("ext: mod %q cannot attach fields to category %s", h.Mod, h.Category)
	}
	h.Handle = uuid.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return Registration{}, ErrClosed
	}

	key := listKey{h.Phase, h.Category}
	list := r.lists[key]
	replaced := false
	for i, e := range list {
		if e.Mod == h.Mod {
			list[i] = h
			replaced = true
			break
		}
	}
	if !replaced {
		r.lists[key] = append(list, h)
	}

	r.log.Debug("registered extension hook",
		zap.String("mod", string(h.Mod)),
		zap.Stringer("phase", h.Phase),
		zap.Stringer("category", h.Category),
		zap.Stringer("handle", h.Handle),
		zap.Bool("replaced", replaced),
	)
	return h.Registration, nil
}

// Unregister removes every hook owned by mod and reports how many there
// were. It waits for in-flight invocations to finish.
func (r *Registry) Unregister(mod ModID) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key, list := range r.lists {
		kept := slices.DeleteFunc(list, func(h *hook) bool {
			return h.Mod == mod
		})
		removed += len(list) - len(kept)
		if len(kept) == 0 {
			delete(r.lists, key)
		} else {
			r.lists[key] = kept
		}
	}

	if removed > 0 {
		r.log.Debug("unregistered mod", zap.String("mod", string(mod)), zap.Int("hooks", removed))
	}
	return removed
}

// Close drops every registration. Later registrations fail with ErrClosed
// and invocations become no-ops.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.lists = nil
	return nil
}

// Registrations lists every hook, grouped by phase then category, in
// invocation order.
func (r *Registry) Registrations() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]listKey, 0, len(r.lists))
	for key := range r.lists {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b listKey) int {
		if a.phase != b.phase {
			return int(a.phase) - int(b.phase)
		}
		return int(a.category) - int(b.category)
	})

	var regs []Registration
	for _, key := range keys {
		for _, h := range r.lists[key] {
			regs = append(regs, h.Registration)
		}
	}
	return regs
}

// InvokeSend runs the send hooks for p's category, appending their values
// to w in registration order.
func (r *Registry) InvokeSend(p packet.Packet, w io.Writer) error {
	return r.invoke(PhaseSend, p, func(h *hook) error {
		return h.send(p, w)
	})
}

// InvokeReceive runs the receive hooks for p's category, consuming the
// extension region from rd in registration order.
func (r *Registry) InvokeReceive(p packet.Packet, rd *packet.Reader) error {
	return r.invoke(PhaseReceive, p, func(h *hook) error {
		return h.receive(p, rd)
	})
}

func (r *Registry) invoke(phase Phase, p packet.Packet, call func(*hook) error) (errs error) {
	category := p.Category()
	if category == packet.CategoryNone {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.lists[listKey{phase, category}] {
		err := call(h)
		if err == nil {
			continue
		}

		herr := &HookError{
			Mod:      h.Mod,
			Phase:    phase,
			Category: category,
			Handle:   h.Handle,
			Packet:   p.ID(),
			Err:      err,
		}
		r.log.Warn("extension hook failed",
			zap.String("mod", string(h.Mod)),
			zap.Stringer("phase", phase),
			zap.Stringer("category", category),
			zap.Uint32("packet", uint32(p.ID())),
			zap.Error(err),
		)

		errs = multierr.Append(errs, herr)
		if !r.policy(herr) {
			return
		}
	}
	return
}
