package ext

import (
	"bytes"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/Termantita/globed2/packet"
)

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	r := NewRegistry(opts...)
	t.Cleanup(func() { r.Close() })
	return r
}

func send(t *testing.T, r *Registry, p packet.Packet) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.InvokeSend(p, &buf))
	return buf.Bytes()
}

func setter[T any](v T) Callback[T] {
	return func(p packet.Packet, f *Accessor[T]) error {
		return f.Set(v)
	}
}

func getter[T any](dst *T) Callback[T] {
	return func(p packet.Packet, f *Accessor[T]) (err error) {
		*dst, err = f.Get()
		return
	}
}

func TestRoomJoinExtension(t *testing.T) {
	sender := newTestRegistry(t)
	receiver := newTestRegistry(t)

	_, err := RegisterSend(sender, "example.mod", SendRoomJoin, U16, setter[uint16](42))
	require.NoError(t, err)

	var got uint16
	_, err = RegisterReceive(receiver, "example.mod", ReceiveRoomJoin, U16, getter(&got))
	require.NoError(t, err)

	b := send(t, sender, &packet.RoomJoinedPacket{})
	assert.Equal(t, []byte{0x00, 0x2a}, b)

	rd := packet.NewReader(b)
	require.NoError(t, receiver.InvokeReceive(&packet.RoomJoinedPacket{}, &rd))
	assert.Equal(t, uint16(42), got)
	assert.Zero(t, rd.Remaining())
}

// TestOrdering verifies that registrations write and read contiguously in
// registration order regardless of their sizes.
func TestOrdering(t *testing.T) {
	sender := newTestRegistry(t)
	receiver := newTestRegistry(t)

	_, err := RegisterSend(sender, "r1", SendLogin, U8, setter[uint8](1))
	require.NoError(t, err)
	_, err = RegisterSend(sender, "r2", SendLogin, String, setter("ab"))
	require.NoError(t, err)
	_, err = RegisterSend(sender, "r3", SendLogin, U32, setter[uint32](7))
	require.NoError(t, err)

	b := send(t, sender, &packet.LoginPacket{})
	assert.Equal(t, []byte{
		0x01,
		0x00, 0x00, 0x00, 0x02, 'a', 'b',
		0x00, 0x00, 0x00, 0x07,
	}, b)

	var (
		v1 uint8
		v2 string
		v3 uint32
	)
	_, err = RegisterReceive(receiver, "r1", ReceiveLogin, U8, getter(&v1))
	require.NoError(t, err)
	_, err = RegisterReceive(receiver, "r2", ReceiveLogin, String, getter(&v2))
	require.NoError(t, err)
	_, err = RegisterReceive(receiver, "r3", ReceiveLogin, U32, getter(&v3))
	require.NoError(t, err)

	rd := packet.NewReader(b)
	require.NoError(t, receiver.InvokeReceive(&packet.LoginPacket{}, &rd))
	assert.Equal(t, uint8(1), v1)
	assert.Equal(t, "ab", v2)
	assert.Equal(t, uint32(7), v3)
	assert.Zero(t, rd.Remaining())
}

func TestCategoriesAreIndependent(t *testing.T) {
	r := newTestRegistry(t)

	_, err := RegisterSend(r, "a", SendRoomJoin, U8, setter[uint8](1))
	require.NoError(t, err)
	_, err = RegisterSend(r, "a", SendRoomCreate, U8, setter[uint8](2))
	require.NoError(t, err)

	assert.Equal(t, []byte{1}, send(t, r, &packet.JoinRoomPacket{}))
	assert.Equal(t, []byte{2}, send(t, r, &packet.CreateRoomPacket{}))
	assert.Empty(t, send(t, r, &packet.LoginPacket{}))
	assert.Empty(t, send(t, r, &packet.LeaveRoomPacket{}))
}

func TestReRegisterReplacesInPlace(t *testing.T) {
	r := newTestRegistry(t)

	first, err := RegisterSend(r, "a", SendRoomJoin, U8, setter[uint8](1))
	require.NoError(t, err)
	_, err = RegisterSend(r, "b", SendRoomJoin, U8, setter[uint8](2))
	require.NoError(t, err)
	second, err := RegisterSend(r, "a", SendRoomJoin, U16, setter[uint16](3))
	require.NoError(t, err)

	assert.NotEqual(t, first.Handle, second.Handle)
	assert.Equal(t, []byte{0x00, 0x03, 0x02}, send(t, r, &packet.RoomJoinedPacket{}))
	assert.Len(t, r.Registrations(), 2)
}

func TestRegistrations(t *testing.T) {
	r := newTestRegistry(t)

	_, err := RegisterReceive(r, "b", ReceiveRoomJoin, U8, getter(new(uint8)))
	require.NoError(t, err)
	_, err = RegisterSend(r, "b", SendRoomJoin, U8, setter[uint8](1))
	require.NoError(t, err)
	_, err = RegisterSend(r, "a", SendLogin, U8, setter[uint8](1))
	require.NoError(t, err)

	regs := r.Registrations()
	require.Len(t, regs, 3)
	assert.Equal(t, PhaseSend, regs[0].Phase)
	assert.Equal(t, packet.CategoryLogin, regs[0].Category)
	assert.Equal(t, PhaseSend, regs[1].Phase)
	assert.Equal(t, packet.CategoryRoomJoin, regs[1].Category)
	assert.Equal(t, PhaseReceive, regs[2].Phase)
	assert.Equal(t, ModID("b"), regs[2].Mod)
}

func TestRegisterRejects(t *testing.T) {
	r := newTestRegistry(t)

	_, err := RegisterSend(r, "a", SendType(packet.CategoryNone), U8, setter[uint8](1))
	assert.Error(t, err)

	_, err = RegisterSend[uint8](r, "a", SendLogin, U8, nil)
	assert.Error(t, err)

	_, err = RegisterReceive[uint8](r, "a", ReceiveLogin, U8, nil)
	assert.Error(t, err)

	assert.Empty(t, r.Registrations())
}

func TestWrongPhase(t *testing.T) {
	r := newTestRegistry(t)

	_, err := RegisterSend(r, "a", SendRoomJoin, U8, func(p packet.Packet, f *Accessor[uint8]) error {
		_, err := f.Get()
		return err
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.InvokeSend(&packet.RoomJoinedPacket{}, &buf)
	assert.ErrorIs(t, err, ErrWrongPhase)

	var herr *HookError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, ModID("a"), herr.Mod)
	assert.Equal(t, PhaseSend, herr.Phase)
	assert.Equal(t, packet.ID(23001), herr.Packet)
}

func TestWrongPhase_Swallowed(t *testing.T) {
	r := newTestRegistry(t)

	// the callback ignores the failure, the registration still reports it
	_, err := RegisterReceive(r, "a", ReceiveRoomJoin, U8, func(p packet.Packet, f *Accessor[uint8]) error {
		_ = f.Set(1)
		return nil
	})
	require.NoError(t, err)

	rd := packet.NewReader([]byte{0x01})
	assert.ErrorIs(t, r.InvokeReceive(&packet.RoomJoinedPacket{}, &rd), ErrWrongPhase)
}

func TestAccessorExpires(t *testing.T) {
	r := newTestRegistry(t)

	var kept *Accessor[uint8]
	_, err := RegisterSend(r, "a", SendRoomJoin, U8, func(p packet.Packet, f *Accessor[uint8]) error {
		kept = f
		return f.Set(1)
	})
	require.NoError(t, err)

	assert.Equal(t, []byte{1}, send(t, r, &packet.RoomJoinedPacket{}))
	require.NotNil(t, kept)
	assert.ErrorIs(t, kept.Set(2), ErrWrongPhase)
	assert.NoError(t, kept.Err())
}

func TestTruncatedReadIsAttributed(t *testing.T) {
	r := newTestRegistry(t)

	_, err := RegisterReceive(r, "short.mod", ReceiveRoomJoin, U32, getter(new(uint32)))
	require.NoError(t, err)

	rd := packet.NewReader([]byte{0x00, 0x01})
	err = r.InvokeReceive(&packet.RoomJoinedPacket{}, &rd)
	assert.ErrorIs(t, err, packet.ErrTruncatedInput)

	var herr *HookError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, ModID("short.mod"), herr.Mod)
	assert.Equal(t, packet.CategoryRoomJoin, herr.Category)
}

func TestFailurePolicy(t *testing.T) {
	boom := errors.New("boom")
	fail := func(p packet.Packet, f *Accessor[uint8]) error { return boom }

	t.Run("abort by default", func(t *testing.T) {
		r := newTestRegistry(t)

		var called bool
		_, err := RegisterSend(r, "a", SendRoomJoin, U8, fail)
		require.NoError(t, err)
		_, err = RegisterSend(r, "b", SendRoomJoin, U8, func(p packet.Packet, f *Accessor[uint8]) error {
			called = true
			return nil
		})
		require.NoError(t, err)

		var buf bytes.Buffer
		err = r.InvokeSend(&packet.RoomJoinedPacket{}, &buf)
		assert.ErrorIs(t, err, boom)
		assert.False(t, called)
	})

	t.Run("continue", func(t *testing.T) {
		var seen []ModID
		r := newTestRegistry(t, WithFailurePolicy(func(err *HookError) bool {
			seen = append(seen, err.Mod)
			return true
		}))

		_, err := RegisterSend(r, "a", SendRoomJoin, U8, fail)
		require.NoError(t, err)
		_, err = RegisterSend(r, "b", SendRoomJoin, U8, setter[uint8](9))
		require.NoError(t, err)
		_, err = RegisterSend(r, "c", SendRoomJoin, U8, fail)
		require.NoError(t, err)

		var buf bytes.Buffer
		err = r.InvokeSend(&packet.RoomJoinedPacket{}, &buf)
		assert.Len(t, multierr.Errors(err), 2)
		assert.Equal(t, []ModID{"a", "c"}, seen)
		assert.Equal(t, []byte{9}, buf.Bytes())
	})
}

func TestUnregister(t *testing.T) {
	r := newTestRegistry(t)

	_, err := RegisterSend(r, "a", SendRoomJoin, U8, setter[uint8](1))
	require.NoError(t, err)
	_, err = RegisterSend(r, "a", SendLogin, U8, setter[uint8](1))
	require.NoError(t, err)
	_, err = RegisterReceive(r, "a", ReceiveLogin, U8, getter(new(uint8)))
	require.NoError(t, err)
	_, err = RegisterSend(r, "b", SendRoomJoin, U8, setter[uint8](2))
	require.NoError(t, err)

	assert.Equal(t, 3, r.Unregister("a"))
	assert.Equal(t, 0, r.Unregister("a"))
	assert.Equal(t, []byte{2}, send(t, r, &packet.RoomJoinedPacket{}))
	assert.Empty(t, send(t, r, &packet.LoginPacket{}))
	assert.Len(t, r.Registrations(), 1)
}

// TestUnregisterRace checks that no callback of a mod runs once Unregister
// for that mod has returned, while other goroutines keep invoking.
func TestUnregisterRace(t *testing.T) {
	r := newTestRegistry(t)

	var (
		gone    atomic.Bool
		late    atomic.Int64
		invoked atomic.Int64
	)
	_, err := RegisterSend(r, "racy", SendPlayerData, U8, func(p packet.Packet, f *Accessor[uint8]) error {
		invoked.Add(1)
		if gone.Load() {
			late.Add(1)
		}
		return f.Set(1)
	})
	require.NoError(t, err)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				var buf bytes.Buffer
				_ = r.InvokeSend(&packet.PlayerDataPacket{}, &buf)
			}
		}()
	}

	for invoked.Load() < 100 {
	}
	require.Equal(t, 1, r.Unregister("racy"))
	gone.Store(true)

	before := invoked.Load()
	for i := 0; i < 1000; i++ {
		var buf bytes.Buffer
		require.NoError(t, r.InvokeSend(&packet.PlayerDataPacket{}, &buf))
		assert.Empty(t, buf.Bytes())
	}
	close(stop)
	wg.Wait()

	assert.Zero(t, late.Load())
	assert.Equal(t, before, invoked.Load())
}

func TestClose(t *testing.T) {
	r := NewRegistry()

	_, err := RegisterSend(r, "a", SendRoomJoin, U8, setter[uint8](1))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	_, err = RegisterSend(r, "a", SendRoomJoin, U8, setter[uint8](1))
	assert.ErrorIs(t, err, ErrClosed)

	var buf bytes.Buffer
	assert.NoError(t, r.InvokeSend(&packet.RoomJoinedPacket{}, &buf))
	assert.Zero(t, buf.Len())
	assert.Zero(t, r.Unregister("a"))
}
