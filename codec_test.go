package globed

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Termantita/globed2/ext"
	"github.com/Termantita/globed2/packet"
)

func serverCodec(hooks *ext.Registry) *Codec {
	return NewCodec(CodecConfig{
		Registry:     packet.ServerboundRegistry,
		Hooks:        hooks,
		MaxPacketLen: 1 << 16,
	})
}

func clientCodec(hooks *ext.Registry) *Codec {
	return NewCodec(CodecConfig{
		Registry:     packet.ClientboundRegistry,
		Hooks:        hooks,
		MaxPacketLen: 1 << 16,
	})
}

// TestCodec_Roundtrip verifies that a packet encoded by one side decodes to
// an equal value on the other.
func TestCodec_Roundtrip(t *testing.T) {
	c := serverCodec(nil)

	in := &packet.JoinRoomPacket{RoomID: 123456, Password: "hunter2"}
	b, err := c.Encode(in)
	require.NoError(t, err)

	id, out, err := c.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, packet.ID(13001), id)
	assert.Equal(t, in, out)
}

func TestCodec_HeaderLayout(t *testing.T) {
	c := serverCodec(nil)

	b, err := c.Encode(&packet.PingPacket{PingID: 7})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x27, 0x10, 0x00, 0x00, 0x00, 0x07}, b)

	id, err := PeekID(b)
	require.NoError(t, err)
	assert.Equal(t, packet.ID(10000), id)
}

func TestCodec_UnknownID(t *testing.T) {
	c := serverCodec(nil)

	// clientbound id on a server
	b, err := clientCodec(nil).Encode(&packet.RoomJoinFailedPacket{Message: "full"})
	require.NoError(t, err)

	id, p, err := c.Decode(b)
	assert.ErrorIs(t, err, packet.ErrNotFound)
	assert.Equal(t, packet.ID(23002), id)
	assert.Nil(t, p)
}

func TestCodec_Truncated(t *testing.T) {
	c := serverCodec(nil)

	b, err := c.Encode(&packet.JoinRoomPacket{RoomID: 1, Password: "abc"})
	require.NoError(t, err)

	for n := 0; n < len(b); n++ {
		_, p, err := c.Decode(b[:n])
		assert.ErrorIs(t, err, packet.ErrTruncatedInput, "prefix of %d bytes", n)
		assert.Nil(t, p)
	}
}

func TestCodec_TrailingBytes(t *testing.T) {
	c := serverCodec(nil)

	b, err := c.Encode(&packet.LeaveRoomPacket{})
	require.NoError(t, err)
	b = append(b, 0xFF)

	_, _, err = c.Decode(b)
	assert.ErrorIs(t, err, ErrNotExhausted)
	assert.ErrorIs(t, err, packet.ErrMalformedValue)
}

func TestCodec_TooBig(t *testing.T) {
	c := NewCodec(CodecConfig{Registry: packet.ServerboundRegistry, MaxPacketLen: 16})

	_, err := c.Encode(&packet.JoinRoomPacket{Password: string(bytes.Repeat([]byte{'a'}, 32))})
	assert.ErrorIs(t, err, ErrPacketTooBig)

	_, _, err = c.Decode(make([]byte, 17))
	assert.ErrorIs(t, err, ErrPacketTooBig)
}

// TestCodec_ExtensionRegion verifies that a field attached to RoomJoin is
// written after the fixed fields and read back on the receiving side.
func TestCodec_ExtensionRegion(t *testing.T) {
	sender := ext.NewRegistry()
	receiver := ext.NewRegistry()
	t.Cleanup(func() {
		sender.Close()
		receiver.Close()
	})

	_, err := ext.RegisterSend(sender, "example.mod", ext.SendRoomJoin, ext.U16,
		func(p packet.Packet, f *ext.Accessor[uint16]) error {
			return f.Set(42)
		})
	require.NoError(t, err)

	var got uint16
	_, err = ext.RegisterReceive(receiver, "example.mod", ext.ReceiveRoomJoin, ext.U16,
		func(p packet.Packet, f *ext.Accessor[uint16]) (err error) {
			got, err = f.Get()
			return
		})
	require.NoError(t, err)

	b, err := clientCodec(sender).Encode(&packet.JoinRoomPacket{RoomID: 9, Password: ""})
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x00, 0x32, 0xC9, // id 13001
		0x00, 0x00, 0x00, 0x09, // room id
		0x00, 0x00, 0x00, 0x00, // empty password
		0x00, 0x2A, // extension
	}, b)

	_, p, err := serverCodec(receiver).Decode(b)
	require.NoError(t, err)
	assert.Equal(t, &packet.JoinRoomPacket{RoomID: 9}, p)
	assert.Equal(t, uint16(42), got)
}

func TestCodec_HookFailure(t *testing.T) {
	hooks := ext.NewRegistry()
	t.Cleanup(func() { hooks.Close() })

	boom := errors.New("boom")
	_, err := ext.RegisterReceive(hooks, "broken.mod", ext.ReceiveRoomJoin, ext.U16,
		func(p packet.Packet, f *ext.Accessor[uint16]) error {
			return boom
		})
	require.NoError(t, err)

	b, err := serverCodec(nil).Encode(&packet.JoinRoomPacket{RoomID: 1})
	require.NoError(t, err)

	_, p, err := serverCodec(hooks).Decode(b)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, boom)

	var herr *ext.HookError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, ext.ModID("broken.mod"), herr.Mod)
	assert.Equal(t, packet.CategoryRoomJoin, herr.Category)
}

// TestCodec_NoneCategorySkipsHooks verifies that packets without a category
// never reach extension hooks.
func TestCodec_NoneCategorySkipsHooks(t *testing.T) {
	hooks := ext.NewRegistry()
	t.Cleanup(func() { hooks.Close() })

	_, err := ext.RegisterSend(hooks, "example.mod", ext.SendRoomJoin, ext.U16,
		func(p packet.Packet, f *ext.Accessor[uint16]) error {
			t.Fatal("hook invoked for a packet without category")
			return nil
		})
	require.NoError(t, err)

	b, err := clientCodec(hooks).Encode(&packet.LeaveRoomPacket{})
	require.NoError(t, err)
	assert.Len(t, b, 4)
}
