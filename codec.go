// Package globed joins the packet catalog, the wire codec and the field
// extension registry into a single encode/decode boundary.
//
// A packet buffer is laid out as
//
//	[id u32][fixed fields][extension region]
//
// Transport framing, encryption and delivery are handled by the caller, so a
// buffer handed to Decode must hold exactly one packet.
package globed

import (
	"bytes"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Termantita/globed2/ext"
	"github.com/Termantita/globed2/packet"
)

var (
	ErrPacketTooBig = errors.New("packet too big")
	// ErrNotExhausted is returned when bytes remain after the packet and every
	// extension hook have been decoded. It matches packet.ErrMalformedValue.
	ErrNotExhausted = fmt.Errorf("%w: not exhausted", packet.ErrMalformedValue)
)

const DefaultMaxPacketLen = 1 << 21

type CodecConfig struct {
	// Registry is the catalog this endpoint decodes, usually
	// packet.ServerboundRegistry on a server and packet.ClientboundRegistry on
	// a client.
	Registry packet.Registry
	// Hooks is optional. Without it the extension region is always empty.
	Hooks        *ext.Registry
	MaxPacketLen int
	Logger       *zap.Logger
}

// Codec encodes and decodes whole packet buffers. It holds no per-packet
// state and is safe for concurrent use.
type Codec struct {
	registry packet.Registry
	hooks    *ext.Registry
	maxLen   int
	log      *zap.Logger
}

func NewCodec(cfg CodecConfig) *Codec {
	c := &Codec{
		registry: cfg.Registry,
		hooks:    cfg.Hooks,
		maxLen:   cfg.MaxPacketLen,
		log:      cfg.Logger,
	}
	if c.maxLen <= 0 {
		c.maxLen = DefaultMaxPacketLen
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Encode writes the header, the fixed fields of p and the values of every
// send hook registered for p's category.
func (c *Codec) Encode(p packet.Packet) ([]byte, error) {
	var buf bytes.Buffer
	if err := packet.WriteUnsignedInt(&buf, uint32(p.ID())); err != nil {
		return nil, err
	}
	if err := p.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", packet.Name(p), err)
	}
	if c.hooks != nil {
		if err := c.hooks.InvokeSend(p, &buf); err != nil {
			return nil, err
		}
	}
	if buf.Len() > c.maxLen {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrPacketTooBig, packet.Name(p), buf.Len())
	}

	c.log.Debug("encoded packet",
		zap.Uint32("id", uint32(p.ID())),
		zap.String("name", packet.Name(p)),
		zap.Int("len", buf.Len()),
	)
	return buf.Bytes(), nil
}

// Decode reads one packet from b. The returned id is valid whenever the
// header could be read, even if the id is unknown or the body is malformed,
// so callers can log or drop the packet by id.
func (c *Codec) Decode(b []byte) (id packet.ID, p packet.Packet, err error) {
	if len(b) > c.maxLen {
		return 0, nil, fmt.Errorf("%w: %d bytes", ErrPacketTooBig, len(b))
	}

	r := packet.NewReader(b)
	raw, err := packet.ReadUnsignedInt(&r)
	if err != nil {
		return 0, nil, err
	}
	id = packet.ID(raw)

	if p, err = c.registry.New(id); err != nil {
		c.log.Debug("dropping unknown packet", zap.Uint32("id", raw), zap.Int("len", len(b)))
		return id, nil, err
	}
	if err = p.Decode(&r); err != nil {
		return id, nil, fmt.Errorf("decoding %s: %w", packet.Name(p), err)
	}
	if c.hooks != nil {
		if err = c.hooks.InvokeReceive(p, &r); err != nil {
			return id, nil, err
		}
	}
	if n := r.Remaining(); n > 0 {
		return id, nil, fmt.Errorf("%w: %d trailing bytes after %s", ErrNotExhausted, n, packet.Name(p))
	}
	return id, p, nil
}

// PeekID reads the packet id from the header of b without decoding the body.
func PeekID(b []byte) (packet.ID, error) {
	r := packet.NewReader(b)
	id, err := packet.ReadUnsignedInt(&r)
	return packet.ID(id), err
}
