//go:generate go run ../codegen/gen_packet_codec.go -- .

// Package packet implements the Globed wire format: positional big-endian
// field codecs, the packet catalog, and id-keyed registries used to allocate
// the right decoder for an incoming buffer.
package packet

import (
	"fmt"
	"io"
)

// ID identifies a concrete packet type. The first decimal digit is the
// direction (1 client to server, 2 server to client) and the second digit is
// the group, e.g. 23001 is a server to client room packet.
type ID uint32

type Group uint8

const (
	GroupConnection Group = 0
	GroupGeneral    Group = 1
	GroupGame       Group = 2
	GroupRoom       Group = 3
	GroupAdmin      Group = 9
)

func (g Group) String() string {
	switch g {
	case GroupConnection:
		return "connection"
	case GroupGeneral:
		return "general"
	case GroupGame:
		return "game"
	case GroupRoom:
		return "room"
	case GroupAdmin:
		return "admin"
	}
	return fmt.Sprintf("group(%d)", uint8(g))
}

type Direction uint8

const (
	_ Direction = iota
	Serverbound
	Clientbound
)

func (d Direction) String() string {
	switch d {
	case Serverbound:
		return "serverbound"
	case Clientbound:
		return "clientbound"
	}
	return "unknown"
}

func (id ID) Direction() Direction {
	return Direction(id / 10000)
}

func (id ID) Group() Group {
	return Group(id / 1000 % 10)
}

// Flags are fixed per packet type, never per instance.
type Flags struct {
	// Encrypted packets must only travel over an established secure channel.
	Encrypted bool
	// Unreliable packets may be dropped instead of retried.
	Unreliable bool
}

// Category names the attachment point at which mods may append extension
// fields to a packet. Packets with CategoryNone carry no extension region.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryLogin
	CategoryLevelJoin
	CategoryPlayerData
	CategoryRoomCreate
	CategoryRoomJoin
	CategoryRoomInfo
	CategoryChatMessage
	CategoryProfiles
)

var categoryNames = [...]string{
	CategoryNone:        "None",
	CategoryLogin:       "Login",
	CategoryLevelJoin:   "LevelJoin",
	CategoryPlayerData:  "PlayerData",
	CategoryRoomCreate:  "RoomCreate",
	CategoryRoomJoin:    "RoomJoin",
	CategoryRoomInfo:    "RoomInfo",
	CategoryChatMessage: "ChatMessage",
	CategoryProfiles:    "Profiles",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(s string) (Category, error) {
	for i, n := range categoryNames {
		if n == s {
			return Category(i), nil
		}
	}
	return CategoryNone, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) (err error) {
	*c, err = ParseCategory(string(b))
	return
}

// Packet is implemented by every message in the catalog. Encode writes the
// fixed fields only; the packet id header and the extension region are
// handled by the caller.
type Packet interface {
	ID() ID
	Flags() Flags
	Category() Category
	Encode(w io.Writer) error
	Decode(r *Reader) error
}
