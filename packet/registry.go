package packet

import (
	"fmt"
	"reflect"
	"slices"
)

// Registry maps a packet id to a constructor of an empty instance. The
// catalogs are generated map literals, so a duplicated id fails to compile.
type Registry map[ID]func() Packet

// New allocates an empty packet for id. Unknown ids yield ErrNotFound.
func (r Registry) New(id ID) (Packet, error) {
	f, ok := r[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return f(), nil
}

// IDs returns the catalog in ascending order.
func (r Registry) IDs() []ID {
	ids := make([]ID, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Lookup finds a packet constructor by its type name, e.g. "RoomJoinedPacket".
func (r Registry) Lookup(name string) (func() Packet, bool) {
	for _, f := range r {
		if Name(f()) == name {
			return f, true
		}
	}
	return nil, false
}

// Name returns the type name of p without the package qualifier.
func Name(p Packet) string {
	t := reflect.TypeOf(p)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Registry returns the catalog of packets decoded by the receiving side of d.
func (d Direction) Registry() Registry {
	switch d {
	case Serverbound:
		return ServerboundRegistry
	case Clientbound:
		return ClientboundRegistry
	}
	return nil
}
