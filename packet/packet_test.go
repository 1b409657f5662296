package packet

import (
	"bytes"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

// fill assigns a deterministic non-zero value to every field of v, so
// optionals are present and sequences are non-empty.
func fill(v reflect.Value, seed *int) {
	*seed++
	n := *seed

	switch v.Kind() {
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(n%100) - 50)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(n%200) + 1)
	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64(n) + 0.25)
	case reflect.String:
		v.SetString("s" + strconv.Itoa(n))
	case reflect.Slice:
		s := reflect.MakeSlice(v.Type(), 2, 2)
		for i := 0; i < s.Len(); i++ {
			fill(s.Index(i), seed)
		}
		v.Set(s)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			fill(v.Index(i), seed)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			fill(v.Field(i), seed)
		}
	}
}

func allPackets() []Packet {
	var ps []Packet
	for _, reg := range []Registry{ServerboundRegistry, ClientboundRegistry} {
		for _, id := range reg.IDs() {
			p, _ := reg.New(id)
			ps = append(ps, p)
		}
	}
	return ps
}

func TestRegistry_Totality(t *testing.T) {
	for _, tC := range []struct {
		reg Registry
		dir Direction
	}{
		{ServerboundRegistry, Serverbound},
		{ClientboundRegistry, Clientbound},
	} {
		t.Run(tC.dir.String(), func(t *testing.T) {
			if len(tC.reg) == 0 {
				t.Fatal("empty catalog")
			}

			for _, id := range tC.reg.IDs() {
				p, err := tC.reg.New(id)
				if err != nil {
					t.Fatalf("New(%d) failed: %v", id, err)
				}
				if p == nil {
					t.Fatalf("New(%d) returned nil", id)
				}
				if p.ID() != id {
					t.Errorf("%s registered under %d reports id %d", Name(p), id, p.ID())
				}
				if id.Direction() != tC.dir {
					t.Errorf("%s (%d) has direction %s in the %s catalog", Name(p), id, id.Direction(), tC.dir)
				}
				if strings.HasPrefix(id.Group().String(), "group(") {
					t.Errorf("%s (%d) has unknown group %d", Name(p), id, id.Group())
				}
				if !strings.HasSuffix(Name(p), "Packet") {
					t.Errorf("%s does not follow the Packet naming", Name(p))
				}

				f, ok := tC.reg.Lookup(Name(p))
				if !ok || f().ID() != id {
					t.Errorf("Lookup(%s) did not find id %d", Name(p), id)
				}
			}
		})
	}
}

func TestRegistry_NotFound(t *testing.T) {
	for _, id := range []ID{0, 1, 10999, 13001 + 10000, 99999} {
		_, err := ServerboundRegistry.New(id)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("New(%d) expected error %v, got %v", id, ErrNotFound, err)
		}
	}

	// 13001 is a client request, never decoded by a client
	if _, err := ClientboundRegistry.New(13001); !errors.Is(err, ErrNotFound) {
		t.Errorf("ClientboundRegistry.New(13001) expected %v, got %v", ErrNotFound, err)
	}
}

func TestDirection_Registry(t *testing.T) {
	if reflect.ValueOf(Serverbound.Registry()).Pointer() != reflect.ValueOf(ServerboundRegistry).Pointer() {
		t.Error("Serverbound.Registry() is not the serverbound catalog")
	}
	if reflect.ValueOf(Clientbound.Registry()).Pointer() != reflect.ValueOf(ClientboundRegistry).Pointer() {
		t.Error("Clientbound.Registry() is not the clientbound catalog")
	}
	if Direction(0).Registry() != nil {
		t.Error("unknown direction has a catalog")
	}
}

// TestPacket_Roundtrip encodes every catalog packet with all fields set and
// checks it decodes to an equal value.
func TestPacket_Roundtrip(t *testing.T) {
	seed := 0
	for _, in := range allPackets() {
		t.Run(Name(in), func(t *testing.T) {
			fill(reflect.ValueOf(in).Elem(), &seed)

			var buf bytes.Buffer
			if err := in.Encode(&buf); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			out, _ := in.ID().Direction().Registry().New(in.ID())
			r := NewReader(buf.Bytes())
			if err := out.Decode(&r); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
			if !reflect.DeepEqual(in, out) {
				t.Errorf("roundtrip mismatch\nwant %+v\n got %+v", in, out)
			}
		})
	}
}

// TestPacket_Truncation decodes every strict prefix of every encoded packet.
func TestPacket_Truncation(t *testing.T) {
	seed := 0
	for _, in := range allPackets() {
		t.Run(Name(in), func(t *testing.T) {
			fill(reflect.ValueOf(in).Elem(), &seed)

			var buf bytes.Buffer
			if err := in.Encode(&buf); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			b := buf.Bytes()

			for n := 0; n < len(b); n++ {
				out, _ := in.ID().Direction().Registry().New(in.ID())
				r := NewReader(b[:n])
				err := out.Decode(&r)
				if !errors.Is(err, ErrTruncatedInput) {
					t.Fatalf("prefix of %d/%d bytes: expected error %v, got %v", n, len(b), ErrTruncatedInput, err)
				}
			}
		})
	}
}

func TestRoomJoinFailedPacket(t *testing.T) {
	want := []byte{0x00, 0x00, 0x00, 0x04, 'f', 'u', 'l', 'l'}

	var buf bytes.Buffer
	if err := (RoomJoinFailedPacket{Message: "full"}).Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Encode expected %x, got %x", want, buf.Bytes())
	}

	var p RoomJoinFailedPacket
	r := NewReader(want)
	if err := p.Decode(&r); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if p.Message != "full" {
		t.Errorf("Decode expected %q, got %q", "full", p.Message)
	}
}

func TestPacket_Metadata(t *testing.T) {
	tests := []struct {
		p        Packet
		group    Group
		flags    Flags
		category Category
	}{
		{&PingPacket{}, GroupConnection, Flags{Unreliable: true}, CategoryNone},
		{&LoginPacket{}, GroupConnection, Flags{Encrypted: true}, CategoryLogin},
		{&LoggedInPacket{}, GroupConnection, Flags{Encrypted: true}, CategoryLogin},
		{&JoinRoomPacket{}, GroupRoom, Flags{}, CategoryRoomJoin},
		{&RoomJoinedPacket{}, GroupRoom, Flags{}, CategoryRoomJoin},
		{&RoomJoinFailedPacket{}, GroupRoom, Flags{}, CategoryNone},
		{&PlayerDataPacket{}, GroupGame, Flags{Unreliable: true}, CategoryPlayerData},
	}

	for _, tt := range tests {
		t.Run(Name(tt.p), func(t *testing.T) {
			if g := tt.p.ID().Group(); g != tt.group {
				t.Errorf("group expected %s, got %s", tt.group, g)
			}
			if f := tt.p.Flags(); f != tt.flags {
				t.Errorf("flags expected %+v, got %+v", tt.flags, f)
			}
			if c := tt.p.Category(); c != tt.category {
				t.Errorf("category expected %s, got %s", tt.category, c)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	for c := CategoryNone; c <= CategoryProfiles; c++ {
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCategory("Lobby"); err == nil {
		t.Error("ParseCategory accepted an unknown name")
	}
}
