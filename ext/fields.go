package ext

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/Termantita/globed2/packet"
)

// FieldType names the wire type of a declared data field.
type FieldType uint8

const (
	FieldBool FieldType = iota + 1
	FieldU8
	FieldU16
	FieldU32
	FieldU64
	FieldI8
	FieldI16
	FieldI32
	FieldI64
	FieldF32
	FieldF64
	FieldString
	FieldBytes
	FieldUUID
)

var fieldTypeNames = [...]string{
	FieldBool:   "bool",
	FieldU8:     "u8",
	FieldU16:    "u16",
	FieldU32:    "u32",
	FieldU64:    "u64",
	FieldI8:     "i8",
	FieldI16:    "i16",
	FieldI32:    "i32",
	FieldI64:    "i64",
	FieldF32:    "f32",
	FieldF64:    "f64",
	FieldString: "string",
	FieldBytes:  "bytes",
	FieldUUID:   "uuid",
}

func (t FieldType) String() string {
	if int(t) < len(fieldTypeNames) && fieldTypeNames[t] != "" {
		return fieldTypeNames[t]
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

func ParseFieldType(s string) (FieldType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range fieldTypeNames {
		if name != "" && name == s {
			return FieldType(t), nil
		}
	}
	return 0, fmt.Errorf("ext: unknown field type %q", s)
}

func (t FieldType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *FieldType) UnmarshalText(b []byte) (err error) {
	*t, err = ParseFieldType(string(b))
	return
}

// FieldMeta declares one value of a data field registration.
type FieldMeta struct {
	Name string    `toml:"name" yaml:"name"`
	Type FieldType `toml:"type" yaml:"type"`
}

// Codec returns a codec for values of t held in an interface. Writing
// accepts any Go number that fits the wire type without loss, so values
// decoded from TOML or YAML can be written directly.
func (t FieldType) Codec() (Codec[any], error) {
	switch t {
	case FieldBool:
		return dynamic(Bool, toBool), nil
	case FieldU8:
		return dynamic(U8, toUnsigned[uint8]), nil
	case FieldU16:
		return dynamic(U16, toUnsigned[uint16]), nil
	case FieldU32:
		return dynamic(U32, toUnsigned[uint32]), nil
	case FieldU64:
		return dynamic(U64, toUnsigned[uint64]), nil
	case FieldI8:
		return dynamic(I8, toSigned[int8]), nil
	case FieldI16:
		return dynamic(I16, toSigned[int16]), nil
	case FieldI32:
		return dynamic(I32, toSigned[int32]), nil
	case FieldI64:
		return dynamic(I64, toSigned[int64]), nil
	case FieldF32:
		return dynamic(F32, toFloat[float32]), nil
	case FieldF64:
		return dynamic(F64, toFloat[float64]), nil
	case FieldString:
		return dynamic(String, toString), nil
	case FieldBytes:
		return dynamic(Bytes, toBytes), nil
	case FieldUUID:
		return dynamic(UUID, toUUID), nil
	}
	return Codec[any]{}, fmt.Errorf("ext: unknown field type %d", uint8(t))
}

func dynamic[T any](c Codec[T], conv func(any) (T, error)) Codec[any] {
	return Codec[any]{
		Write: func(w io.Writer, v any) error {
			t, err := conv(v)
			if err != nil {
				return err
			}
			return c.Write(w, t)
		},
		Read: func(r *packet.Reader) (any, error) {
			return c.Read(r)
		},
	}
}

func mismatch(v any, want string) error {
	return fmt.Errorf("%w: %T value %v is not a valid %s", packet.ErrMalformedValue, v, v, want)
}

func toBool(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, mismatch(v, "bool")
}

type signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func toSigned[T signed](v any) (T, error) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, mismatch(v, fmt.Sprintf("%T", T(0)))
		}
		n = int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return 0, mismatch(v, fmt.Sprintf("%T", T(0)))
		}
		n = int64(x)
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, mismatch(v, fmt.Sprintf("%T", T(0)))
		}
		n = int64(x)
	default:
		return 0, mismatch(v, fmt.Sprintf("%T", T(0)))
	}
	if int64(T(n)) != n {
		return 0, mismatch(v, fmt.Sprintf("%T", T(0)))
	}
	return T(n), nil
}

func toUnsigned[T unsigned](v any) (T, error) {
	var n uint64
	switch x := v.(type) {
	case uint:
		n = uint64(x)
	case uint8:
		n = uint64(x)
	case uint16:
		n = uint64(x)
	case uint32:
		n = uint64(x)
	case uint64:
		n = x
	case int, int8, int16, int32, int64:
		s, err := toSigned[int64](x)
		if err != nil || s < 0 {
			return 0, mismatch(v, fmt.Sprintf("%T", T(0)))
		}
		n = uint64(s)
	case float64:
		if x != math.Trunc(x) || x < 0 || x >= math.MaxUint64 {
			return 0, mismatch(v, fmt.Sprintf("%T", T(0)))
		}
		n = uint64(x)
	default:
		return 0, mismatch(v, fmt.Sprintf("%T", T(0)))
	}
	if uint64(T(n)) != n {
		return 0, mismatch(v, fmt.Sprintf("%T", T(0)))
	}
	return T(n), nil
}

func toFloat[T float32 | float64](v any) (T, error) {
	switch x := v.(type) {
	case float32:
		return T(x), nil
	case float64:
		return T(x), nil
	case int:
		return T(x), nil
	case int32:
		return T(x), nil
	case int64:
		return T(x), nil
	}
	return 0, mismatch(v, fmt.Sprintf("%T", T(0)))
}

func toString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", mismatch(v, "string")
}

func toBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case string:
		return []byte(x), nil
	}
	return nil, mismatch(v, "byte array")
}

func toUUID(v any) (uuid.UUID, error) {
	switch x := v.(type) {
	case uuid.UUID:
		return x, nil
	case [16]byte:
		return uuid.UUID(x), nil
	case string:
		u, err := uuid.Parse(x)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %w", packet.ErrMalformedValue, err)
		}
		return u, nil
	}
	return uuid.Nil, mismatch(v, "uuid")
}

// schema encodes a fixed list of dynamically typed values back to back.
func schema(fields []FieldMeta) (Codec[[]any], error) {
	if len(fields) == 0 {
		return Codec[[]any]{}, fmt.Errorf("ext: empty field list")
	}
	codecs := make([]Codec[any], len(fields))
	for i, f := range fields {
		c, err := f.Type.Codec()
		if err != nil {
			return Codec[[]any]{}, fmt.Errorf("ext: field %q: %w", f.Name, err)
		}
		codecs[i] = c
	}
	return Codec[[]any]{
		Write: func(w io.Writer, vs []any) error {
			if len(vs) != len(codecs) {
				return fmt.Errorf("%w: got %d values for %d fields", packet.ErrMalformedValue, len(vs), len(codecs))
			}
			for i, c := range codecs {
				if err := c.Write(w, vs[i]); err != nil {
					return fmt.Errorf("field %q: %w", fields[i].Name, err)
				}
			}
			return nil
		},
		Read: func(r *packet.Reader) ([]any, error) {
			vs := make([]any, len(codecs))
			for i, c := range codecs {
				v, err := c.Read(r)
				if err != nil {
					return nil, fmt.Errorf("field %q: %w", fields[i].Name, err)
				}
				vs[i] = v
			}
			return vs, nil
		},
	}, nil
}

// RegisterSendFields attaches a declared list of fields to outgoing packets
// of category t. values supplies one value per field, in order, for every
// packet sent.
func RegisterSendFields(r *Registry, mod ModID, t SendType, fields []FieldMeta, values func(packet.Packet) ([]any, error)) (Registration, error) {
	if values == nil {
		return Registration{}, fmt.Errorf("ext: nil value provider for mod %q", mod)
	}
	c, err := schema(fields)
	if err != nil {
		return Registration{}, err
	}
	h := sendHook(mod, t, c, func(p packet.Packet, f *Accessor[[]any]) error {
		vs, err := values(p)
		if err != nil {
			return err
		}
		return f.Set(vs)
	})
	h.Fields = fields
	return r.add(h)
}

// RegisterReceiveFields is the receiving counterpart of RegisterSendFields.
// sink gets the decoded values in declared order.
func RegisterReceiveFields(r *Registry, mod ModID, t ReceiveType, fields []FieldMeta, sink func(packet.Packet, []any) error) (Registration, error) {
	if sink == nil {
		return Registration{}, fmt.Errorf("ext: nil value sink for mod %q", mod)
	}
	c, err := schema(fields)
	if err != nil {
		return Registration{}, err
	}
	h := receiveHook(mod, t, c, func(p packet.Packet, f *Accessor[[]any]) error {
		vs, err := f.Get()
		if err != nil {
			return err
		}
		return sink(p, vs)
	})
	h.Fields = fields
	return r.add(h)
}
