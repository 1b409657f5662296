package ext

import (
	"io"

	"github.com/google/uuid"

	"github.com/Termantita/globed2/packet"
)

// Codec pairs the wire encoder and decoder of one value type. Extension
// values use exactly the same encoding as packet fields.
type Codec[T any] struct {
	Write packet.WriteFn[T]
	Read  packet.ReadFn[T]
}

var (
	Bool   = Codec[bool]{packet.WriteBoolean, packet.ReadBoolean}
	U8     = Codec[uint8]{packet.WriteByte, packet.ReadByte}
	I8     = Codec[int8]{packet.WriteSignedByte, packet.ReadSignedByte}
	U16    = Codec[uint16]{packet.WriteUnsignedShort, packet.ReadUnsignedShort}
	I16    = Codec[int16]{packet.WriteShort, packet.ReadShort}
	U32    = Codec[uint32]{packet.WriteUnsignedInt, packet.ReadUnsignedInt}
	I32    = Codec[int32]{packet.WriteInt, packet.ReadInt}
	U64    = Codec[uint64]{packet.WriteUnsignedLong, packet.ReadUnsignedLong}
	I64    = Codec[int64]{packet.WriteLong, packet.ReadLong}
	F32    = Codec[float32]{packet.WriteFloat, packet.ReadFloat}
	F64    = Codec[float64]{packet.WriteDouble, packet.ReadDouble}
	String = Codec[string]{packet.WriteString, packet.ReadString}
	Bytes  = Codec[[]byte]{packet.WriteByteArray, packet.ReadByteArray}
	UUID   = Codec[uuid.UUID]{packet.WriteUUID, packet.ReadUUID}
)

// Struct builds a codec for a nested aggregate such as packet.RoomInfo.
func Struct[T packet.Encoder, PT interface {
	*T
	packet.Decoder
}]() Codec[T] {
	return Codec[T]{
		Write: packet.WriteStruct[T],
		Read:  packet.ReadStruct[T, PT],
	}
}

func Slice[T any](c Codec[T]) Codec[[]T] {
	return Codec[[]T]{
		Write: func(w io.Writer, v []T) error { return packet.WritePrefixedArray(w, v, c.Write) },
		Read:  func(r *packet.Reader) ([]T, error) { return packet.ReadPrefixedArray(r, c.Read) },
	}
}

func Optional[T any](c Codec[T]) Codec[packet.Optional[T]] {
	return Codec[packet.Optional[T]]{
		Write: func(w io.Writer, v packet.Optional[T]) error { return packet.WriteOptional(w, v, c.Write) },
		Read:  func(r *packet.Reader) (packet.Optional[T], error) { return packet.ReadOptional(r, c.Read) },
	}
}
