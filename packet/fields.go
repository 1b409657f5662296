package packet

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
)

// Sanity bounds applied to length prefixes before any allocation happens.
const (
	MaxStringLen    = 1 << 16
	MaxByteArrayLen = 1 << 20
	MaxSequenceLen  = 1 << 16
)

type WriteFn[T any] func(io.Writer, T) error
type ReadFn[T any] func(*Reader) (T, error)

func WriteBoolean(w io.Writer, v bool) (err error) {
	b := byte(0)
	if v {
		b = 1
	}

	_, err = w.Write([]byte{b})
	return
}

func ReadBoolean(r *Reader) (v bool, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return
	}

	if b == 0 {
		v = false
	} else if b == 1 {
		v = true
	} else {
		err = fmt.Errorf("%w: invalid byte %#x for Boolean field", ErrMalformedValue, b)
	}

	return
}

func WriteByte(w io.Writer, v byte) (err error) {
	_, err = w.Write([]byte{v})
	return
}

func ReadByte(r *Reader) (v byte, err error) {
	b, err := r.ReadByte()
	return b, err
}

func WriteSignedByte(w io.Writer, v int8) (err error) {
	return WriteByte(w, byte(v))
}

func ReadSignedByte(r *Reader) (v int8, err error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func WriteShort(w io.Writer, v int16) (err error) {
	return WriteUnsignedShort(w, uint16(v))
}

func ReadShort(r *Reader) (v int16, err error) {
	u, err := ReadUnsignedShort(r)
	return int16(u), err
}

func WriteUnsignedShort(w io.Writer, v uint16) (err error) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err = w.Write(b[:])
	return
}

func ReadUnsignedShort(r *Reader) (v uint16, err error) {
	b, err := r.Read(2)
	if err != nil {
		return
	}

	v = binary.BigEndian.Uint16(b)
	return
}

func WriteInt(w io.Writer, v int32) (err error) {
	return WriteUnsignedInt(w, uint32(v))
}

func ReadInt(r *Reader) (v int32, err error) {
	u, err := ReadUnsignedInt(r)
	return int32(u), err
}

func WriteUnsignedInt(w io.Writer, v uint32) (err error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err = w.Write(b[:])
	return
}

func ReadUnsignedInt(r *Reader) (v uint32, err error) {
	b, err := r.Read(4)
	if err != nil {
		return
	}

	v = binary.BigEndian.Uint32(b)
	return
}

func WriteLong(w io.Writer, v int64) (err error) {
	return WriteUnsignedLong(w, uint64(v))
}

func ReadLong(r *Reader) (v int64, err error) {
	u, err := ReadUnsignedLong(r)
	return int64(u), err
}

func WriteUnsignedLong(w io.Writer, v uint64) (err error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	_, err = w.Write(b[:])
	return
}

func ReadUnsignedLong(r *Reader) (v uint64, err error) {
	b, err := r.Read(8)
	if err != nil {
		return
	}

	v = binary.BigEndian.Uint64(b)
	return
}

func WriteFloat(w io.Writer, v float32) (err error) {
	return WriteUnsignedInt(w, math.Float32bits(v))
}

func ReadFloat(r *Reader) (v float32, err error) {
	u, err := ReadUnsignedInt(r)
	return math.Float32frombits(u), err
}

func WriteDouble(w io.Writer, v float64) (err error) {
	return WriteUnsignedLong(w, math.Float64bits(v))
}

func ReadDouble(r *Reader) (v float64, err error) {
	u, err := ReadUnsignedLong(r)
	return math.Float64frombits(u), err
}

// readLength reads a u32 length prefix and checks it against limit.
func readLength(r *Reader, limit int, what string) (n int, err error) {
	u, err := ReadUnsignedInt(r)
	if err != nil {
		return
	}

	if u > uint32(limit) {
		err = fmt.Errorf("%w: %s length %d exceeds %d", ErrMalformedValue, what, u, limit)
		return
	}
	n = int(u)
	return
}

func writeLength(w io.Writer, n int, limit int, what string) error {
	if n > limit {
		return fmt.Errorf("%w: %s length %d exceeds %d", ErrMalformedValue, what, n, limit)
	}
	return WriteUnsignedInt(w, uint32(n))
}

func WriteString(w io.Writer, v string) (err error) {
	if err = writeLength(w, len(v), MaxStringLen, "string"); err != nil {
		return
	}
	_, err = io.WriteString(w, v)
	return
}

func ReadString(r *Reader) (v string, err error) {
	length, err := readLength(r, MaxStringLen, "string")
	if err != nil {
		return
	}

	buf, err := r.Read(length)
	return string(buf), err
}

func WriteByteArray(w io.Writer, v []byte) (err error) {
	if err = writeLength(w, len(v), MaxByteArrayLen, "byte array"); err != nil {
		return
	}
	_, err = w.Write(v)
	return
}

// ReadByteArray returns a copy, so the result outlives the packet buffer.
func ReadByteArray(r *Reader) (v []byte, err error) {
	length, err := readLength(r, MaxByteArrayLen, "byte array")
	if err != nil {
		return
	}

	buf, err := r.Read(length)
	if err != nil {
		return
	}
	v = make([]byte, length)
	copy(v, buf)
	return
}

func WriteUUID(w io.Writer, v uuid.UUID) (err error) {
	_, err = w.Write(v[:])
	return
}

func ReadUUID(r *Reader) (v uuid.UUID, err error) {
	b, err := r.Read(16)
	if err != nil {
		return
	}

	v = uuid.UUID(b)
	return
}

func WritePrefixedArray[T any](w io.Writer, v []T, write WriteFn[T]) (err error) {
	if err = writeLength(w, len(v), MaxSequenceLen, "sequence"); err != nil {
		return
	}

	for _, item := range v {
		err = write(w, item)
		if err != nil {
			return
		}
	}
	return
}

func ReadPrefixedArray[T any](r *Reader, read ReadFn[T]) (v []T, err error) {
	length := 0
	if length, err = readLength(r, MaxSequenceLen, "sequence"); err != nil {
		return
	}

	// every element takes at least one byte unless T is empty, so the
	// remaining buffer bounds what is worth preallocating
	v = make([]T, 0, min(length, r.Remaining()))
	for i := 0; i < length; i++ {
		var item T
		if item, err = read(r); err != nil {
			return
		}
		v = append(v, item)
	}

	return
}

// Optional[T] represents Optional field in a packet
//
// Serialized Optional[T] is prefixed with Boolean of whether the value exists.
// If so, the value T is followed.
type Optional[T any] struct {
	Exists bool
	Item   T
}

// Some wraps v as a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Exists: true, Item: v}
}

func WriteOptional[T any](w io.Writer, v Optional[T], write WriteFn[T]) (err error) {
	err = WriteBoolean(w, v.Exists)
	if err != nil {
		return
	}

	if v.Exists {
		err = write(w, v.Item)
	}
	return
}

func ReadOptional[T any](r *Reader, read ReadFn[T]) (v Optional[T], err error) {
	if v.Exists, err = ReadBoolean(r); err != nil {
		return
	}

	if v.Exists {
		v.Item, err = read(r)
	}
	return
}

// Encoder and Decoder are implemented by nested aggregates. Their fields are
// written in declared order with no tags or separators.
type Encoder interface {
	Encode(w io.Writer) error
}

type Decoder interface {
	Decode(r *Reader) error
}

func WriteStruct[T Encoder](w io.Writer, v T) error {
	return v.Encode(w)
}

func ReadStruct[T any, PT interface {
	*T
	Decoder
}](r *Reader) (v T, err error) {
	err = PT(&v).Decode(r)
	return
}
