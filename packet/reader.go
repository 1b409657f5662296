package packet

// Reader is a bounded cursor over one packet buffer. Reads past the end fail
// with ErrTruncatedInput and leave the cursor untouched.
type Reader struct {
	buf []byte
	off int
}

func NewReader(buf []byte) Reader {
	return Reader{
		buf: buf,
		off: 0,
	}
}

func (r Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Offset reports how many bytes have been consumed.
func (r Reader) Offset() int {
	return r.off
}

func (r *Reader) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, ErrTruncatedInput
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// Read returns the next n bytes. The slice aliases the underlying buffer.
func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, ErrTruncatedInput
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}
