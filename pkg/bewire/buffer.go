package bewire

import "github.com/pkg/errors"

// Buffer is the byte container every codec in this package works against.
// A fresh buffer acts as an encode sink; a buffer loaded from external bytes
// acts as a decode source.
//
// Encoding is append-only: bytes land at the end and are never rewritten.
// Decoding never mutates the buffer; each decode owns its cursor, so
// concurrent decodes of an unmutated buffer are safe. A buffer must not be
// written to from more than one goroutine.
type Buffer struct {
	data []byte
}

// New returns an empty buffer to encode into.
func New() *Buffer {
	return &Buffer{}
}

// Load wraps externally supplied bytes as a decode source. The content is
// not validated here; malformed input only surfaces during decoding.
func Load(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Encode appends v's canonical wire representation to the end of the buffer.
func (b *Buffer) Encode(v Encodable) {
	v.EncodeWire(b)
}

// Bytes returns the buffer's current content for handoff to storage or
// transport. The slice aliases the buffer's backing array.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Decode reconstructs a value of type T from the start of the buffer.
// Trailing bytes after the value are permitted and ignored, which lets a
// buffer carry several records back-to-back; use DecodeFrom to walk them.
func Decode[T any, PT interface {
	Decodable
	*T
}](b *Buffer) (T, error) {
	var off int
	return DecodeFrom[T, PT](b, &off)
}

// DecodeFrom reconstructs a value of type T starting at *off, advancing the
// cursor past the bytes consumed. The cursor position is unspecified after a
// failure.
func DecodeFrom[T any, PT interface {
	Decodable
	*T
}](b *Buffer, off *int) (T, error) {
	var v T
	if err := PT(&v).DecodeWire(b, off); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func (b *Buffer) append(p []byte) {
	b.data = append(b.data, p...)
}

func (b *Buffer) appendByte(c byte) {
	b.data = append(b.data, c)
}

func (b *Buffer) appendString(s string) {
	b.data = append(b.data, s...)
}

// remaining reports how many bytes are left between off and the buffer end.
func (b *Buffer) remaining(off int) int {
	return len(b.data) - off
}

// take returns n bytes starting at *off and advances the cursor, or fails
// with ErrInsufficientData without reading out of bounds.
func (b *Buffer) take(off *int, n int) ([]byte, error) {
	if n > b.remaining(*off) {
		return nil, errors.Wrapf(ErrInsufficientData,
			"need %d bytes at offset %d, %d remain", n, *off, b.remaining(*off))
	}
	p := b.data[*off : *off+n]
	*off += n
	return p, nil
}
