package bewire

import "github.com/pkg/errors"

// EncodeSeq writes items as a uint64 big-endian element count followed by
// each element encoded back-to-back, with no separators.
func EncodeSeq[T any](b *Buffer, items []T, encodeElem func(*Buffer, T)) {
	EncodeUint64(b, uint64(len(items)))
	for _, it := range items {
		encodeElem(b, it)
	}
}

// DecodeSeq reads a uint64 element count and then decodes that many elements
// in order. The first element failure aborts the whole sequence; no partial
// collection is returned.
//
// The declared count is a capacity hint only. It is clamped against the
// bytes actually remaining, so a hostile count cannot force a huge
// allocation; running out of bytes before the count is satisfied surfaces as
// ErrInsufficientData from the element decoder.
func DecodeSeq[T any](b *Buffer, off *int, decodeElem func(*Buffer, *int) (T, error)) ([]T, error) {
	count, err := DecodeUint64(b, off)
	if err != nil {
		return nil, errors.Wrap(err, "sequence count")
	}
	hint := count
	if rem := uint64(b.remaining(*off)); hint > rem {
		hint = rem
	}
	out := make([]T, 0, hint)
	for i := uint64(0); i < count; i++ {
		it, elemErr := decodeElem(b, off)
		if elemErr != nil {
			return nil, errors.Wrapf(elemErr, "sequence element %d of %d", i, count)
		}
		out = append(out, it)
	}
	return out, nil
}

// EncodeSeqOf is EncodeSeq for element types that implement Encodable.
func EncodeSeqOf[T Encodable](b *Buffer, items []T) {
	EncodeSeq(b, items, func(b *Buffer, it T) {
		it.EncodeWire(b)
	})
}

// DecodeSeqOf is DecodeSeq for element types that implement Decodable via a
// pointer receiver.
func DecodeSeqOf[T any, PT interface {
	Decodable
	*T
}](b *Buffer, off *int) ([]T, error) {
	return DecodeSeq(b, off, func(b *Buffer, off *int) (T, error) {
		var v T
		err := PT(&v).DecodeWire(b, off)
		return v, err
	})
}
