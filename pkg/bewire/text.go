package bewire

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// EncodeText writes the UTF-8 byte length of s as a uint64 big-endian
// integer followed by the raw bytes.
func EncodeText(b *Buffer, s string) {
	EncodeUint64(b, uint64(len(s)))
	b.appendString(s)
}

// DecodeText reads a uint64 byte length and then exactly that many bytes.
//
// Invalid UTF-8 in a complete payload is repaired with U+FFFD rather than
// rejected; the only text decode failure is truncation. A declared length
// exceeding the remaining bytes fails with ErrInsufficientData, it never
// truncates silently or reads out of range.
func DecodeText(b *Buffer, off *int) (string, error) {
	p, err := decodeLengthPrefixed(b, off, "text")
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(p), string(utf8.RuneError)), nil
}

// EncodeBytes writes a raw byte blob with the same uint64 length framing as
// text. Blobs round-trip verbatim; use this instead of the text codec for
// content that is not UTF-8.
func EncodeBytes(b *Buffer, p []byte) {
	EncodeUint64(b, uint64(len(p)))
	b.append(p)
}

// DecodeBytes reads a uint64 length and returns a copy of that many bytes.
func DecodeBytes(b *Buffer, off *int) ([]byte, error) {
	p, err := decodeLengthPrefixed(b, off, "bytes")
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

// decodeLengthPrefixed reads the shared uint64 length prefix and takes that
// many bytes. The length is validated against the remaining byte count while
// still a uint64, before any conversion that could overflow int.
func decodeLengthPrefixed(b *Buffer, off *int, what string) ([]byte, error) {
	length, err := DecodeUint64(b, off)
	if err != nil {
		return nil, errors.Wrapf(err, "%s length", what)
	}
	if length > uint64(b.remaining(*off)) {
		return nil, errors.Wrapf(ErrInsufficientData,
			"%s of %d bytes declared at offset %d, %d remain", what, length, *off, b.remaining(*off))
	}
	return b.take(off, int(length))
}
