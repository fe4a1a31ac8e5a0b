package bewire

// Encodable is implemented by types that can append their canonical wire
// representation to a Buffer.
//
// EncodeWire must be deterministic: the same logical value always produces
// the same bytes. It must only append; existing buffer content is never read
// or rewritten. Encoding cannot fail, so there is no error return.
//
// Composite types implement Encodable by encoding their fields in
// declaration order, each field delegating to its own codec.
type Encodable interface {
	EncodeWire(buf *Buffer)
}

// Decodable is implemented by types that can reconstruct themselves from a
// Buffer. The receiver should be a pointer to the value being populated.
//
// DecodeWire starts reading at *off and advances *off by exactly the number
// of bytes consumed. After a failure the cursor position is unspecified and
// callers must not rely on it. DecodeWire must be the exact inverse of the
// matching EncodeWire.
type Decodable interface {
	DecodeWire(buf *Buffer, off *int) error
}

// Codec combines both capabilities.
type Codec interface {
	Encodable
	Decodable
}
