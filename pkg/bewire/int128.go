package bewire

// Go has no native 128-bit integers, so the 128-bit widths are carried as
// 16-byte big-endian value types. They travel on the wire as their raw
// bytes, consistent with the other fixed-width numerics.

// Uint128 is a 128-bit unsigned integer, big-endian.
type Uint128 struct {
	Bytes [16]byte
}

// Int128 is a 128-bit signed integer, big-endian two's complement.
type Int128 struct {
	Bytes [16]byte
}

// Uint128FromUint64 widens v into the low 64 bits of a Uint128.
func Uint128FromUint64(v uint64) Uint128 {
	var u Uint128
	for i := 15; i >= 8; i-- {
		u.Bytes[i] = byte(v)
		v >>= 8
	}
	return u
}

// Int128FromInt64 sign-extends v into an Int128.
func Int128FromInt64(v int64) Int128 {
	var i128 Int128
	fill := byte(0)
	if v < 0 {
		fill = 0xFF
	}
	for i := 0; i < 8; i++ {
		i128.Bytes[i] = fill
	}
	u := uint64(v)
	for i := 15; i >= 8; i-- {
		i128.Bytes[i] = byte(u)
		u >>= 8
	}
	return i128
}

func EncodeUint128(b *Buffer, v Uint128) {
	b.append(v.Bytes[:])
}

func DecodeUint128(b *Buffer, off *int) (Uint128, error) {
	var v Uint128
	p, err := b.take(off, 16)
	if err != nil {
		return v, err
	}
	copy(v.Bytes[:], p)
	return v, nil
}

func EncodeInt128(b *Buffer, v Int128) {
	b.append(v.Bytes[:])
}

func DecodeInt128(b *Buffer, off *int) (Int128, error) {
	var v Int128
	p, err := b.take(off, 16)
	if err != nil {
		return v, err
	}
	copy(v.Bytes[:], p)
	return v, nil
}
