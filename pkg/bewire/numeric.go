package bewire

import (
	"encoding/binary"
	"math"
)

// Fixed-width numeric codecs. Every value is its big-endian byte
// representation, exactly width/8 bytes, with no padding and no tag.
// All bit patterns are valid for these types, so numeric decoding only
// fails on truncation.
//
// The pointer-sized int and uint occupy 8 wire bytes on every platform so
// the format stays deterministic across architectures.

// putUint appends the low `width` bytes of v in big-endian order. It is the
// single write path all fixed-width integer encoders funnel through.
func putUint(b *Buffer, v uint64, width int) {
	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], v)
	b.append(scratch[8-width:])
}

// getUint reads `width` big-endian bytes at *off into a uint64.
func getUint(b *Buffer, off *int, width int) (uint64, error) {
	p, err := b.take(off, width)
	if err != nil {
		return 0, err
	}
	var v uint64
	for _, c := range p {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

func EncodeUint8(b *Buffer, v uint8) {
	b.appendByte(v)
}

func DecodeUint8(b *Buffer, off *int) (uint8, error) {
	p, err := b.take(off, 1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

func EncodeUint16(b *Buffer, v uint16) {
	putUint(b, uint64(v), 2)
}

func DecodeUint16(b *Buffer, off *int) (uint16, error) {
	v, err := getUint(b, off, 2)
	return uint16(v), err
}

func EncodeUint32(b *Buffer, v uint32) {
	putUint(b, uint64(v), 4)
}

func DecodeUint32(b *Buffer, off *int) (uint32, error) {
	v, err := getUint(b, off, 4)
	return uint32(v), err
}

func EncodeUint64(b *Buffer, v uint64) {
	putUint(b, v, 8)
}

func DecodeUint64(b *Buffer, off *int) (uint64, error) {
	return getUint(b, off, 8)
}

// EncodeUint writes the pointer-sized uint as 8 wire bytes.
func EncodeUint(b *Buffer, v uint) {
	putUint(b, uint64(v), 8)
}

func DecodeUint(b *Buffer, off *int) (uint, error) {
	v, err := getUint(b, off, 8)
	return uint(v), err
}

func EncodeInt8(b *Buffer, v int8) {
	b.appendByte(byte(v))
}

func DecodeInt8(b *Buffer, off *int) (int8, error) {
	p, err := b.take(off, 1)
	if err != nil {
		return 0, err
	}
	return int8(p[0]), nil
}

func EncodeInt16(b *Buffer, v int16) {
	putUint(b, uint64(uint16(v)), 2)
}

func DecodeInt16(b *Buffer, off *int) (int16, error) {
	v, err := getUint(b, off, 2)
	return int16(uint16(v)), err
}

func EncodeInt32(b *Buffer, v int32) {
	putUint(b, uint64(uint32(v)), 4)
}

func DecodeInt32(b *Buffer, off *int) (int32, error) {
	v, err := getUint(b, off, 4)
	return int32(uint32(v)), err
}

func EncodeInt64(b *Buffer, v int64) {
	putUint(b, uint64(v), 8)
}

func DecodeInt64(b *Buffer, off *int) (int64, error) {
	v, err := getUint(b, off, 8)
	return int64(v), err
}

// EncodeInt writes the pointer-sized int as 8 wire bytes.
func EncodeInt(b *Buffer, v int) {
	putUint(b, uint64(int64(v)), 8)
}

func DecodeInt(b *Buffer, off *int) (int, error) {
	v, err := getUint(b, off, 8)
	return int(int64(v)), err
}

// EncodeFloat32 writes the IEEE-754 bit pattern of v, big-endian.
func EncodeFloat32(b *Buffer, v float32) {
	putUint(b, uint64(math.Float32bits(v)), 4)
}

func DecodeFloat32(b *Buffer, off *int) (float32, error) {
	v, err := getUint(b, off, 4)
	return math.Float32frombits(uint32(v)), err
}

// EncodeFloat64 writes the IEEE-754 bit pattern of v, big-endian.
func EncodeFloat64(b *Buffer, v float64) {
	putUint(b, math.Float64bits(v), 8)
}

func DecodeFloat64(b *Buffer, off *int) (float64, error) {
	v, err := getUint(b, off, 8)
	return math.Float64frombits(v), err
}
