package bewire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// telemetryFrame is a composite type opting into the wire format by
// delegating to its fields' codecs in declaration order.
type telemetryFrame struct {
	Device  uint32
	Label   string
	Samples []float64
}

var _ Codec = (*telemetryFrame)(nil)

func (f telemetryFrame) EncodeWire(b *Buffer) {
	EncodeUint32(b, f.Device)
	EncodeText(b, f.Label)
	EncodeSeq(b, f.Samples, EncodeFloat64)
}

func (f *telemetryFrame) DecodeWire(b *Buffer, off *int) error {
	var err error
	if f.Device, err = DecodeUint32(b, off); err != nil {
		return err
	}
	if f.Label, err = DecodeText(b, off); err != nil {
		return err
	}
	if f.Samples, err = DecodeSeq(b, off, DecodeFloat64); err != nil {
		return err
	}
	return nil
}

func TestBufferLifecycle(t *testing.T) {
	b := New()
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Bytes())

	loaded := Load([]byte{1, 2, 3})
	assert.Equal(t, 3, loaded.Len())
	assert.Equal(t, []byte{1, 2, 3}, loaded.Bytes())
}

func TestCompositeRoundTrip(t *testing.T) {
	frame := telemetryFrame{
		Device:  7,
		Label:   "engine-temp",
		Samples: []float64{20.5, 21.25, 22.0},
	}

	b := New()
	b.Encode(frame)
	// u32 + (u64 + label) + (u64 + 3*f64)
	require.Equal(t, 4+8+len(frame.Label)+8+3*8, b.Len())

	got, err := Decode[telemetryFrame](b)
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	frame := telemetryFrame{Device: 1, Label: "x", Samples: []float64{1}}

	b := New()
	b.Encode(frame)
	b.appendString("garbage after the record")

	got, err := Decode[telemetryFrame](b)
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestDecodeFromBackToBackRecords(t *testing.T) {
	first := telemetryFrame{Device: 1, Label: "a", Samples: []float64{1}}
	second := telemetryFrame{Device: 2, Label: "b", Samples: []float64{2, 3}}

	b := New()
	b.Encode(first)
	b.Encode(second)

	off := 0
	gotFirst, err := DecodeFrom[telemetryFrame](b, &off)
	require.NoError(t, err)
	gotSecond, err := DecodeFrom[telemetryFrame](b, &off)
	require.NoError(t, err)

	assert.Equal(t, first, gotFirst)
	assert.Equal(t, second, gotSecond)
	assert.Equal(t, b.Len(), off)
}

func TestDecodeTruncatedCompositeFailsFast(t *testing.T) {
	frame := telemetryFrame{Device: 9, Label: "partial", Samples: []float64{4, 5, 6}}

	b := New()
	b.Encode(frame)

	// Every proper prefix of the encoding must fail with the single error
	// kind, never a partial value or an out-of-bounds read.
	full := b.Bytes()
	for cut := 0; cut < len(full); cut++ {
		truncated := Load(full[:cut])
		_, err := Decode[telemetryFrame](truncated)
		require.ErrorIs(t, err, ErrInsufficientData, "prefix of %d bytes", cut)
	}
}

func TestDecodeEmptyBuffer(t *testing.T) {
	_, err := Decode[telemetryFrame](New())
	require.ErrorIs(t, err, ErrInsufficientData)
}
