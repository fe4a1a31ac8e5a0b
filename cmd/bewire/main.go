package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/bewire/bewire/pkg/bewire"
)

func main() {
	var (
		input = pflag.String("input", "", "Path to a file of bewire-encoded records.")
		as    = pflag.String("as", "",
			"Decode back-to-back records as the given primitive. "+
				"Supported: u8, u16, u32, u64, i8, i16, i32, i64, f32, f64, text.")
		dump = pflag.Bool("hex", false, "Print an offset-annotated hex dump instead of decoding.")
	)
	pflag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()
	zap.ReplaceGlobals(logger)

	if *input == "" {
		zap.S().Fatal("no input file given, use --input")
	}

	buf, err := bewire.LoadFile(afero.NewOsFs(), *input)
	if err != nil {
		zap.S().Fatalf("failed to load input: %v", err)
	}
	zap.S().Debugf("loaded %d bytes from %s", buf.Len(), *input)

	switch {
	case *dump:
		hexDump(buf.Bytes())
	case *as != "":
		if err := dumpRecords(buf, *as); err != nil {
			zap.S().Fatalf("failed to decode records: %v", err)
		}
	default:
		zap.S().Fatal("nothing to do, use --hex or --as")
	}
}

// dumpRecords walks the buffer decoding one record after another until the
// bytes are exhausted, printing each record with its starting offset.
func dumpRecords(buf *bewire.Buffer, kind string) error {
	off := 0
	for off < buf.Len() {
		start := off
		val, err := decodeRecord(buf, &off, kind)
		if err != nil {
			return errors.Wrapf(err, "record at offset %d", start)
		}
		fmt.Printf("%08x  %v\n", start, val)
	}
	return nil
}

func decodeRecord(buf *bewire.Buffer, off *int, kind string) (any, error) {
	switch kind {
	case "u8":
		v, err := bewire.DecodeUint8(buf, off)
		return v, err
	case "u16":
		v, err := bewire.DecodeUint16(buf, off)
		return v, err
	case "u32":
		v, err := bewire.DecodeUint32(buf, off)
		return v, err
	case "u64":
		v, err := bewire.DecodeUint64(buf, off)
		return v, err
	case "i8":
		v, err := bewire.DecodeInt8(buf, off)
		return v, err
	case "i16":
		v, err := bewire.DecodeInt16(buf, off)
		return v, err
	case "i32":
		v, err := bewire.DecodeInt32(buf, off)
		return v, err
	case "i64":
		v, err := bewire.DecodeInt64(buf, off)
		return v, err
	case "f32":
		v, err := bewire.DecodeFloat32(buf, off)
		return v, err
	case "f64":
		v, err := bewire.DecodeFloat64(buf, off)
		return v, err
	case "text":
		v, err := bewire.DecodeText(buf, off)
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%q", v), nil
	default:
		return nil, errors.Errorf("unsupported record type %q", kind)
	}
}

func hexDump(data []byte) {
	for o := 0; o < len(data); o += 16 {
		end := min(o+16, len(data))
		fmt.Printf("%08x ", o)
		for i := o; i < end; i++ {
			fmt.Printf(" %02x", data[i])
		}
		fmt.Println()
	}
}
