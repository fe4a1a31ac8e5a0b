package bewire

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Storage is treated as an opaque, whole-buffer collaborator: read all bytes
// in, flush all bytes out. Filesystems are abstracted behind afero.Fs so
// tests can run against the in-memory implementation.

// LoadFile reads the whole file at path into a decode buffer.
func LoadFile(fs afero.Fs, path string) (*Buffer, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "bewire: read %s", path)
	}
	return Load(data), nil
}

// WriteFile flushes the buffer's bytes to path.
func (b *Buffer) WriteFile(fs afero.Fs, path string) error {
	if err := afero.WriteFile(fs, path, b.data, 0o644); err != nil {
		return errors.Wrapf(err, "bewire: write %s", path)
	}
	return nil
}
