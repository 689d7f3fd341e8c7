package fsys

import (
	"io"
	"os"

	"github.com/mikey-austin/dumpdie/internal/core"
	"github.com/mikey-austin/dumpdie/pkg/dump"
)

// Opener opens files by path and stdin for "-" or an empty name.
type Opener struct {
	Stdin io.Reader
}

// Open returns a reader for name. Closing stdin is a no-op.
func (o Opener) Open(name string) (io.ReadCloser, error) {
	if name == "" || name == core.StdinName {
		stdin := o.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	}
	return os.Open(name)
}

// Dirs probes directories on the local filesystem.
type Dirs struct{}

// IsEmpty reports whether dir has no entries.
func (Dirs) IsEmpty(dir string) (bool, error) {
	return dump.IsDirEmpty(dir)
}
