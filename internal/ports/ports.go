package ports

import (
	"io"

	"github.com/mikey-austin/dumpdie/pkg/dump"
)

// SourceOpener opens named input documents. "-" names stdin.
type SourceOpener interface {
	Open(name string) (io.ReadCloser, error)
}

// Decoder turns a document stream into printable values.
type Decoder interface {
	Decode(r io.Reader) ([]dump.Value, error)
}

// DecoderSource returns the decoder for a format name.
type DecoderSource interface {
	ForFormat(format string) (Decoder, error)
}

// Dumper writes dumps and performs the terminal action.
type Dumper interface {
	DumpAt(loc dump.Location, args ...any) error
	Terminate(code int)
}

// DirProbe reports whether a directory has no entries.
type DirProbe interface {
	IsEmpty(dir string) (bool, error)
}
