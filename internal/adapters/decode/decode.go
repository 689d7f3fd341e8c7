package decode

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/mikey-austin/dumpdie/pkg/dump"
)

// Format names a document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Decoder turns a document stream into printable values, keeping the key
// order of the source.
type Decoder interface {
	Decode(r io.Reader) ([]dump.Value, error)
}

// ErrUnknownFormat is returned for a format without a decoder.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat returns the format named by name, case-insensitively. "yml"
// is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// For returns the decoder for f.
func For(f Format) (Decoder, error) {
	switch f {
	case FormatJSON:
		return JSON{}, nil
	case FormatYAML:
		return YAML{}, nil
	case FormatTOML:
		return TOML{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", string(f))
}
