package decode

import "github.com/mikey-austin/dumpdie/internal/ports"

// Registry resolves decoders by format name.
type Registry struct{}

// ForFormat returns the decoder for format.
func (Registry) ForFormat(format string) (ports.Decoder, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return For(f)
}
