package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mikey-austin/dumpdie/internal/ports"
	"github.com/mikey-austin/dumpdie/pkg/dump"
)

// Service implements dd operations.
type Service struct {
	Opener   ports.SourceOpener
	Decoders ports.DecoderSource
	Dumper   ports.Dumper
	Dirs     ports.DirProbe
	Logger   *zap.Logger
	Config   Config
}

// DumpRequest selects the sources to dump and how.
type DumpRequest struct {
	Sources []string
	Format  string
	Die     bool
}

type decodedSource struct {
	name   string
	values []dump.Value
}

// DumpSources decodes every source and dumps its documents under a header
// naming the source. Nothing is written unless all sources decode. When
// req.Die is set the terminal action runs after the last dump.
func (s Service) DumpSources(ctx context.Context, req DumpRequest) (DumpResult, error) {
	sources := req.Sources
	if len(sources) == 0 {
		sources = []string{StdinName}
	}

	decoded := make([]decodedSource, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return DumpResult{}, err
		}
		values, err := s.decodeSource(src, req.Format)
		if err != nil {
			return DumpResult{}, err
		}
		decoded = append(decoded, decodedSource{name: SourceName(src), values: values})
	}

	result := DumpResult{Sources: make([]string, 0, len(decoded))}
	for _, src := range decoded {
		args := make([]any, 0, len(src.values)+1)
		for _, v := range src.values {
			args = append(args, v)
		}
		args = append(args, s.Config.Options)
		if err := s.Dumper.DumpAt(dump.Location{File: src.name}, args...); err != nil {
			return DumpResult{}, WrapError(ExitRuntime, "write dump", err)
		}
		result.Sources = append(result.Sources, src.name)
		result.Documents += len(src.values)
	}

	s.logger().Debug("dumped sources",
		zap.Strings("sources", result.Sources),
		zap.Int("documents", result.Documents),
		zap.Bool("die", req.Die),
	)
	if req.Die {
		s.Dumper.Terminate(ExitOK)
	}
	return result, nil
}

func (s Service) decodeSource(src string, format string) ([]dump.Value, error) {
	resolved := ResolveFormat(src, format, s.Config.Format)
	dec, err := s.Decoders.ForFormat(resolved)
	if err != nil {
		return nil, WrapError(ExitUsage, "unsupported format", err)
	}

	r, err := s.Opener.Open(src)
	if err != nil {
		return nil, ErrorForPath(src, err)
	}
	defer r.Close()

	values, err := dec.Decode(r)
	if err != nil {
		return nil, WrapError(ExitDecode, fmt.Sprintf("decode %s", SourceName(src)), err)
	}
	s.logger().Debug("decoded source",
		zap.String("source", SourceName(src)),
		zap.String("format", resolved),
		zap.Int("documents", len(values)),
	)
	return values, nil
}

// EmptyDir reports whether dir has no entries.
func (s Service) EmptyDir(ctx context.Context, dir string) (EmptyResult, error) {
	if dir == "" {
		return EmptyResult{}, &CLIError{Code: ExitUsage, Msg: "directory required"}
	}
	if err := ctx.Err(); err != nil {
		return EmptyResult{}, err
	}
	empty, err := s.Dirs.IsEmpty(dir)
	if err != nil {
		return EmptyResult{}, ErrorForPath(dir, err)
	}
	return EmptyResult{Path: dir, Empty: empty}, nil
}

// ResolvedConfig returns the effective configuration.
func (s Service) ResolvedConfig() ConfigResult {
	format := s.Config.Format
	if format == "" {
		format = "auto"
	}
	return ConfigResult{
		ConfigPath: s.Config.ConfigPath,
		Limit:      s.Config.Options.Limit,
		Dumper:     s.Config.Options.Mode.String(),
		Format:     format,
		Color:      s.Config.Color,
	}
}

// ErrNotEmpty is returned by dd empty for a directory with entries.
var ErrNotEmpty = &CLIError{Code: ExitNotEmpty}

// IsNotEmpty reports whether err is ErrNotEmpty.
func IsNotEmpty(err error) bool {
	return errors.Is(err, ErrNotEmpty)
}

func (s Service) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
