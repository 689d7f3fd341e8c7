package core

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/mikey-austin/dumpdie/internal/ports"
	"github.com/mikey-austin/dumpdie/pkg/dump"
)

type stubOpener struct {
	files  map[string]string
	opened []string
}

func (s *stubOpener) Open(name string) (io.ReadCloser, error) {
	s.opened = append(s.opened, name)
	data, ok := s.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

// lineDecoder turns each line into a string value and fails on "!".
type lineDecoder struct{}

func (lineDecoder) Decode(r io.Reader) ([]dump.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var out []dump.Value
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "!" {
			return nil, errors.New("bad document")
		}
		out = append(out, dump.Str(line))
	}
	return out, nil
}

type stubDecoders struct {
	requested []string
}

func (s *stubDecoders) ForFormat(format string) (ports.Decoder, error) {
	s.requested = append(s.requested, format)
	switch format {
	case "json", "yaml", "toml":
		return lineDecoder{}, nil
	}
	return nil, errors.New("unknown format")
}

type dumpCall struct {
	loc  dump.Location
	args []any
}

type stubDumper struct {
	calls []dumpCall
	codes []int
	err   error
}

func (s *stubDumper) DumpAt(loc dump.Location, args ...any) error {
	s.calls = append(s.calls, dumpCall{loc: loc, args: args})
	return s.err
}

func (s *stubDumper) Terminate(code int) {
	s.codes = append(s.codes, code)
}

type stubDirs struct {
	entries map[string]int
}

func (s stubDirs) IsEmpty(dir string) (bool, error) {
	n, ok := s.entries[dir]
	if !ok {
		return false, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrNotExist}
	}
	return n == 0, nil
}

func newService(files map[string]string) (Service, *stubOpener, *stubDecoders, *stubDumper) {
	opener := &stubOpener{files: files}
	decoders := &stubDecoders{}
	dumper := &stubDumper{}
	return Service{
		Opener:   opener,
		Decoders: decoders,
		Dumper:   dumper,
		Dirs:     stubDirs{entries: map[string]int{"/empty": 0, "/full": 2}},
		Config: Config{
			Options: dump.Options{Limit: 3, Mode: dump.ModeStructure},
		},
	}, opener, decoders, dumper
}

func TestDumpSourcesDumpsEachSourceThenDies(t *testing.T) {
	service, _, decoders, dumper := newService(map[string]string{
		"a.json": "one\ntwo",
		"b.toml": "three",
	})

	result, err := service.DumpSources(context.Background(), DumpRequest{
		Sources: []string{"a.json", "b.toml"},
		Die:     true,
	})
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if result.Documents != 3 || len(result.Sources) != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if strings.Join(decoders.requested, ",") != "json,toml" {
		t.Fatalf("unexpected formats: %v", decoders.requested)
	}
	if len(dumper.calls) != 2 {
		t.Fatalf("expected 2 dumps, got %d", len(dumper.calls))
	}
	first := dumper.calls[0]
	if first.loc.File != "a.json" {
		t.Fatalf("expected a.json location, got %s", first.loc)
	}
	if len(first.args) != 3 {
		t.Fatalf("expected 2 values and options, got %d args", len(first.args))
	}
	if v, ok := first.args[0].(dump.Value); !ok || v.Text() != "one" {
		t.Fatalf("unexpected first value: %#v", first.args[0])
	}
	if opts, ok := first.args[2].(dump.Options); !ok || opts.Limit != 3 {
		t.Fatalf("expected configured options last, got %#v", first.args[2])
	}
	if len(dumper.codes) != 1 || dumper.codes[0] != ExitOK {
		t.Fatalf("expected a single terminate with 0, got %v", dumper.codes)
	}
}

func TestDumpSourcesWithoutDie(t *testing.T) {
	service, opener, decoders, dumper := newService(map[string]string{"-": "x"})

	result, err := service.DumpSources(context.Background(), DumpRequest{Format: "yaml"})
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if len(opener.opened) != 1 || opener.opened[0] != StdinName {
		t.Fatalf("expected stdin, got %v", opener.opened)
	}
	if decoders.requested[0] != "yaml" {
		t.Fatalf("expected explicit format")
	}
	if result.Sources[0] != "stdin" || dumper.calls[0].loc.File != "stdin" {
		t.Fatalf("expected stdin source name")
	}
	if len(dumper.codes) != 0 {
		t.Fatalf("did not expect terminate")
	}
}

func TestDumpSourcesErrors(t *testing.T) {
	tests := []struct {
		name    string
		sources []string
		format  string
		code    int
	}{
		{"missing file", []string{"a.json", "missing.json"}, "", ExitNotFound},
		{"decode failure", []string{"a.json", "bad.json"}, "", ExitDecode},
		{"unknown format", []string{"a.json"}, "xml", ExitUsage},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service, _, _, dumper := newService(map[string]string{
				"a.json":   "ok",
				"bad.json": "!",
			})
			_, err := service.DumpSources(context.Background(), DumpRequest{
				Sources: test.sources,
				Format:  test.format,
				Die:     true,
			})
			if ExitCode(err) != test.code {
				t.Fatalf("expected code %d, got %d (%v)", test.code, ExitCode(err), err)
			}
			if len(dumper.calls) != 0 || len(dumper.codes) != 0 {
				t.Fatalf("expected nothing dumped")
			}
		})
	}
}

func TestDumpSourcesWriteError(t *testing.T) {
	service, _, _, dumper := newService(map[string]string{"a.json": "ok"})
	dumper.err = errors.New("closed")
	_, err := service.DumpSources(context.Background(), DumpRequest{Sources: []string{"a.json"}, Die: true})
	if ExitCode(err) != ExitRuntime {
		t.Fatalf("expected runtime error, got %v", err)
	}
	if len(dumper.codes) != 0 {
		t.Fatalf("did not expect terminate after failed write")
	}
}

func TestDumpSourcesCanceled(t *testing.T) {
	service, _, _, _ := newService(map[string]string{"a.json": "ok"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := service.DumpSources(ctx, DumpRequest{Sources: []string{"a.json"}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestEmptyDir(t *testing.T) {
	service, _, _, _ := newService(nil)
	ctx := context.Background()

	result, err := service.EmptyDir(ctx, "/empty")
	if err != nil || !result.Empty {
		t.Fatalf("expected empty, got %+v %v", result, err)
	}
	result, err = service.EmptyDir(ctx, "/full")
	if err != nil || result.Empty {
		t.Fatalf("expected not empty, got %+v %v", result, err)
	}
	if _, err := service.EmptyDir(ctx, "/missing"); ExitCode(err) != ExitNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := service.EmptyDir(ctx, ""); ExitCode(err) != ExitUsage {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestResolvedConfig(t *testing.T) {
	service, _, _, _ := newService(nil)
	service.Config.ConfigPath = "/etc/dd.toml"
	cfg := service.ResolvedConfig()
	if cfg.Limit != 3 || cfg.Dumper != "structure-printer" || cfg.Format != "auto" || cfg.ConfigPath != "/etc/dd.toml" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !IsNotEmpty(ErrNotEmpty) || IsNotEmpty(errors.New("x")) {
		t.Fatalf("unexpected IsNotEmpty")
	}
}
