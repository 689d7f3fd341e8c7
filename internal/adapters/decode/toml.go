package decode

import (
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/mikey-austin/dumpdie/pkg/dump"
)

const pathSep = "\x1f"

// TOML decodes a single TOML document. Tables become mappings with keys in
// document order; arrays of tables become sequences.
type TOML struct{}

// Decode reads the document in r.
func (TOML) Decode(r io.Reader) ([]dump.Value, error) {
	var doc map[string]any
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "decode toml")
	}
	order := keyOrder(md.Keys())
	return []dump.Value{tomlValue(doc, "", order)}, nil
}

// keyOrder maps each table path to its child key names in the order they
// first appear in the document.
func keyOrder(keys []toml.Key) map[string][]string {
	order := map[string][]string{}
	seen := map[string]struct{}{}
	for _, key := range keys {
		if len(key) == 0 {
			continue
		}
		parent := strings.Join(key[:len(key)-1], pathSep)
		full := strings.Join(key, pathSep)
		if _, ok := seen[full]; ok {
			continue
		}
		seen[full] = struct{}{}
		order[parent] = append(order[parent], key[len(key)-1])
	}
	return order
}

func tomlValue(v any, path string, order map[string][]string) dump.Value {
	switch t := v.(type) {
	case map[string]any:
		return tomlTable(t, path, order)
	case []map[string]any:
		items := make([]dump.Value, 0, len(t))
		for _, table := range t {
			items = append(items, tomlTable(table, path, order))
		}
		return dump.Seq(items...)
	case []any:
		items := make([]dump.Value, 0, len(t))
		for _, item := range t {
			items = append(items, tomlValue(item, path, order))
		}
		return dump.Seq(items...)
	case bool:
		return dump.Bool(t)
	default:
		return dump.ScalarOf(t)
	}
}

func tomlTable(table map[string]any, path string, order map[string][]string) dump.Value {
	names := make([]string, 0, len(table))
	listed := map[string]struct{}{}
	for _, name := range order[path] {
		if _, ok := table[name]; !ok {
			continue
		}
		if _, dup := listed[name]; dup {
			continue
		}
		listed[name] = struct{}{}
		names = append(names, name)
	}
	var rest []string
	for name := range table {
		if _, ok := listed[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	entries := make([]dump.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, dump.Entry{Key: name, Value: tomlValue(table[name], childPath(path, name), order)})
	}
	return dump.Map(entries...)
}

func childPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + pathSep + name
}
