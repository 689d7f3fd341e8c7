package decode

import (
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"

	"github.com/mikey-austin/dumpdie/pkg/dump"
)

// YAML decodes a multi-document YAML stream. Mappings become mappings in
// document order and sequences become sequences.
type YAML struct{}

// Decode reads every document in r.
func (YAML) Decode(r io.Reader) ([]dump.Value, error) {
	dec := yaml.NewDecoder(r, yaml.UseOrderedMap())

	var out []dump.Value
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "decode yaml document %d", len(out)+1)
		}
		out = append(out, yamlValue(doc))
	}
}

func yamlValue(v any) dump.Value {
	switch t := v.(type) {
	case nil:
		return dump.Null()
	case bool:
		return dump.Bool(t)
	case yaml.MapSlice:
		entries := make([]dump.Entry, 0, len(t))
		for _, item := range t {
			entries = append(entries, dump.Entry{Key: yamlKey(item.Key), Value: yamlValue(item.Value)})
		}
		return dump.Map(entries...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]dump.Entry, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, dump.Entry{Key: k, Value: yamlValue(t[k])})
		}
		return dump.Map(entries...)
	case []any:
		items := make([]dump.Value, 0, len(t))
		for _, item := range t {
			items = append(items, yamlValue(item))
		}
		return dump.Seq(items...)
	default:
		return dump.ScalarOf(t)
	}
}

// yamlKey keeps scalar keys and flattens complex ones to text so they stay
// usable as map keys.
func yamlKey(k any) any {
	if k == nil {
		return ""
	}
	if reflect.TypeOf(k).Comparable() {
		return k
	}
	return fmt.Sprint(k)
}
