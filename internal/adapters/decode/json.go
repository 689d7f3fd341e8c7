package decode

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/mikey-austin/dumpdie/pkg/dump"
)

// JSON decodes a stream of JSON documents. Objects become composites with
// their members in document order, arrays become sequences and numbers
// keep their literal text.
type JSON struct{}

// Decode reads every document in r.
func (JSON) Decode(r io.Reader) ([]dump.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var out []dump.Value
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "decode json document %d", len(out)+1)
		}
		v, err := jsonValue(dec, tok)
		if err != nil {
			return nil, errors.Wrapf(err, "decode json document %d", len(out)+1)
		}
		out = append(out, v)
	}
}

func jsonValue(dec *json.Decoder, tok json.Token) (dump.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return jsonArray(dec)
		case '{':
			return jsonObject(dec)
		}
		return dump.Value{}, errors.Newf("unexpected delimiter %q", t.String())
	case bool:
		return dump.Bool(t), nil
	case nil:
		return dump.Null(), nil
	default:
		return dump.ScalarOf(t), nil
	}
}

func jsonArray(dec *json.Decoder) (dump.Value, error) {
	var items []dump.Value
	for dec.More() {
		v, err := jsonNext(dec)
		if err != nil {
			return dump.Value{}, err
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil {
		return dump.Value{}, err
	}
	return dump.Seq(items...), nil
}

func jsonObject(dec *json.Decoder) (dump.Value, error) {
	var fields []dump.Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return dump.Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return dump.Value{}, errors.Newf("unexpected object key %v", tok)
		}
		v, err := jsonNext(dec)
		if err != nil {
			return dump.Value{}, errors.Wrapf(err, "member %q", key)
		}
		fields = append(fields, dump.Entry{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return dump.Value{}, err
	}
	return dump.Object("", fields...), nil
}

func jsonNext(dec *json.Decoder) (dump.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return dump.Value{}, err
	}
	return jsonValue(dec, tok)
}
