package transact

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression over the JSON document of s, as
// persisted by EncodeStore, e.g.
//
//	$.transactions[?(@.type == "expense")].amount
//
// The result is a generic JSON value: map[string]any, []any, string, float64,
// bool or nil.
func Query(s *Store, path string) (any, error) {
	var buf bytes.Buffer
	if err := EncodeStore(&buf, s); err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return nil, fmt.Errorf("cannot read the store document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
