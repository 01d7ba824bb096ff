package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vvka-141/mdconv/internal/format"
	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// JSONRecord is a record whose content is the canonical serialization of a
// JSON value: four space indentation, no HTML escaping, no trailing newline.
type JSONRecord struct {
	Record
	value any
}

// NewJSON serializes value and returns a JSONRecord holding it.
func NewJSON(f *format.Descriptor, value any) (*JSONRecord, error) {
	content, err := canonicalJSON(value)
	if err != nil {
		name := ""
		if f != nil {
			name = f.Name()
		}
		return nil, fmt.Errorf("serialize json value for %q: %w", name, err)
	}
	return &JSONRecord{Record: Record{format: f, content: content}, value: value}, nil
}

// JSONFromRecord decodes r's content and returns a JSONRecord. Numbers are
// decoded as json.Number so re-serialization keeps their text.
func JSONFromRecord(r *Record) (*JSONRecord, error) {
	dec := json.NewDecoder(strings.NewReader(r.Content()))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("content is empty")
		}
		return nil, jsonParseError(r.formatName(), err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, jsonParseError(r.formatName(), errors.New("unexpected data after top-level value"))
	}

	return NewJSON(r.Format(), value)
}

func canonicalJSON(value any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", mdconv.JSONIndent)
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Value returns the JSON value. Callers must not modify it.
func (r *JSONRecord) Value() any { return r.value }

// Query evaluates a gjson path against the content.
func (r *JSONRecord) Query(path string) gjson.Result {
	return gjson.Get(r.Content(), path)
}

func (r *JSONRecord) String() string {
	return r.Record.String() + fmt.Sprintf(" JSON %v", r.value)
}
