package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/vvka-141/mdconv/internal/format"
)

// JSONFromXML converts the tree of x into a JSONRecord described by f.
func JSONFromXML(f *format.Descriptor, x *XMLRecord) (*JSONRecord, error) {
	return NewJSON(f, x.Tree())
}

// XMLFromJSON converts the value of j into an XMLRecord described by f.
// The value must be an object with a single key naming the root element.
// Numbers, booleans and nulls become element text.
func XMLFromJSON(f *format.Descriptor, j *JSONRecord) (*XMLRecord, error) {
	obj, ok := j.Value().(map[string]any)
	if !ok {
		return nil, &ParseError{
			Format:  j.formatName(),
			Kind:    "json",
			Message: fmt.Sprintf("expected an object, got %T", j.Value()),
			Hint:    `Wrap the document as {"root": {...}}.`,
			Err:     errors.New("not an object"),
		}
	}
	return XMLFromTree(f, textValues(obj).(map[string]any))
}

// textValues copies v replacing scalars with their XML text form.
func textValues(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = textValues(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = textValues(child)
		}
		return out
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return val
	}
}
