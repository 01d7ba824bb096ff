package record

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mdconv/internal/format"
	"github.com/vvka-141/mdconv/pkg/mdconv"
)

func jsonFormat(t *testing.T) *format.Descriptor {
	t.Helper()
	f, err := format.New("datacite", "4.1", format.WithType(format.TypeJSON))
	require.NoError(t, err)
	return f
}

func TestNewJSON_CanonicalContent(t *testing.T) {
	r, err := NewJSON(jsonFormat(t), map[string]any{
		"title": "Über <data> & more",
		"tags":  []any{"a"},
	})
	require.NoError(t, err)

	want := "{\n" +
		"    \"tags\": [\n" +
		"        \"a\"\n" +
		"    ],\n" +
		"    \"title\": \"Über <data> & more\"\n" +
		"}"
	assert.Equal(t, want, r.Content())
}

func TestNewJSON_Scalar(t *testing.T) {
	r, err := NewJSON(jsonFormat(t), "text")
	require.NoError(t, err)
	assert.Equal(t, `"text"`, r.Content())
	assert.Equal(t, "text", r.Value())
}

func TestNewJSON_Unserializable(t *testing.T) {
	_, err := NewJSON(jsonFormat(t), map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
}

func TestJSONFromRecord_RoundTrip(t *testing.T) {
	value := map[string]any{
		"name":    "survey",
		"count":   json.Number("3"),
		"ratio":   json.Number("0.25"),
		"nested":  map[string]any{"ok": true, "none": nil},
		"authors": []any{"Ana", "Bo"},
	}

	first, err := NewJSON(jsonFormat(t), value)
	require.NoError(t, err)

	second, err := JSONFromRecord(&first.Record)
	require.NoError(t, err)
	assert.Equal(t, value, second.Value())
	assert.Equal(t, first.Content(), second.Content())
	assert.Same(t, first.Format(), second.Format())
}

func TestJSONFromRecord_NumbersKeepText(t *testing.T) {
	r, err := JSONFromRecord(New(jsonFormat(t), `{"big": 12345678901234567890, "f": 1.50}`))
	require.NoError(t, err)
	assert.Contains(t, r.Content(), "12345678901234567890")
	assert.Contains(t, r.Content(), "1.50")
}

func TestJSONFromRecord_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"syntax", `{"a": }`},
		{"trailing value", `{"a": 1} {"b": 2}`},
		{"trailing garbage", `[1] x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JSONFromRecord(New(jsonFormat(t), tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, mdconv.ErrParse), "got %v", err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "json", pe.Kind)
			assert.Equal(t, "datacite", pe.Format)
		})
	}
}

func TestJSONFromRecord_TrailingWhitespace(t *testing.T) {
	r, err := JSONFromRecord(New(jsonFormat(t), "{\"a\": 1}\n\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": json.Number("1")}, r.Value())
}

func TestJSONRecord_Query(t *testing.T) {
	r, err := JSONFromRecord(New(jsonFormat(t), `{"creators": [{"name": "Ana"}, {"name": "Bo"}]}`))
	require.NoError(t, err)

	assert.Equal(t, "Bo", r.Query("creators.1.name").String())
	assert.Equal(t, int64(2), r.Query("creators.#").Int())
	assert.False(t, r.Query("missing").Exists())
}

func TestJSONRecord_String(t *testing.T) {
	r, err := NewJSON(jsonFormat(t), map[string]any{"a": "b"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(r.String(), "Record (Format datacite v.4.1"))
	assert.True(t, strings.HasSuffix(r.String(), " JSON map[a:b]"))
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Format: "DDI", Kind: "xml", Line: 3, Message: "unexpected EOF", Hint: "close tags"}
	assert.Equal(t, "cannot parse xml content of DDI (line 3): unexpected EOF\n\nHint: close tags", err.Error())

	err = &ParseError{Kind: "json", Offset: 9, Message: "bad"}
	assert.Equal(t, "cannot parse json content (offset 9): bad", err.Error())
}
