package xmlschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

func TestParseDocument_UTF8(t *testing.T) {
	doc, err := ParseDocument("<a><b>1</b></a>", "utf-8")
	require.NoError(t, err)
	defer doc.Free()

	root, err := doc.DocumentElement()
	require.NoError(t, err)
	assert.Equal(t, "a", root.NodeName())
}

func TestParseDocument_OtherEncoding(t *testing.T) {
	doc, err := ParseDocument("<a><b>café</b></a>", "iso-8859-1")
	require.NoError(t, err)
	defer doc.Free()

	root, err := doc.DocumentElement()
	require.NoError(t, err)
	assert.Equal(t, "a", root.NodeName())
}

func TestParseDocument_EncodingErrors(t *testing.T) {
	_, err := ParseDocument("<a/>", "no-such-charset")
	assert.True(t, errors.Is(err, mdconv.ErrParse), "got %v", err)

	_, err = ParseDocument("<a>中</a>", "iso-8859-1")
	assert.True(t, errors.Is(err, mdconv.ErrParse), "got %v", err)
}

func TestEncodeContent(t *testing.T) {
	buf, err := encodeContent("<a>é</a>", "UTF8")
	require.NoError(t, err)
	assert.Equal(t, "<a>é</a>", string(buf))

	buf, err = encodeContent("<a>é</a>", "latin1")
	require.NoError(t, err)
	assert.Contains(t, string(buf), `encoding="latin1"`)
	assert.Equal(t, byte(0xe9), buf[len(buf)-5])

	buf, err = encodeContent(`<?xml version="1.0" encoding="latin1"?><a/>`, "latin1")
	require.NoError(t, err)
	assert.Equal(t, `<?xml version="1.0" encoding="latin1"?><a/>`, string(buf))
}

func TestParseDocument_OverridesDeclaredEncoding(t *testing.T) {
	doc, err := ParseDocument(`<?xml version="1.0" encoding="UTF-8"?><a>été</a>`, "iso-8859-1")
	require.NoError(t, err)
	defer doc.Free()

	root, err := doc.DocumentElement()
	require.NoError(t, err)
	assert.Equal(t, "été", root.TextContent())
}

func TestDeclareEncoding(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no declaration", "<a/>", "<?xml version=\"1.0\" encoding=\"latin1\"?>\n<a/>"},
		{"declared utf-8", `<?xml version="1.0" encoding="UTF-8"?><a/>`, `<?xml version="1.0" encoding="latin1"?><a/>`},
		{"single quotes", `<?xml version='1.0' encoding='utf-8'?><a/>`, `<?xml version='1.0' encoding="latin1"?><a/>`},
		{"version only", `<?xml version="1.0"?><a/>`, `<?xml version="1.0" encoding="latin1"?><a/>`},
		{"standalone kept last", `<?xml version="1.0" standalone="yes"?><a/>`, `<?xml version="1.0" encoding="latin1" standalone="yes"?><a/>`},
		{"byte order mark", "\ufeff<a/>", "<?xml version=\"1.0\" encoding=\"latin1\"?>\n<a/>"},
		{"stylesheet pi is not a declaration", `<?xml-stylesheet href="s.xsl"?><a/>`, "<?xml version=\"1.0\" encoding=\"latin1\"?>\n<?xml-stylesheet href=\"s.xsl\"?><a/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, declareEncoding(tt.content, "latin1"))
		})
	}
}
