package xmlschema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lestrrat-go/libxml2/parser"
	"github.com/lestrrat-go/libxml2/types"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// lenientParser recovers from malformed markup and drops redundant namespace
// declarations.
var lenientParser = parser.New(parser.XMLParseRecover, parser.XMLParseNsclean)

// ParseDocument parses content into a DOM tree. The text is first encoded in
// the named character encoding ("" means UTF-8) and the XML declaration is made
// to name that encoding, replacing any encoding the content declared, so the
// parser decodes the bytes the way they were produced. The caller must Free
// the returned document.
func ParseDocument(content string, encoding string) (types.Document, error) {
	buf, err := encodeContent(content, encoding)
	if err != nil {
		return nil, err
	}

	doc, err := lenientParser.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build document tree: %v", mdconv.ErrParse, err)
	}
	return doc, nil
}

func encodeContent(content string, encoding string) ([]byte, error) {
	if isUTF8(encoding) {
		return []byte(content), nil
	}

	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: unsupported encoding %q", mdconv.ErrParse, encoding)
	}

	encoded, err := enc.NewEncoder().String(declareEncoding(content, encoding))
	if err != nil {
		return nil, fmt.Errorf("%w: content cannot be encoded as %s: %v", mdconv.ErrParse, encoding, err)
	}
	return []byte(encoded), nil
}

func isUTF8(encoding string) bool {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

var (
	encodingAttr = regexp.MustCompile(`encoding\s*=\s*("[^"]*"|'[^']*')`)
	versionAttr  = regexp.MustCompile(`version\s*=\s*("[^"]*"|'[^']*')`)
)

// declareEncoding returns content with an XML declaration naming encoding.
// A leading byte order mark is dropped since the text is re-encoded.
func declareEncoding(content, encoding string) string {
	label := fmt.Sprintf(`encoding="%s"`, encoding)
	trimmed := strings.TrimLeft(content, " \t\r\n\ufeff")
	end := strings.Index(trimmed, "?>")
	if !hasDeclaration(trimmed) || end < 0 {
		return fmt.Sprintf("<?xml version=\"1.0\" %s?>\n", label) + strings.TrimLeft(content, "\ufeff")
	}

	head := trimmed[:end]
	switch {
	case encodingAttr.MatchString(head):
		head = encodingAttr.ReplaceAllLiteralString(head, label)
	case versionAttr.MatchString(head):
		// encoding must precede standalone
		loc := versionAttr.FindStringIndex(head)
		head = head[:loc[1]] + " " + label + head[loc[1]:]
	default:
		head = strings.TrimRight(head, " \t\r\n") + " " + label
	}
	return head + trimmed[end:]
}

// hasDeclaration reports whether content opens with an XML declaration, as
// opposed to a processing instruction such as <?xml-stylesheet?>.
func hasDeclaration(content string) bool {
	rest, ok := strings.CutPrefix(content, "<?xml")
	if !ok || rest == "" {
		return false
	}
	switch rest[0] {
	case ' ', '\t', '\r', '\n', '?':
		return true
	}
	return false
}
