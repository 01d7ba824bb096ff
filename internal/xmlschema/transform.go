package xmlschema

import (
	"fmt"
	"os"

	"github.com/lestrrat-go/libxml2/parser"
	"github.com/lestrrat-go/libxml2/types"
	"github.com/wamuir/go-xslt"
)

// prettyParser drops ignorable whitespace so dumps can be re-indented.
var prettyParser = parser.New(parser.XMLParseNoBlanks)

// Transform applies the XSLT stylesheet at xslPath to doc and returns the
// pretty-printed result. Results that are not XML (text output method) are
// returned as produced.
//
// The stylesheet is compiled from its bytes, so relative xsl:include and
// xsl:import hrefs resolve against the working directory rather than the
// stylesheet's own directory.
func Transform(doc types.Document, xslPath string) (string, error) {
	xsl, err := os.ReadFile(xslPath)
	if err != nil {
		return "", &TransformError{Stylesheet: xslPath, Err: err}
	}

	stylesheet, err := xslt.NewStylesheet(xsl)
	if err != nil {
		return "", &TransformError{Stylesheet: xslPath, Err: fmt.Errorf("compile stylesheet: %w", err)}
	}
	defer stylesheet.Close()

	out, err := stylesheet.Transform([]byte(doc.Dump(false)))
	if err != nil {
		return "", &TransformError{Stylesheet: xslPath, Err: err}
	}

	return prettyPrint(out), nil
}

func prettyPrint(out []byte) string {
	result, err := prettyParser.Parse(out)
	if err != nil {
		return string(out)
	}
	defer result.Free()
	return result.Dump(true)
}
