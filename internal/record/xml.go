package record

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/clbanning/mxj/v2"

	"github.com/vvka-141/mdconv/internal/format"
	"github.com/vvka-141/mdconv/internal/xmlschema"
	"github.com/vvka-141/mdconv/pkg/mdconv"
)

func init() {
	// Tree values are arbitrary text; serialized XML must escape it.
	mxj.XMLEscapeChars(true)
}

// XMLRecord is a record whose content is an XML document. The tree is the
// parse of the content at construction time: element names map to nested
// maps or strings, attributes are keyed with a "-" prefix, text next to
// attributes is keyed "#text" and repeated elements become []any.
type XMLRecord struct {
	Record
	tree mxj.Map
}

// NewXML parses content and returns an XMLRecord.
func NewXML(f *format.Descriptor, content string) (*XMLRecord, error) {
	r := Record{format: f, content: content}
	if strings.TrimSpace(content) == "" {
		return nil, &ParseError{
			Format:  r.formatName(),
			Kind:    "xml",
			Message: "content is empty",
			Err:     errors.New("empty document"),
		}
	}

	tree, err := mxj.NewMapXml([]byte(content))
	if err != nil {
		return nil, xmlParseError(r.formatName(), err)
	}
	if err := checkSingleRoot(content); err != nil {
		return nil, xmlParseError(r.formatName(), err)
	}
	return &XMLRecord{Record: r, tree: tree}, nil
}

// checkSingleRoot rejects text or elements outside the document element.
// The tree decoder stops at the end of the first root and would drop them.
func checkSingleRoot(content string) error {
	dec := xml.NewDecoder(strings.NewReader(content))
	// Content is already decoded text whatever the declaration says.
	dec.CharsetReader = func(_ string, in io.Reader) (io.Reader, error) { return in, nil }

	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					line, _ := dec.InputPos()
					return &xml.SyntaxError{Msg: fmt.Sprintf("junk after document element: <%s>", t.Name.Local), Line: line}
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(strings.TrimLeft(string(t), "\ufeff")) != "" {
				line, _ := dec.InputPos()
				msg := "junk after document element"
				if roots == 0 {
					msg = "text before document element"
				}
				return &xml.SyntaxError{Msg: msg, Line: line}
			}
		}
	}
}

// XMLFromRecord converts r into an XMLRecord.
func XMLFromRecord(r *Record) (*XMLRecord, error) {
	return NewXML(r.Format(), r.Content())
}

// XMLFromTree serializes tree as indented XML and parses the result.
// The tree must have exactly one root key.
func XMLFromTree(f *format.Descriptor, tree map[string]any) (*XMLRecord, error) {
	name := ""
	if f != nil {
		name = f.Name()
	}
	if len(tree) != 1 {
		return nil, &ParseError{
			Format:  name,
			Kind:    "xml",
			Message: fmt.Sprintf("tree must have exactly one root element, found %d", len(tree)),
			Hint:    "Wrap the values in a single top-level key.",
			Err:     errors.New("invalid root"),
		}
	}

	body, err := mxj.Map(tree).XmlIndent("", mdconv.XMLIndent)
	if err != nil {
		return nil, xmlParseError(name, err)
	}
	return NewXML(f, xmlDeclaration+string(body))
}

const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// Tree returns the parsed document tree. Callers must not modify it.
func (r *XMLRecord) Tree() map[string]any { return r.tree }

// Validate checks the content against the descriptor's XSD, or against
// WithCustomXSD when given. A fetched schema is patched before compiling.
//
// The result is false with a nil error when the document does not satisfy
// the schema; the reason is reported to the logger. Errors are returned only
// when the DOM, the schema fetch or the schema compilation fail.
func (r *XMLRecord) Validate(ctx context.Context, opts ...Option) (bool, error) {
	o := buildOptions(opts)

	doc, err := xmlschema.ParseDocument(r.Content(), o.encoding)
	if err != nil {
		return false, err
	}
	defer doc.Free()

	data, source, err := r.schemaBytes(ctx, o)
	if err != nil {
		return false, err
	}

	schema, err := xmlschema.CompileSchema(data, source)
	if err != nil {
		return false, err
	}
	defer schema.Free()

	if schema.Validate(doc) {
		o.logger.Verbose("%s record is valid against %s", r.formatName(), source)
		return true, nil
	}

	o.logger.Info("validation failed for %s record against %s", r.formatName(), source)
	reason := schema.Explain(doc)
	var invalid *xmlschema.InvalidDocumentError
	switch {
	case errors.As(reason, &invalid):
		o.logger.Warn("%v", invalid)
	case reason != nil:
		o.logger.Error("validation error: %v", reason)
	}
	return false, nil
}

func (r *XMLRecord) schemaBytes(ctx context.Context, o *options) ([]byte, string, error) {
	if len(o.customXSD) > 0 {
		return o.customXSD, xmlschema.CustomSource, nil
	}

	f := r.Format()
	if f == nil || f.XSDURL() == "" {
		return nil, "", &xmlschema.SchemaError{
			Source: r.formatName(),
			Err:    errors.New("format has no schema location"),
		}
	}

	url := f.XSDURL()
	o.logger.Verbose("fetching schema %s", url)
	data, err := o.schemaFetcher().Fetch(ctx, url)
	if err != nil {
		if !errors.Is(err, mdconv.ErrFetch) {
			err = fmt.Errorf("%w: %s: %w", mdconv.ErrFetch, url, err)
		}
		return nil, "", err
	}

	return xmlschema.Patch(data, url, o.patchRules()...), url, nil
}

// Transform applies the XSLT stylesheet at xslPath to the content and
// returns the pretty-printed result.
func (r *XMLRecord) Transform(ctx context.Context, xslPath string, opts ...Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	o := buildOptions(opts)

	doc, err := xmlschema.ParseDocument(r.Content(), o.encoding)
	if err != nil {
		return "", err
	}
	defer doc.Free()

	o.logger.Verbose("transforming %s record with %s", r.formatName(), xslPath)
	return xmlschema.Transform(doc, xslPath)
}

func (r *XMLRecord) String() string {
	return r.Record.String() + fmt.Sprintf(" XML, %v", map[string]any(r.tree))
}
