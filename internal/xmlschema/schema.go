package xmlschema

import (
	"errors"
	"fmt"

	"github.com/lestrrat-go/libxml2/types"
	"github.com/lestrrat-go/libxml2/xsd"
)

// CustomSource names caller supplied schema bytes in errors.
const CustomSource = "custom"

// Schema is a compiled XSD schema.
type Schema struct {
	source string
	schema *xsd.Schema
}

// CompileSchema compiles XSD bytes. source names the schema in errors.
func CompileSchema(data []byte, source string) (*Schema, error) {
	if source == "" {
		source = CustomSource
	}
	if len(data) == 0 {
		return nil, &SchemaError{Source: source, Err: errors.New("empty schema document")}
	}

	s, err := xsd.Parse(data)
	if err != nil {
		return nil, &SchemaError{Source: source, Err: err}
	}
	return &Schema{source: source, schema: s}, nil
}

// Source returns the schema URL or CustomSource.
func (s *Schema) Source() string { return s.source }

// Validate reports whether doc satisfies the schema.
func (s *Schema) Validate(doc types.Document) bool {
	return s.schema.Validate(doc) == nil
}

// Explain validates doc again and describes why it fails. A nil result means
// the document is valid. Failures other than schema violations, including
// panics inside the engine, are returned as plain errors.
func (s *Schema) Explain(doc types.Document) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("schema validation panicked: %v", r)
		}
	}()

	verr := s.schema.Validate(doc)
	if verr == nil {
		return nil
	}

	var sve xsd.SchemaValidationError
	if errors.As(verr, &sve) {
		problems := make([]string, 0, len(sve.Errors()))
		for _, e := range sve.Errors() {
			problems = append(problems, e.Error())
		}
		return &InvalidDocumentError{Problems: problems}
	}
	return verr
}

// Free releases the compiled schema.
func (s *Schema) Free() {
	if s.schema != nil {
		s.schema.Free()
		s.schema = nil
	}
}
