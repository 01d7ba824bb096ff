package xmlschema

import (
	"fmt"
	"strings"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// SchemaError reports schema bytes that could not be compiled.
type SchemaError struct {
	Source string // schema URL, or "custom" for caller supplied bytes
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid schema %s: %v", e.Source, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// Is makes SchemaError match mdconv.ErrSchema.
func (e *SchemaError) Is(target error) bool { return target == mdconv.ErrSchema }

// InvalidDocumentError lists the problems reported by a failed validation.
type InvalidDocumentError struct {
	Problems []string
}

func (e *InvalidDocumentError) Error() string {
	if len(e.Problems) == 0 {
		return "document invalid"
	}
	return "document invalid: " + strings.Join(e.Problems, "; ")
}

// TransformError reports a stylesheet that could not be compiled or applied.
type TransformError struct {
	Stylesheet string
	Err        error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform with %s: %v", e.Stylesheet, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// Is makes TransformError match mdconv.ErrTransform.
func (e *TransformError) Is(target error) bool { return target == mdconv.ErrTransform }
