package record

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// ParseError reports record content that could not be parsed.
type ParseError struct {
	Format  string // descriptor name, empty when unknown
	Kind    string // "xml" or "json"
	Line    int    // 0 if unknown
	Offset  int64  // byte offset for JSON errors, 0 if unknown
	Message string
	Hint    string
	Err     error
}

func (e *ParseError) Error() string {
	subject := e.Kind + " content"
	if e.Format != "" {
		subject = fmt.Sprintf("%s content of %s", e.Kind, e.Format)
	}

	var location string
	switch {
	case e.Line > 0:
		location = fmt.Sprintf(" (line %d)", e.Line)
	case e.Offset > 0:
		location = fmt.Sprintf(" (offset %d)", e.Offset)
	}

	msg := fmt.Sprintf("cannot parse %s%s: %s", subject, location, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes ParseError match mdconv.ErrParse.
func (e *ParseError) Is(target error) bool { return target == mdconv.ErrParse }

func xmlParseError(formatName string, err error) *ParseError {
	pe := &ParseError{
		Format:  formatName,
		Kind:    "xml",
		Message: err.Error(),
		Hint:    "Check that the document has a single root element and that all tags are closed.",
		Err:     err,
	}
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		pe.Line = syntaxErr.Line
		pe.Message = syntaxErr.Msg
	}
	return pe
}

func jsonParseError(formatName string, err error) *ParseError {
	pe := &ParseError{
		Format:  formatName,
		Kind:    "json",
		Message: err.Error(),
		Hint:    "Record content must hold exactly one JSON value.",
		Err:     err,
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		pe.Offset = syntaxErr.Offset
	}
	return pe
}
