package mdconv

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	rec, err := record.NewXML(descriptor, content)
//	if errors.Is(err, mdconv.ErrParse) {
//	    // Content is not well-formed XML
//	}
var (
	// ErrParse indicates record content is not well-formed in its claimed format.
	ErrParse = errors.New("parse error")

	// ErrFetch indicates a transport failure while retrieving a remote document.
	ErrFetch = errors.New("fetch failed")

	// ErrSchema indicates schema bytes could not be compiled into a schema.
	ErrSchema = errors.New("invalid schema")

	// ErrTransform indicates an XSL stylesheet could not be compiled or applied.
	ErrTransform = errors.New("transform failed")

	// ErrInvalidDescriptor indicates a format descriptor is missing required attributes.
	ErrInvalidDescriptor = errors.New("invalid format descriptor")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFormatNotFound indicates no registered format matches a lookup.
	ErrFormatNotFound = errors.New("format not found")

	// ErrValidationFailed indicates a document did not satisfy its schema.
	// The library reports this as a false result; only the CLI turns it into an error.
	ErrValidationFailed = errors.New("validation failed")
)

// usageErrorFragments are substrings of cobra/pflag errors caused by command line misuse.
var usageErrorFragments = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidDescriptor):
		return ExitConfigError
	case errors.Is(err, ErrFetch):
		return ExitFetchError
	case errors.Is(err, ErrParse):
		return ExitParseError
	case errors.Is(err, ErrSchema):
		return ExitSchemaError
	case errors.Is(err, ErrTransform):
		return ExitTransformError
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	case errors.Is(err, ErrFormatNotFound):
		return ExitFormatNotFound
	}

	errStr := err.Error()
	for _, fragment := range usageErrorFragments {
		if strings.Contains(errStr, fragment) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
