package mdconv

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or format descriptor
	ExitFetchError       = 11 // Remote schema could not be retrieved
	ExitParseError       = 12 // Record content is not well-formed
	ExitSchemaError      = 13 // Schema could not be compiled
	ExitValidationFailed = 14 // Document does not satisfy its schema
	ExitTransformError   = 15 // XSL transformation failed
	ExitFormatNotFound   = 16 // No registered format matches the request
)

const (
	// DefaultEncoding is the character encoding used when re-parsing XML content.
	DefaultEncoding = "utf-8"

	// DefaultFetchTimeout bounds a single schema download.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultUserAgent is sent with every schema download.
	DefaultUserAgent = "mdconv/1.0"

	// DefaultRateLimit is the number of schema downloads allowed per second.
	DefaultRateLimit = 5.0

	// DefaultRateBurst is the maximum burst of schema downloads.
	DefaultRateBurst = 2

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 200 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 10 * time.Second

	// DefaultRetryMaxAttempts is the default number of fetch retries the CLI performs.
	DefaultRetryMaxAttempts = 3

	// JSONIndent is the indentation used for canonical JSON record content.
	JSONIndent = "    "

	// XMLIndent is the indentation used when serializing XML trees.
	XMLIndent = "  "
)
