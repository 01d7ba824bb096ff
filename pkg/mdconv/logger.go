package mdconv

// Logger provides a pluggable logging interface for mdconv operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Warn logs conditions that do not stop an operation but deserve attention,
	// such as the reason a document failed schema validation.
	Warn(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
