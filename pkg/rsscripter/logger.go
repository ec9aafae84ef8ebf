package rsscripter

// Logger provides a pluggable message sink for generation progress, output
// and errors. The console implementation is just one sink; tests swap in a
// capture-to-buffer implementation.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Warn logs recoverable conditions, such as a table skipped because its
	// row count exceeds the export ceiling.
	Warn(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
