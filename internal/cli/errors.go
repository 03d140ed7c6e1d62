package cli

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// UsageError reports a problem with the arguments the user supplied. Its
// message is printed verbatim.
type UsageError struct {
	Message string
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return e.Message
}

// ErrMissingAppName is returned by Parse when no `-a <name>` pair is present.
var ErrMissingAppName = &UsageError{Message: "Please provide the name of the app"}
