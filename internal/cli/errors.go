package cli

// Exit codes used by the entrypoint.
const (
	ExitUsage    = 2
	ExitInternal = 70
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}
