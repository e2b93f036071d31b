package cmd

import "errors"

// Exit codes reported by the key action command. Anything else that fails
// exits with 1.
const (
	exitCodeUsage         = 2
	exitCodeMissingKey    = 3
	exitCodeNoKeyReturned = 4
)

// Error is a user facing error. It carries a formatted message for
// communication, rather than a stacktrace.
type Error struct {
	// Message is the human readable reason for the failure. Full sentences.
	Message string

	// Code is the process exit code to report; 1 when unset.
	Code int

	// OriginalError is the error that bubbled up, used for unwrapping and
	// debugging.
	OriginalError error
}

func (e Error) Error() string {
	if e.OriginalError != nil {
		return e.Message + ": " + e.OriginalError.Error()
	}
	return e.Message
}

func (e Error) Unwrap() error {
	return e.OriginalError
}

// ExitCode maps err to the code the process should exit with.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var userErr Error
	if errors.As(err, &userErr) && userErr.Code != 0 {
		return userErr.Code
	}
	return 1
}
