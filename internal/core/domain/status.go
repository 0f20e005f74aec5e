package domain

import "strings"

// RunStatus is the outcome of an export run as reported to the caller.
// Code follows process exit conventions: 0 success, non-zero failure.
// Every run produces a status; errors never escape the export boundary.
type RunStatus struct {
	// Code is the exit code, 0 on success.
	Code int

	// Message is a single-line human-readable outcome.
	Message string
}

// OK returns true for a success status.
func (s RunStatus) OK() bool {
	return s.Code == 0
}

// SuccessStatus returns a success status with the given message.
func SuccessStatus(message string) RunStatus {
	return RunStatus{Code: 0, Message: message}
}

// FailureStatus converts err into a failure status with a normalised message.
func FailureStatus(err error) RunStatus {
	return RunStatus{Code: 1, Message: NormaliseErrorMessage(err)}
}

// NormaliseErrorMessage flattens an error's message to one trimmed line.
// A nil error yields "", an error with an empty message yields "unknown error".
func NormaliseErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	msg = strings.ReplaceAll(msg, "\r\n", "; ")
	msg = strings.ReplaceAll(msg, "\n", "; ")
	if msg == "" {
		return "unknown error"
	}
	return msg
}
