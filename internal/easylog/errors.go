package easylog

import (
	"errors"
	"fmt"
)

// Rejection reasons. Every command failure wraps exactly one of these.
var (
	// ErrNoActiveEditor indicates there is no document to operate on.
	ErrNoActiveEditor = errors.New("no active editor")

	// ErrUnsupportedLanguage indicates the document language is not supported.
	ErrUnsupportedLanguage = errors.New("language is not supported")

	// ErrEmptySelection indicates the selection is empty after trimming.
	ErrEmptySelection = errors.New("no variable selected")

	// ErrNoWordAtCursor indicates no identifier characters surround the cursor.
	ErrNoWordAtCursor = errors.New("no variable under cursor")

	// ErrNoValidVariable indicates the candidate produced no segments.
	ErrNoValidVariable = errors.New("no valid variable")

	// ErrInvalidIdentifier indicates the candidate or one of its segments
	// is not a legal identifier.
	ErrInvalidIdentifier = errors.New("invalid variable name")

	// ErrEditFailed indicates the buffer rejected the insertion.
	ErrEditFailed = errors.New("edit failed")
)

// RejectError records what was rejected alongside the reason.
type RejectError struct {
	Subject string // Offending input (language id, candidate text)
	Err     error  // One of the Err* sentinels
}

func newReject(err error, subject string) *RejectError {
	return &RejectError{Subject: subject, Err: err}
}

func (e *RejectError) Error() string {
	if e == nil {
		return ""
	}
	if e.Subject == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Subject)
}

func (e *RejectError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Severity classifies how a rejection is shown to the user.
type Severity uint8

const (
	// SeverityInfo is for plain status messages.
	SeverityInfo Severity = iota
	// SeverityWarning is for rejections caused by what the user pointed at.
	SeverityWarning
	// SeverityError is for rejections caused by the environment.
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// SeverityOf returns the severity a rejection should be reported with.
func SeverityOf(err error) Severity {
	switch {
	case err == nil:
		return SeverityInfo
	case errors.Is(err, ErrNoActiveEditor),
		errors.Is(err, ErrUnsupportedLanguage),
		errors.Is(err, ErrEditFailed):
		return SeverityError
	case errors.Is(err, ErrEmptySelection),
		errors.Is(err, ErrNoWordAtCursor),
		errors.Is(err, ErrNoValidVariable),
		errors.Is(err, ErrInvalidIdentifier):
		return SeverityWarning
	default:
		return SeverityError
	}
}

// Message returns the short sentence shown to the user for err.
func Message(err error) string {
	var subject string
	var rej *RejectError
	if errors.As(err, &rej) {
		subject = rej.Subject
	}

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoActiveEditor):
		return "No active editor"
	case errors.Is(err, ErrUnsupportedLanguage):
		if subject == "" {
			return "Language is not supported"
		}
		return fmt.Sprintf("%s language is not supported", subject)
	case errors.Is(err, ErrEmptySelection):
		return "No variable selected"
	case errors.Is(err, ErrNoWordAtCursor):
		return "No variable under cursor"
	case errors.Is(err, ErrNoValidVariable):
		return "No valid variable"
	case errors.Is(err, ErrInvalidIdentifier):
		if subject == "" {
			return "Invalid variable name selected"
		}
		return fmt.Sprintf("Invalid variable name %q", subject)
	case errors.Is(err, ErrEditFailed):
		return "Could not insert log statement"
	default:
		return err.Error()
	}
}
