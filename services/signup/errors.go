package signup

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDraftNotFound signals that no draft exists (or it expired, or was stored
// under an unknown schema version).
var ErrDraftNotFound = errors.New("signup draft not found or expired")

// StepIncompleteError signals entry into a step whose prerequisites are not
// yet in the draft. It carries the earliest step that must be completed; the
// HTTP layer turns it into a redirect rather than a user-facing error.
type StepIncompleteError struct {
	RedirectTo   Step
	MissingField string
}

func (e *StepIncompleteError) Error() string {
	return fmt.Sprintf("step prerequisites missing (%s); redirect to %s", e.MissingField, e.RedirectTo)
}

// ValidationError carries recoverable, field-level form errors. The form
// stays filled in and no navigation happens.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// DuplicateEmailError signals finalization against an email that already has
// an account.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return "an account with this email already exists"
}
