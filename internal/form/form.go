// Package form owns the contact form lifecycle: validate every field,
// make exactly one bounded network attempt, and drive the UI through a
// presenter. The controller is the only writer of the submission state.
package form

import (
	"net/url"

	"github.com/halcyon-studio/landing/internal/validate"
)

// State is the submission lifecycle position. The controller parks at
// Idle between submissions; Success and Failed are reported as the
// outcome of a finished attempt, not stored.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Field pairs a field's immutable spec with its current text.
type Field struct {
	Spec  validate.FieldSpec
	Value string
}

// Values encodes fields for the POST body.
func Values(fields []Field) url.Values {
	out := make(url.Values, len(fields))
	for _, f := range fields {
		out.Set(f.Spec.Name, f.Value)
	}
	return out
}

// NoticeKind distinguishes the transient banners.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Presenter is the surface the controller mutates: per-field error
// text, the busy/disabled flag covering the inputs and submit control,
// focus, field values, and transient banners. All writes are
// idempotent.
type Presenter interface {
	SetFieldError(name, message string)
	ClearFieldError(name string)
	ClearAllFieldErrors()
	SetBusy(busy bool)
	FocusField(name string)
	ResetFields()
	ShowNotice(kind NoticeKind, message string)
}
