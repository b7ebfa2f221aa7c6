// Package validate holds the field validation rules shared by live
// validation and submit-time validation. Every function here is pure:
// the same spec and text always produce the same result.
package validate

import (
	"regexp"
	"strings"
)

// Kind classifies a form field so the right rule applies after the
// required check.
type Kind int

const (
	KindGeneric Kind = iota
	KindName
	KindEmail
	KindPhone
	KindMessage
)

// ParseKind maps a field's declared type attribute to a Kind.
// Unknown values fall back to KindGeneric.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return KindName
	case "email":
		return KindEmail
	case "phone", "tel":
		return KindPhone
	case "message", "textarea":
		return KindMessage
	default:
		return KindGeneric
	}
}

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindEmail:
		return "email"
	case KindPhone:
		return "phone"
	case KindMessage:
		return "message"
	default:
		return "generic"
	}
}

// FieldSpec describes one field. Derived once per field from its
// declared attributes and never mutated after.
type FieldSpec struct {
	Name     string
	Kind     Kind
	Required bool
}

// ErrorKind identifies which rule a value broke. It doubles as the
// message key for user-facing copy.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrRequired
	ErrInvalidName
	ErrInvalidEmail
	ErrInvalidPhone
	ErrTooShort
)

func (e ErrorKind) String() string {
	switch e {
	case ErrRequired:
		return "required"
	case ErrInvalidName:
		return "invalid_name"
	case ErrInvalidEmail:
		return "invalid_email"
	case ErrInvalidPhone:
		return "invalid_phone"
	case ErrTooShort:
		return "too_short"
	default:
		return "none"
	}
}

// Result is the verdict for one field at one point in time. It is
// recomputed on every call and never cached; the field's text can
// change between calls.
type Result struct {
	Valid bool
	Key   ErrorKind
}

var (
	nameRe  = regexp.MustCompile(`^[\p{L}][\p{L} '\-]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-() ]+$`)
)

const minMessageLen = 10

// Validate applies the rule table to a field's current text.
// The required check dominates: a required empty field reports
// ErrRequired whatever its kind, and an optional empty field is
// always valid.
func Validate(spec FieldSpec, raw string) Result {
	text := strings.TrimSpace(raw)
	if text == "" {
		if spec.Required {
			return Result{Key: ErrRequired}
		}
		return Result{Valid: true}
	}

	switch spec.Kind {
	case KindName:
		if !nameRe.MatchString(text) {
			return Result{Key: ErrInvalidName}
		}
	case KindEmail:
		if !emailRe.MatchString(text) {
			return Result{Key: ErrInvalidEmail}
		}
	case KindPhone:
		if !phoneRe.MatchString(text) {
			return Result{Key: ErrInvalidPhone}
		}
	case KindMessage:
		if len([]rune(text)) < minMessageLen {
			return Result{Key: ErrTooShort}
		}
	}
	return Result{Valid: true}
}

// Message returns the user-facing copy for an error key.
func Message(key ErrorKind) string {
	switch key {
	case ErrRequired:
		return "This field is required."
	case ErrInvalidName:
		return "Please enter a valid name."
	case ErrInvalidEmail:
		return "Please enter a valid email address."
	case ErrInvalidPhone:
		return "Please enter a valid phone number."
	case ErrTooShort:
		return "Please enter at least 10 characters."
	default:
		return ""
	}
}
