// Package validation derives user-facing error messages from field values.
//
// Every check returns a message string: empty means valid. Checks never
// panic and never perform I/O; callers decide whether to surface a message
// live or only after a submit attempt.
package validation

import (
	"fmt"
	"unicode/utf8"
)

// MinPasswordLength is the shortest accepted password, in runes.
const MinPasswordLength = 8

// Func is a single check over a value.
type Func func(value string) string

// Validator evaluates the built-in checks against a message catalog.
type Validator struct {
	messages Messages
}

// New returns a Validator using the supplied catalog. Empty catalog entries
// fall back to English.
func New(messages Messages) *Validator {
	return &Validator{messages: messages.Merge(DefaultMessages())}
}

var defaultValidator = New(DefaultMessages())

// Messages returns the active catalog.
func (v *Validator) Messages() Messages {
	return v.messages
}

// Email requires a value and checks it against a loose address pattern.
// Addresses like "a@b.c" pass; quoting, IP literals and other RFC forms are
// not understood.
func (v *Validator) Email(value string) string {
	if value == "" {
		return render(v.messages.EmailRequired, "", 0)
	}
	if !passes(value, tagLooseEmail) {
		return render(v.messages.EmailInvalid, "", 0)
	}
	return ""
}

// Password requires at least MinPasswordLength runes including at least one
// ASCII letter and one digit on the same line.
func (v *Validator) Password(value string) string {
	if value == "" {
		return render(v.messages.PasswordRequired, "", 0)
	}
	if utf8.RuneCountInString(value) < MinPasswordLength {
		return render(v.messages.PasswordTooShort, "", MinPasswordLength)
	}
	if !passes(value, tagLettersDigits) {
		return render(v.messages.PasswordComposition, "", 0)
	}
	return ""
}

// Required rejects values that are empty after trimming whitespace.
func (v *Validator) Required(value, label string) string {
	if !passes(value, tagNotBlank) {
		return render(v.messages.Required, label, 0)
	}
	return ""
}

// Length checks the rune count of value against [min, max]. Inverted bounds
// are swapped so the two messages stay mutually exclusive.
func (v *Validator) Length(value string, min, max int, label string) string {
	if min > max {
		min, max = max, min
	}
	if !passes(value, fmt.Sprintf("min=%d", min)) {
		return render(v.messages.TooShort, label, min)
	}
	if !passes(value, fmt.Sprintf("max=%d", max)) {
		return render(v.messages.TooLong, label, max)
	}
	return ""
}

// Match reports a mismatch when value is non-empty and differs from other.
func (v *Validator) Match(value, other string) string {
	if value != "" && value != other {
		return render(v.messages.Mismatch, "", 0)
	}
	return ""
}

// EmailFunc adapts Email to a Func.
func (v *Validator) EmailFunc() Func { return v.Email }

// PasswordFunc adapts Password to a Func.
func (v *Validator) PasswordFunc() Func { return v.Password }

// RequiredFunc binds a label to Required.
func (v *Validator) RequiredFunc(label string) Func {
	return func(value string) string { return v.Required(value, label) }
}

// LengthFunc binds bounds and a label to Length.
func (v *Validator) LengthFunc(min, max int, label string) Func {
	return func(value string) string { return v.Length(value, min, max, label) }
}

// MatchFunc compares against the value returned by other at check time.
func (v *Validator) MatchFunc(other func() string) Func {
	return func(value string) string { return v.Match(value, other()) }
}

// Chain runs checks in order and returns the first message. Compose as
// required, then format, then length.
func Chain(checks ...Func) Func {
	return func(value string) string {
		for _, check := range checks {
			if check == nil {
				continue
			}
			if msg := check(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// Optional skips check for empty values, matching forms that only complain
// once the user has typed something.
func Optional(check Func) Func {
	return func(value string) string {
		if value == "" || check == nil {
			return ""
		}
		return check(value)
	}
}

// ValidateEmail runs Email with the English catalog.
func ValidateEmail(value string) string { return defaultValidator.Email(value) }

// ValidatePassword runs Password with the English catalog.
func ValidatePassword(value string) string { return defaultValidator.Password(value) }

// ValidateRequired runs Required with the English catalog.
func ValidateRequired(value, label string) string { return defaultValidator.Required(value, label) }

// ValidateLength runs Length with the English catalog.
func ValidateLength(value string, min, max int, label string) string {
	return defaultValidator.Length(value, min, max, label)
}

// ValidateMatch runs Match with the English catalog.
func ValidateMatch(value, other string) string { return defaultValidator.Match(value, other) }
