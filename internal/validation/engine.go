package validation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	tagLooseEmail    = "loose_email"
	tagLettersDigits = "letters_digits"
	tagNotBlank      = "not_blank"
)

// jsSpace mirrors the whitespace set of an ECMAScript \s so the email check
// rejects the same separators browsers do.
const jsSpace = `\s\v\p{Zs}\x{2028}\x{2029}\x{feff}`

var (
	engineOnce sync.Once
	engineInst *validator.Validate

	// Approximate syntactic check, not RFC 5322: any non-space run, an @,
	// another run containing a dot.
	looseEmailPattern = regexp.MustCompile(`^[^` + jsSpace + `@]+@[^` + jsSpace + `@]+\.[^` + jsSpace + `@]+$`)
	letterPattern     = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern      = regexp.MustCompile(`[0-9]`)
	lineBreakPattern  = regexp.MustCompile(`[\n\r\x{2028}\x{2029}]`)
)

// engine configures and returns the shared validator instance used by the
// field validators.
func engine() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation(tagLooseEmail, func(fl validator.FieldLevel) bool {
			return looseEmailPattern.MatchString(fl.Field().String())
		})

		// The letter and the digit may come in either order but must share
		// a line, as with an ECMAScript lookahead pair over `.*`.
		_ = v.RegisterValidation(tagLettersDigits, func(fl validator.FieldLevel) bool {
			for _, line := range lineBreakPattern.Split(fl.Field().String(), -1) {
				if letterPattern.MatchString(line) && digitPattern.MatchString(line) {
					return true
				}
			}
			return false
		})

		_ = v.RegisterValidation(tagNotBlank, func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		engineInst = v
	})

	return engineInst
}

// Engine exposes the configured validator for struct validation elsewhere
// (configuration loading registers nothing of its own).
func Engine() *validator.Validate {
	return engine()
}

func passes(value, tag string) bool {
	return engine().Var(value, tag) == nil
}
