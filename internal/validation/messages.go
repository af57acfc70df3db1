package validation

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	fkerrors "github.com/alexisbeaulieu97/fieldkit/pkg/errors"
)

// Messages is a catalog of user-facing validation texts. Entries that take
// parameters are fmt format strings using explicit argument indexes:
// %[1]s is the field label and %[2]d the length bound.
type Messages struct {
	EmailRequired       string `yaml:"email_required"`
	EmailInvalid        string `yaml:"email_invalid"`
	PasswordRequired    string `yaml:"password_required"`
	PasswordTooShort    string `yaml:"password_too_short"`
	PasswordComposition string `yaml:"password_composition"`
	Required            string `yaml:"required"`
	TooShort            string `yaml:"too_short"`
	TooLong             string `yaml:"too_long"`
	Mismatch            string `yaml:"mismatch"`
}

// DefaultMessages returns the English catalog.
func DefaultMessages() Messages {
	return Messages{
		EmailRequired:       "Please enter your email",
		EmailInvalid:        "Email address is not in a valid format",
		PasswordRequired:    "Please enter your password",
		PasswordTooShort:    "Password must be at least %[2]d characters",
		PasswordComposition: "Password must contain both letters and digits",
		Required:            "Please enter %[1]s",
		TooShort:            "%[1]s must be at least %[2]d characters",
		TooLong:             "%[1]s must be at most %[2]d characters",
		Mismatch:            "Passwords do not match",
	}
}

// KoreanMessages returns the Korean catalog.
func KoreanMessages() Messages {
	return Messages{
		EmailRequired:       "이메일을 입력해주세요",
		EmailInvalid:        "올바른 이메일 형식이 아닙니다",
		PasswordRequired:    "비밀번호를 입력해주세요",
		PasswordTooShort:    "비밀번호는 %[2]d자 이상이어야 합니다",
		PasswordComposition: "영문과 숫자를 포함해야 합니다",
		Required:            "%[1]s을(를) 입력해주세요",
		TooShort:            "%[1]s은(는) %[2]d자 이상이어야 합니다",
		TooLong:             "%[1]s은(는) %[2]d자 이하여야 합니다",
		Mismatch:            "비밀번호가 일치하지 않습니다",
	}
}

// Locales lists the locale tags with a built-in catalog.
func Locales() []string {
	return []string{"en", "ko"}
}

// MessagesFor selects a built-in catalog by locale tag. Unknown locales fall
// back to English.
func MessagesFor(locale string) Messages {
	tag := strings.ToLower(strings.TrimSpace(locale))
	if tag == "ko" || strings.HasPrefix(tag, "ko-") || strings.HasPrefix(tag, "ko_") {
		return KoreanMessages()
	}
	return DefaultMessages()
}

// Merge returns a copy of m where every empty entry is taken from fallback.
func (m Messages) Merge(fallback Messages) Messages {
	pick := func(value, alt string) string {
		if value == "" {
			return alt
		}
		return value
	}
	return Messages{
		EmailRequired:       pick(m.EmailRequired, fallback.EmailRequired),
		EmailInvalid:        pick(m.EmailInvalid, fallback.EmailInvalid),
		PasswordRequired:    pick(m.PasswordRequired, fallback.PasswordRequired),
		PasswordTooShort:    pick(m.PasswordTooShort, fallback.PasswordTooShort),
		PasswordComposition: pick(m.PasswordComposition, fallback.PasswordComposition),
		Required:            pick(m.Required, fallback.Required),
		TooShort:            pick(m.TooShort, fallback.TooShort),
		TooLong:             pick(m.TooLong, fallback.TooLong),
		Mismatch:            pick(m.Mismatch, fallback.Mismatch),
	}
}

// LoadMessages decodes a YAML catalog and fills missing entries from
// fallback.
func LoadMessages(r io.Reader, fallback Messages) (Messages, error) {
	var decoded Messages
	if err := yaml.NewDecoder(r).Decode(&decoded); err != nil {
		if err == io.EOF {
			return fallback, nil
		}
		return Messages{}, fkerrors.NewParseError("", 0, err)
	}
	return decoded.Merge(fallback), nil
}

func render(format, label string, bound int) string {
	if !strings.Contains(format, "%") {
		return format
	}
	// Indexed verbs make fmt skip the EXTRA check, so entries may use
	// either argument alone.
	return fmt.Sprintf(format, label, bound)
}
