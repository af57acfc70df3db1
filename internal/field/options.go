package field

import (
	"time"

	"github.com/alexisbeaulieu97/fieldkit/internal/autoresize"
	"github.com/alexisbeaulieu97/fieldkit/internal/validation"
)

// DefaultSettleDelay is how long a blur waits before dismissing focus and
// suggestions, leaving room for a suggestion click to commit first.
const DefaultSettleDelay = 150 * time.Millisecond

// Variant selects the visual treatment of a field. VariantSearch also turns
// on suggestions.
type Variant int

const (
	VariantOutlined Variant = iota
	VariantDefault
	VariantUnderlined
	VariantSearch
)

func (v Variant) String() string {
	switch v {
	case VariantDefault:
		return "default"
	case VariantUnderlined:
		return "underlined"
	case VariantSearch:
		return "search"
	default:
		return "outlined"
	}
}

// Type mirrors the semantic input type of a text field.
type Type int

const (
	TypeText Type = iota
	TypeEmail
	TypePassword
	TypeSearch
	TypeURL
	TypeTel
	TypeNumber
)

func (t Type) String() string {
	switch t {
	case TypeEmail:
		return "email"
	case TypePassword:
		return "password"
	case TypeSearch:
		return "search"
	case TypeURL:
		return "url"
	case TypeTel:
		return "tel"
	case TypeNumber:
		return "number"
	default:
		return "text"
	}
}

// Size is the density of a field or button.
type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "medium"
	}
}

// Options is the owner supplied configuration of a field. It is replaced
// wholesale on every render through SetOptions.
type Options struct {
	Variant Variant
	Type    Type
	Size    Size

	// MaxLength is a hard cap in runes. Zero disables it.
	MaxLength   int
	ShowCounter bool

	Clearable    bool
	Disabled     bool
	ReadOnly     bool
	ShowPassword bool

	Error      bool
	ErrorText  string
	HelperText string

	// LiveValidator opts into validation on every render.
	LiveValidator validation.Func

	// Suggestions is the candidate set for search fields. Never mutated.
	Suggestions []string

	// AutoResize enables height tracking for text areas.
	AutoResize *autoresize.Policy

	SettleDelay time.Duration
}

// Callbacks carry notifications to the owner. Any of them may be nil.
type Callbacks struct {
	OnChange           func(value string)
	OnClear            func()
	OnSuggestionSelect func(suggestion string)
	OnFocus            func()
	OnBlur             func()
}

func (o Options) settleDelay() time.Duration {
	if o.SettleDelay <= 0 {
		return DefaultSettleDelay
	}
	return o.SettleDelay
}

func (o Options) searchMode() bool {
	return o.Variant == VariantSearch
}

func (o Options) canClear() bool {
	return o.Clearable && !o.ReadOnly && !o.Disabled
}
