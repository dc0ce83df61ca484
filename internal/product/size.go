package product

import (
	"strings"

	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
)

// Size of a product. The zero value means no size was chosen.
type Size int

const (
	SizeUnset Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "Small"
	case SizeMedium:
		return "Medium"
	case SizeLarge:
		return "Large"
	default:
		return ""
	}
}

// IsSet reports whether a size was chosen.
func (s Size) IsSet() bool {
	return s >= SizeSmall && s <= SizeLarge
}

// ParseSize accepts the display labels case-insensitively. An empty string
// yields SizeUnset.
func ParseSize(label string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "":
		return SizeUnset, nil
	case "small":
		return SizeSmall, nil
	case "medium":
		return SizeMedium, nil
	case "large":
		return SizeLarge, nil
	}
	return SizeUnset, pizzeria.NewInvalidArgumentf("%s: %q", ErrMsgUnknownSize, label)
}

// MarshalText renders the size label.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a size label.
func (s *Size) UnmarshalText(text []byte) error {
	parsed, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
