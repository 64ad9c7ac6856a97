package kernel

import (
	"fmt"
	"strings"

	"booking/internal/pkg/errs"
)

// Language is a value object holding a normalized language code, e.g. "sv" or
// "fin". Jobs carry the language the customer needs interpreted; translators
// carry the set of languages they work in. Comparison is case-insensitive:
// codes are lowercased on construction.
//
// The zero value is invalid; use NewLanguage.
type Language struct {
	code string
}

const (
	minLanguageLen = 2
	maxLanguageLen = 8
)

// NewLanguage creates a Language from a raw code. The code is trimmed and
// lowercased. Returns a validation error if the code is empty, of invalid
// length, or contains characters outside [a-z-].
func NewLanguage(code string) (Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return Language{}, errs.NewValueIsRequiredError("language")
	}
	if len(code) < minLanguageLen || len(code) > maxLanguageLen {
		return Language{}, errs.NewValueIsOutOfRangeError("language length", len(code), minLanguageLen, maxLanguageLen)
	}
	for _, r := range code {
		if (r < 'a' || r > 'z') && r != '-' {
			return Language{}, errs.NewValueIsInvalidErrorWithCause("language",
				fmt.Errorf("%q contains invalid character %q", code, r))
		}
	}
	return Language{code: code}, nil
}

// Code returns the normalized language code.
func (l Language) Code() string {
	return l.code
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return l.code
}

// IsEqual compares two languages by normalized code.
func (l Language) IsEqual(other Language) bool {
	return l.code == other.code
}

// Validate checks that the Language was created via NewLanguage.
func (l Language) Validate() error {
	if l.code == "" {
		return errs.NewValueIsRequiredError("language must be created via NewLanguage")
	}
	return nil
}
