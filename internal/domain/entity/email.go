package entity

import (
	"regexp"
	"strings"

	"github.com/DioGolang/GoSlices/pkg/apperr"
)

var emailPattern = regexp.MustCompile(`(?i)^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is a normalised (lower case) address.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Email{}, apperr.Invalid("email", "cannot be empty")
	}
	if !emailPattern.MatchString(raw) {
		return Email{}, apperr.Invalid("email", "invalid email format")
	}
	return Email{value: strings.ToLower(raw)}, nil
}

func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }

func (e Email) IsZero() bool { return e.value == "" }
