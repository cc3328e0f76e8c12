package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lax56237/Daily-Drop/internal/pkg/errs"
)

// ErrEmailIsNotConstructed is returned by Validate for an empty Email.
var ErrEmailIsNotConstructed = errors.New("email must be created via NewEmail")

// Email is the buyer identity. It is trimmed and lower-cased so that
// "Asha@Example.com" and "asha@example.com" address the same cart.
type Email struct {
	value string
}

// NewEmail normalizes and validates an address of the form local@domain.
func NewEmail(raw string) (Email, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	at := strings.IndexByte(value, '@')
	if at <= 0 || at == len(value)-1 || strings.Count(value, "@") != 1 {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", raw))
	}
	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}

// IsEqual reports whether both emails are identical after normalization.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// Validate returns ErrEmailIsNotConstructed for the zero value.
func (e Email) Validate() error {
	if e.value == "" {
		return ErrEmailIsNotConstructed
	}
	return nil
}
