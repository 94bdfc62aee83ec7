package portal

import (
	"fmt"
	"strings"

	"github.com/mcoot/gameportal/internal/model"
)

// Password length limits for the sign-up form. The maximum is in bytes and
// matches what bcrypt can hash.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// ValidateRegistration applies the sign-up form rules. The directory itself
// accepts any strings; these checks belong to the presentation layer.
func ValidateRegistration(username, email, password, confirm string) error {
	switch {
	case strings.TrimSpace(username) == "", strings.TrimSpace(email) == "", password == "":
		return fmt.Errorf("%w: please fill in all fields", model.ErrInvalidInput)
	case password != confirm:
		return fmt.Errorf("%w: passwords do not match", model.ErrInvalidInput)
	case len(password) < MinPasswordLength:
		return fmt.Errorf("%w: password must be at least %d characters", model.ErrInvalidInput, MinPasswordLength)
	case len(password) > MaxPasswordLength:
		return fmt.Errorf("%w: password must be at most %d bytes", model.ErrInvalidInput, MaxPasswordLength)
	}
	return nil
}

// ValidateLogin applies the sign-in form rules
func ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("%w: please fill in all fields", model.ErrInvalidInput)
	}
	return nil
}
