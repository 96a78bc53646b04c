package validators

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/vnshop/identity/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPhone    = "phone"
)

// passwordMinLength is the minimum accepted password size. Passwords are
// hashed with bcrypt, which silently truncates beyond 72 bytes; the hash
// helper enforces the upper bound.
const passwordMinLength = 6

// CredentialsValidator checks registration input before it reaches the
// service layer. It is stateless and safe for concurrent use.
type CredentialsValidator struct {
}

func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{}
}

// ValidateRegistration checks the given fields of a registration request.
// With no explicit fields all of them are checked. Phone is optional:
// an empty phone passes, a non-empty one must normalize to digits.
func (v *CredentialsValidator) ValidateRegistration(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldPhone}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !IsValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(request.Password) < passwordMinLength {
				return ErrInvalidPassword
			}
		case FieldPhone:
			if request.Phone != "" && NormalizePhone(request.Phone) == "" {
				return ErrInvalidPhone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsValidEmail reports whether address parses as a bare RFC 5322 address.
// Display names ("Jane <jane@example.com>") are rejected.
func IsValidEmail(address string) bool {
	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return false
	}
	return parsed.Address == address
}

// NormalizePhone reduces a human-entered phone number to its digits,
// keeping a single leading plus. Separators, parentheses and whitespace
// are dropped. A number that yields no digits normalizes to "".
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))

	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}

	normalized := b.String()
	if strings.TrimPrefix(normalized, "+") == "" {
		return ""
	}
	return normalized
}
