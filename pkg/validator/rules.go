package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value, message string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: message,
			Code:    "validation.required",
		},
	}
}

// MinLen counts characters, not bytes.
func MinLen(field, value string, min int, label string) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at least %d characters long", label, min),
			Code:    "validation.min_length",
		},
	}
}

// MaxLen counts characters, not bytes.
func MaxLen(field, value string, max int, label string) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters long", label, max),
			Code:    "validation.max_length",
		},
	}
}

// ValidEmail accepts a bare RFC 5322 address whose domain has at least two labels.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "Not a valid email",
			Code:    "validation.email",
		},
	}
}

// IsEmail reports whether value is a bare email address.
func IsEmail(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || addr.Name != "" {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

func HasDigit(field, value string) Rule {
	return charClass(field, value, unicode.IsDigit, "Password must contain at least 1 number", "validation.password_digit")
}

func HasSpecialChar(field, value string) Rule {
	return charClass(field, value, isSpecial, "Password must contain at least 1 special character", "validation.password_special")
}

func HasLowercase(field, value string) Rule {
	return charClass(field, value, unicode.IsLower, "Password must contain at least 1 lowercase character", "validation.password_lowercase")
}

func HasUppercase(field, value string) Rule {
	return charClass(field, value, unicode.IsUpper, "Password must contain at least 1 uppercase character", "validation.password_uppercase")
}

func charClass(field, value string, match func(rune) bool, message, key string) Rule {
	return Rule{
		Check: func() bool {
			return strings.ContainsFunc(value, match)
		},
		Error: ValidationError{
			Field:   field,
			Message: message,
			Code:    key,
		},
	}
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
