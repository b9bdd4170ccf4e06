package utils

import (
	"fmt"
	"net/mail"
	"strings"
)

// NormalizeEmail trims the address and checks it parses as a single bare
// mailbox. Display names ("Jane <jane@x.io>") are rejected.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("invalid email address %q", email)
	}
	return addr.Address, nil
}

// Ordinal renders n with its English ordinal suffix: 1st, 2nd, 11th, 23rd.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
