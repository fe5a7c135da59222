package utils

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)

	lowerRe   = regexp.MustCompile(`[a-z]`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailRe.MatchString(email)
}

// IsStrongPassword requires at least 8 characters with one uppercase,
// one lowercase, one digit and one special character.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return lowerRe.MatchString(password) &&
		upperRe.MatchString(password) &&
		digitRe.MatchString(password) &&
		specialRe.MatchString(password)
}

// IsValidName accepts 2-100 characters of letters, spaces, hyphens and
// apostrophes.
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 || len(trimmed) > 100 {
		return false
	}
	return nameRe.MatchString(trimmed)
}

// ValidateRegistration collects every problem with a signup request so the
// client can show them all at once.
func ValidateRegistration(name, email, password string) []string {
	var problems []string

	if name == "" {
		problems = append(problems, "Full name is required")
	} else if !IsValidName(name) {
		problems = append(problems, "Name must be 2-100 characters and contain only letters, spaces, hyphens, or apostrophes")
	}

	if email == "" {
		problems = append(problems, "Email is required")
	} else if !IsValidEmail(email) {
		problems = append(problems, "Invalid email format")
	}

	if password == "" {
		problems = append(problems, "Password is required")
	} else if !IsStrongPassword(password) {
		problems = append(problems, "Password must be at least 8 characters long and include: 1 uppercase, 1 lowercase, 1 digit, and 1 special character")
	}

	return problems
}
