// Package forms validates and normalizes public form submissions.
// Everything in here is pure: raw text in, a normalized value or a set
// of field errors out. Persistence and notification live elsewhere.
package forms

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Errors maps a field name to its validation messages, in the order
// the checks ran.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Pakistan numbers: optional +92/92/0 prefix, then 10-11 digits.
	phoneRe = regexp.MustCompile(`^(\+92|92|0)?[0-9]{10,11}$`)
)

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// stripPhoneFormatting removes whitespace, hyphens and parentheses so
// the digit string can be matched. The stored value keeps the
// submitter's formatting.
func stripPhoneFormatting(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '-', '(', ')':
			return -1
		}
		return r
	}, s)
}

// maxRepeatRun returns the length of the longest run of one character.
func maxRepeatRun(s string) int {
	var prev rune
	run, max := 0, 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run > max {
			max = run
		}
	}
	return max
}

func checkName(name string) (string, string) {
	if name == "" {
		return "", "Name is required."
	}
	if utf8.RuneCountInString(name) < 2 {
		return "", "Name must be at least 2 characters long."
	}
	if utf8.RuneCountInString(name) > 50 {
		return "", "Name cannot exceed 50 characters."
	}
	if !nameRe.MatchString(name) {
		return "", "Name can only contain letters and spaces."
	}
	return titleCase(name), ""
}

func checkEmail(email string) (string, string) {
	email = strings.ToLower(email)
	if email == "" {
		return "", "Email address is required."
	}
	if utf8.RuneCountInString(email) > 100 {
		return "", "Email address is too long."
	}
	if !emailRe.MatchString(email) {
		return "", "Please enter a valid email address (e.g., user@example.com)."
	}
	return email, ""
}

func checkPhone(phone string) (string, string) {
	if utf8.RuneCountInString(phone) > 20 {
		return "", "Phone number is too long."
	}
	if !phoneRe.MatchString(stripPhoneFormatting(phone)) {
		return "", "Please enter a valid Pakistan phone number (e.g., 03001234567 or +923001234567)."
	}
	return phone, ""
}

func checkCity(city string) (string, string) {
	if utf8.RuneCountInString(city) < 2 {
		return "", "City name must be at least 2 characters long."
	}
	if utf8.RuneCountInString(city) > 50 {
		return "", "City name cannot exceed 50 characters."
	}
	if !nameRe.MatchString(city) {
		return "", "City name can only contain letters and spaces."
	}
	return titleCase(city), ""
}
