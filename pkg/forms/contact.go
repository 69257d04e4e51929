package forms

import (
	"strings"
	"unicode/utf8"
)

// spamKeywords are matched as case-insensitive substrings anywhere in
// the message.
var spamKeywords = []string{"viagra", "casino", "lottery", "winner", "click here", "make money"}

// maxRepeatedChars is the longest allowed run of one character in a
// message.
const maxRepeatedChars = 10

// ContactInput is the raw contact form payload. Missing fields arrive
// as empty strings.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Message string `json:"message"`
}

// ContactForm is a normalized, accepted contact submission: name and
// city title-cased, email lowercased, phone kept with its original
// formatting.
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	City    string
	Message string
}

// ValidateContact runs every per-field check, then the anti-spam pass
// over the message once all fields are clean. Validation is
// all-or-nothing: either a normalized form or a non-empty error map.
func ValidateContact(in ContactInput) (*ContactForm, Errors) {
	errs := Errors{}
	form := &ContactForm{}

	name := strings.TrimSpace(in.Name)
	if normalized, msg := checkName(name); msg != "" {
		errs.Add("name", msg)
	} else {
		form.Name = normalized
	}

	email := strings.TrimSpace(in.Email)
	if normalized, msg := checkEmail(email); msg != "" {
		errs.Add("email", msg)
	} else {
		form.Email = normalized
	}

	phone := strings.TrimSpace(in.Phone)
	if phone != "" {
		if normalized, msg := checkPhone(phone); msg != "" {
			errs.Add("phone", msg)
		} else {
			form.Phone = normalized
		}
	}

	city := strings.TrimSpace(in.City)
	if city != "" {
		if normalized, msg := checkCity(city); msg != "" {
			errs.Add("city", msg)
		} else {
			form.City = normalized
		}
	}

	message := strings.TrimSpace(in.Message)
	switch {
	case message == "":
		errs.Add("message", "Message is required.")
	case utf8.RuneCountInString(message) < 10:
		errs.Add("message", "Message must be at least 10 characters long.")
	case utf8.RuneCountInString(message) > 1000:
		errs.Add("message", "Message cannot exceed 1000 characters.")
	default:
		form.Message = message
	}

	// Spam pass runs once the per-field checks are clean, so its
	// verdict never masks ordinary field diagnostics.
	if len(errs) == 0 {
		lower := strings.ToLower(form.Message)
		for _, keyword := range spamKeywords {
			if strings.Contains(lower, keyword) {
				errs.Add("message", "Your message contains inappropriate content. Please revise and try again.")
				break
			}
		}
		if maxRepeatRun(form.Message) > maxRepeatedChars {
			errs.Add("message", "Your message contains invalid content. Please revise and try again.")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return form, nil
}
