// Package validation holds pure field-level rules for quotation drafts,
// decoupled from persistence so they are unit-testable without a database.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/quotedesk/quotedesk/internal/domain"
	"github.com/quotedesk/quotedesk/internal/errors"
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
	phoneRegex    = regexp.MustCompile(`^[0-9]{10,15}$`)
)

func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidPhone accepts formatted input ("+1 (555) 010-2030") and checks that
// 10 to 15 digits remain after stripping everything else.
func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(nonDigitRegex.ReplaceAllString(phone, ""))
}

// NormalizePhone returns just the digits of a phone number.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// QuotationDraft checks every field rule and returns all violations at
// once. A nil error means the draft is valid.
func QuotationDraft(d domain.QuotationDraft) error {
	var messages []string

	// length rules count characters, not bytes
	if utf8.RuneCountInString(strings.TrimSpace(d.Name)) < 2 {
		messages = append(messages, "Name must be at least 2 characters")
	}
	if d.Email == "" || !ValidEmail(d.Email) {
		messages = append(messages, "Valid email is required")
	}
	if d.Phone == "" || !ValidPhone(d.Phone) {
		messages = append(messages, "Valid phone number is required")
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Company)) < 2 {
		messages = append(messages, "Company name is required")
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.RequirementDescription)) < 10 {
		messages = append(messages, "Requirement description must be at least 10 characters")
	}
	if d.Budget <= 0 {
		messages = append(messages, "Budget must be greater than 0")
	}

	if len(messages) > 0 {
		return &errors.ValidationError{Messages: messages}
	}
	return nil
}
