package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ticketapp/ticketapp/pkg/types"
)

// FieldError describes a single validation violation. Violations are
// returned in field order, never raised; callers render the list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Canonical ticket bounds. The title and description limits match the
// submission form rules of the original application.
const (
	TitleMinLen       = 3
	TitleMaxLen       = 100
	DescriptionMinLen = 3
	DescriptionMaxLen = 1000

	PasswordMinLen = 6
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateTicket checks caller-supplied ticket fields and returns the
// ordered list of violations. Lengths are counted in runes.
func ValidateTicket(input types.TicketInput) []FieldError {
	var errs []FieldError

	title := strings.TrimSpace(input.Title)
	switch {
	case title == "":
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	case utf8.RuneCountInString(input.Title) < TitleMinLen:
		errs = append(errs, FieldError{Field: "title", Message: "Title must be at least 3 characters long"})
	case utf8.RuneCountInString(input.Title) > TitleMaxLen:
		errs = append(errs, FieldError{Field: "title", Message: "Title must not exceed 100 characters"})
	}

	description := strings.TrimSpace(input.Description)
	switch {
	case description == "":
		errs = append(errs, FieldError{Field: "description", Message: "Description is required"})
	case utf8.RuneCountInString(input.Description) < DescriptionMinLen:
		errs = append(errs, FieldError{Field: "description", Message: "Description must be at least 3 characters long"})
	case utf8.RuneCountInString(input.Description) > DescriptionMaxLen:
		errs = append(errs, FieldError{Field: "description", Message: "Description must not exceed 1000 characters"})
	}

	if !types.IsValidStatus(input.Status) {
		errs = append(errs, FieldError{Field: "status", Message: "Status must be open, in_progress, or closed"})
	}

	if !types.IsValidPriority(input.Priority) {
		errs = append(errs, FieldError{Field: "priority", Message: "Priority must be low, medium, or high"})
	}

	return errs
}

// ValidateSignup checks registration fields before they reach the
// identity module.
func ValidateSignup(email, password, name string) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}

	switch {
	case strings.TrimSpace(email) == "":
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	case !emailPattern.MatchString(email):
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email"})
	}

	switch {
	case strings.TrimSpace(password) == "":
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	case utf8.RuneCountInString(password) < PasswordMinLen:
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}

	return errs
}
