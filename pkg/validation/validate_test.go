package validation

import (
	"strings"
	"testing"

	"github.com/ticketapp/ticketapp/pkg/types"
)

func fields(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateTicket(t *testing.T) {
	valid := types.TicketInput{
		Title:       "Fix login redirect",
		Description: "Users land on a 404 after logging in",
		Status:      types.StatusOpen,
		Priority:    types.PriorityLow,
	}

	tests := []struct {
		name       string
		mutate     func(*types.TicketInput)
		wantFields []string
	}{
		{
			name:       "valid input",
			mutate:     func(in *types.TicketInput) {},
			wantFields: nil,
		},
		{
			name:       "missing title",
			mutate:     func(in *types.TicketInput) { in.Title = "" },
			wantFields: []string{"title"},
		},
		{
			name:       "whitespace title",
			mutate:     func(in *types.TicketInput) { in.Title = "   " },
			wantFields: []string{"title"},
		},
		{
			name:       "title too short",
			mutate:     func(in *types.TicketInput) { in.Title = "ab" },
			wantFields: []string{"title"},
		},
		{
			name:       "title at max length",
			mutate:     func(in *types.TicketInput) { in.Title = strings.Repeat("x", 100) },
			wantFields: nil,
		},
		{
			name:       "title too long",
			mutate:     func(in *types.TicketInput) { in.Title = strings.Repeat("x", 101) },
			wantFields: []string{"title"},
		},
		{
			name:       "multibyte title counted in runes",
			mutate:     func(in *types.TicketInput) { in.Title = strings.Repeat("é", 100) },
			wantFields: nil,
		},
		{
			name:       "missing description",
			mutate:     func(in *types.TicketInput) { in.Description = "" },
			wantFields: []string{"description"},
		},
		{
			name:       "description too short",
			mutate:     func(in *types.TicketInput) { in.Description = "ab" },
			wantFields: []string{"description"},
		},
		{
			name:       "description too long",
			mutate:     func(in *types.TicketInput) { in.Description = strings.Repeat("x", 1001) },
			wantFields: []string{"description"},
		},
		{
			name:       "invalid status",
			mutate:     func(in *types.TicketInput) { in.Status = "reopened" },
			wantFields: []string{"status"},
		},
		{
			name:       "empty status",
			mutate:     func(in *types.TicketInput) { in.Status = "" },
			wantFields: []string{"status"},
		},
		{
			name:       "invalid priority",
			mutate:     func(in *types.TicketInput) { in.Priority = "urgent" },
			wantFields: []string{"priority"},
		},
		{
			name: "multiple violations in field order",
			mutate: func(in *types.TicketInput) {
				in.Title = ""
				in.Status = "bogus"
				in.Priority = "bogus"
			},
			wantFields: []string{"title", "status", "priority"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			got := fields(ValidateTicket(input))
			if len(got) != len(tt.wantFields) {
				t.Fatalf("ValidateTicket() fields = %v, want %v", got, tt.wantFields)
			}
			for i := range got {
				if got[i] != tt.wantFields[i] {
					t.Errorf("ValidateTicket() fields = %v, want %v", got, tt.wantFields)
					break
				}
			}
		})
	}
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name                  string
		email, password, user string
		wantFields            []string
	}{
		{
			name:  "valid input",
			email: "ada@example.com", password: "hunter22", user: "Ada",
			wantFields: nil,
		},
		{
			name:  "missing everything",
			email: "", password: "", user: "",
			wantFields: []string{"name", "email", "password"},
		},
		{
			name:  "bad email format",
			email: "not-an-email", password: "hunter22", user: "Ada",
			wantFields: []string{"email"},
		},
		{
			name:  "email without tld",
			email: "ada@localhost", password: "hunter22", user: "Ada",
			wantFields: []string{"email"},
		},
		{
			name:  "short password",
			email: "ada@example.com", password: "12345", user: "Ada",
			wantFields: []string{"password"},
		},
		{
			name:  "six char password passes",
			email: "ada@example.com", password: "123456", user: "Ada",
			wantFields: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fields(ValidateSignup(tt.email, tt.password, tt.user))
			if len(got) != len(tt.wantFields) {
				t.Fatalf("ValidateSignup() fields = %v, want %v", got, tt.wantFields)
			}
			for i := range got {
				if got[i] != tt.wantFields[i] {
					t.Errorf("ValidateSignup() fields = %v, want %v", got, tt.wantFields)
					break
				}
			}
		})
	}
}
