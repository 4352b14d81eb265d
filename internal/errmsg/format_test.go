package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpLoadLeads,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpLoadLeads,
			err:      errors.New("connection refused"),
			expected: "Failed to load leads: connection refused",
		},
		{
			name:     "mutation operation",
			op:       OpUpdateLead,
			err:      errors.New("conflict"),
			expected: "Failed to update lead status: conflict",
		},
		{
			name:     "persistence operation",
			op:       OpStateSave,
			err:      errors.New("disk full"),
			expected: "Failed to save state: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	err := errors.New("not found")

	if got := FormatWith(OpToggleCampaign, "Spring promo", err); got != "Failed to pause/resume campaign 'Spring promo': not found" {
		t.Errorf("FormatWith = %q", got)
	}
	if got := FormatWith(OpToggleCampaign, "", err); got != Format(OpToggleCampaign, err) {
		t.Errorf("empty context should fall back to Format, got %q", got)
	}
	if got := FormatWith(OpToggleCampaign, "x", nil); got != "" {
		t.Errorf("nil error should return empty, got %q", got)
	}
}
