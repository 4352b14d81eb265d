// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Data loading
	OpLoadStats     Op = "load dashboard stats"
	OpLoadLeads     Op = "load leads"
	OpLoadBookings  Op = "load bookings"
	OpLoadCampaigns Op = "load campaigns"

	// Mutations
	OpUpdateLead     Op = "update lead status"
	OpToggleCampaign Op = "pause/resume campaign"

	// Persistence
	OpStateLoad Op = "load saved state"
	OpStateSave Op = "save state"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
