// Package api provides a client for the leadline backend API.
package api

import "time"

// Lead statuses as reported by the backend.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusWon       = "won"
	LeadStatusLost      = "lost"
)

// Lead represents an inbound lead.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Source    string    `json:"source"` // "web", "phone", "referral", campaign slug
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Booking represents a scheduled appointment created from a lead.
type Booking struct {
	ID       string    `json:"id"`
	LeadID   string    `json:"leadId"`
	LeadName string    `json:"leadName"`
	Service  string    `json:"service"`
	StartsAt time.Time `json:"startsAt"`
	Status   string    `json:"status"` // "confirmed", "pending", "cancelled"
}

// Campaign represents an outreach campaign.
type Campaign struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Channel   string  `json:"channel"` // "sms", "email"
	Paused    bool    `json:"paused"`
	LeadCount int     `json:"leadCount"`
	ReplyRate float64 `json:"replyRate"` // 0..1
}

// DayCount is one bucket of the daily lead series.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// Stats is the dashboard summary payload.
type Stats struct {
	TotalLeads        int        `json:"totalLeads"`
	NewToday          int        `json:"newToday"`
	BookingsThisWeek  int        `json:"bookingsThisWeek"`
	ResponseRate      float64    `json:"responseRate"`      // 0..1
	MedianResponseSec int        `json:"medianResponseSec"` // seconds to first response
	Series            []DayCount `json:"series"`            // daily leads, oldest first
}
