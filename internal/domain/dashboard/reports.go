// Package dashboard defines the read-only reporting views computed over a
// project's tickets, comments and supervisors.
package dashboard

import "time"

// StatusReport holds the open/closed split of a project's tickets.
type StatusReport struct {
	Open   int64
	Closed int64
}

// PriorityReport counts tickets by priority alongside the open/closed split.
type PriorityReport struct {
	High   int64
	Medium int64
	Low    int64
	Open   int64
	Closed int64
}

// TicketSummary is the slim ticket view used in latest-ticket listings.
type TicketSummary struct {
	ID        uint
	Index     uint
	Title     string
	Priority  string
	Closed    bool
	CreatorID uint
	CreatedAt time.Time
}

// CommentorCount pairs a user's public profile with their comment count.
type CommentorCount struct {
	UserID       uint
	Name         string
	Email        string
	ProfileImage string
	Count        int64
}

// DayCount is the number of tickets created on a single day.
type DayCount struct {
	Day   string
	Count int64
}

// SupervisorCount ranks a supervisor by the tickets they created.
type SupervisorCount struct {
	UserID       uint
	Name         string
	Email        string
	ProfileImage string
	Count        int64
}
