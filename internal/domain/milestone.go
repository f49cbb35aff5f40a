package domain

import "time"

// MilestoneKind is an open-ended label; these are the ones the frontend
// offers by default.
type MilestoneKind string

const (
	MilestoneReview   MilestoneKind = "review"
	MilestoneBirthday MilestoneKind = "birthday"
	MilestoneRenewal  MilestoneKind = "renewal"
	MilestoneRRSP     MilestoneKind = "rrsp_deadline"
	MilestoneOther    MilestoneKind = "other"
)

// Milestone is a dated event logged against a client.
type Milestone struct {
	ID        string        `json:"id"`
	UserID    int           `json:"user_id"`
	ClientID  string        `json:"client_id"`
	Date      string        `json:"date"`
	Kind      MilestoneKind `json:"kind"`
	Title     string        `json:"title"`
	Notes     string        `json:"notes,omitempty"`
	Completed bool          `json:"completed"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
