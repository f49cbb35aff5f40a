package domain

import "time"

// ProspectStage is the intake funnel position. Won and lost are terminal.
type ProspectStage string

const (
	StageLead      ProspectStage = "lead"
	StageContacted ProspectStage = "contacted"
	StageMeeting   ProspectStage = "meeting"
	StageProposal  ProspectStage = "proposal"
	StageWon       ProspectStage = "won"
	StageLost      ProspectStage = "lost"
)

// FunnelOrder lists the stages in pipeline order for summaries.
var FunnelOrder = []ProspectStage{
	StageLead,
	StageContacted,
	StageMeeting,
	StageProposal,
	StageWon,
	StageLost,
}

// ValidStage reports whether s is a known funnel stage.
func ValidStage(s ProspectStage) bool {
	for _, stage := range FunnelOrder {
		if stage == s {
			return true
		}
	}
	return false
}

// Terminal reports whether a stage ends the funnel.
func (s ProspectStage) Terminal() bool {
	return s == StageWon || s == StageLost
}

// Prospect is a lead moving through the intake funnel. StageChangedAt
// drives the stale sweep; Stale is set by the scheduler, cleared on any
// stage move.
type Prospect struct {
	ID             string        `json:"id"`
	UserID         int           `json:"user_id"`
	Name           string        `json:"name"`
	Email          *string       `json:"email"`
	Phone          *string       `json:"phone"`
	Source         string        `json:"source,omitempty"`
	Stage          ProspectStage `json:"stage"`
	Stale          bool          `json:"stale"`
	Notes          string        `json:"notes,omitempty"`
	StageChangedAt time.Time     `json:"stage_changed_at"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// FunnelSummary counts prospects per stage.
type FunnelSummary struct {
	Stages map[ProspectStage]int `json:"stages"`
	Total  int                   `json:"total"`
	Stale  int                   `json:"stale"`
	// ConversionRate is the won share of all prospects, as a percentage.
	ConversionRate float64 `json:"conversion_rate"`
}
