package domain

import "time"

// Household groups clients that are managed together.
type Household struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	Segment   string    `json:"segment,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Members   []*Client `json:"members,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Client is one person inside a household.
type Client struct {
	ID            string     `json:"id"`
	HouseholdID   string     `json:"household_id"`
	Name          string     `json:"name"`
	Lastname      string     `json:"lastname"`
	Email         *string    `json:"email"`
	Phone         *string    `json:"phone"`
	BirthDate     *string    `json:"birth_date"`
	ReviewCadence string     `json:"review_cadence,omitempty"`
	NextReviewAt  *time.Time `json:"next_review_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type UpdateHouseholdRequest struct {
	ID      string  `json:"id"`
	Name    *string `json:"name"`
	Segment *string `json:"segment"`
	Notes   *string `json:"notes"`
}

type UpdateClientRequest struct {
	ID            string  `json:"id"`
	Name          *string `json:"name"`
	Lastname      *string `json:"lastname"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	BirthDate     *string `json:"birth_date"`
	ReviewCadence *string `json:"review_cadence"`
}
