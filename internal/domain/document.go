package domain

import "time"

// Document is a library record. Only metadata lives here; the binary is
// stored by the frontend's upload target.
type Document struct {
	ID          string    `json:"id"`
	UserID      int       `json:"user_id"`
	ClientID    *string   `json:"client_id"`
	Title       string    `json:"title"`
	Category    string    `json:"category,omitempty"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type,omitempty"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
