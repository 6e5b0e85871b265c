package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTitle is used until the pipeline receives a suggested title.
const DefaultSessionTitle = "Untitled Session"

type QuerySession struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	DatabaseID  uuid.UUID `json:"database_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *QuerySession) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Title == "" {
		s.Title = DefaultSessionTitle
	}
}

// SessionOwner carries the owner display fields expanded on session reads.
type SessionOwner struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// SessionDatabase carries the referenced connection's display name.
type SessionDatabase struct {
	Name string `json:"name"`
}

// QuerySessionDetail is a session with its references expanded.
type QuerySessionDetail struct {
	QuerySession
	Owner    SessionOwner    `json:"owner"`
	Database SessionDatabase `json:"database"`
}
