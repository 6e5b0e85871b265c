package services

import (
	"fmt"

	"voxql/internal/apperrors"
	"voxql/internal/models"

	"github.com/google/uuid"
)

// SessionStore is the persistence surface the session store needs.
type SessionStore interface {
	Create(session *models.QuerySession) error
	GetByUserID(userID uuid.UUID) ([]models.QuerySessionDetail, error)
	GetByIDAndUserID(id uuid.UUID, userID uuid.UUID) (*models.QuerySessionDetail, error)
	UpdateTitle(id uuid.UUID, title string) error
}

type SessionService struct {
	sessionRepo SessionStore
}

func NewSessionService(sessionRepo SessionStore) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

type CreateSessionRequest struct {
	DatabaseID  uuid.UUID `json:"database_id" binding:"required"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
}

// Create persists a new session. The referenced database connection is not
// existence-checked here; a dangling reference is the caller's responsibility
// and is caught by the schema's foreign key.
func (s *SessionService) Create(userID uuid.UUID, req CreateSessionRequest) (*models.QuerySession, error) {
	session := &models.QuerySession{
		UserID:      userID,
		DatabaseID:  req.DatabaseID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *SessionService) ListForOwner(userID uuid.UUID) ([]models.QuerySessionDetail, error) {
	return s.sessionRepo.GetByUserID(userID)
}

func (s *SessionService) GetByID(id uuid.UUID, userID uuid.UUID) (*models.QuerySessionDetail, error) {
	session, err := s.sessionRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: query session not found", apperrors.ErrNotFound)
	}
	return session, nil
}
