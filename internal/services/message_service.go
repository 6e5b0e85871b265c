package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"voxql/internal/apperrors"
	"voxql/internal/models"

	"github.com/google/uuid"
)

// MessageStore is the persistence surface the pipeline needs: messages are
// write-once and read back in newest-first session order.
type MessageStore interface {
	Create(msg *models.QueryMessage) error
	GetBySessionID(sessionID uuid.UUID) ([]models.QueryMessageDetail, error)
}

// NLQClient is the outbound call the pipeline delegates translation to.
type NLQClient interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResult, error)
}

type MessageService struct {
	connRepo    ConnectionStore
	sessionRepo SessionStore
	messageRepo MessageStore
	nlq         NLQClient
	encryptor   Encryptor
}

func NewMessageService(connRepo ConnectionStore, sessionRepo SessionStore, messageRepo MessageStore, nlq NLQClient, encryptor Encryptor) *MessageService {
	return &MessageService{
		connRepo:    connRepo,
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		nlq:         nlq,
		encryptor:   encryptor,
	}
}

type CreateMessageRequest struct {
	DatabaseID   uuid.UUID `json:"database_id" binding:"required"`
	RequestQuery string    `json:"request_query" binding:"required"`
}

// Create runs one question through the pipeline: resolve the connection,
// call the NLQ service, persist the exchange, and best-effort rename the
// session title if the service suggested one. Any failure before persistence
// leaves no trace; there are no retries.
func (s *MessageService) Create(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, req CreateMessageRequest) (*models.QueryMessage, error) {
	start := time.Now()

	session, err := s.sessionRepo.GetByIDAndUserID(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: query session not found", apperrors.ErrNotFound)
	}

	conn, err := s.connRepo.GetByIDAndUserID(req.DatabaseID, userID)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, fmt.Errorf("%w: database configuration not found", apperrors.ErrNotFound)
	}

	password, err := s.encryptor.Decrypt(conn.PasswordEncrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt connection credentials: %w", err)
	}

	result, err := s.nlq.Chat(ctx, ChatRequest{
		Query:    req.RequestQuery,
		DBType:   conn.DBType,
		Host:     conn.Host,
		User:     conn.Username,
		Password: password,
		DBName:   conn.DatabaseName,
	})
	if err != nil {
		return nil, err
	}

	requestQuery := result.UserQuery
	if requestQuery == "" {
		requestQuery = req.RequestQuery
	}

	msg := &models.QueryMessage{
		SessionID:      sessionID,
		UserID:         userID,
		RequestQuery:   requestQuery,
		SQLQuery:       result.SQLQuery,
		SQLResponse:    result.Rows,
		Summary:        result.Summary,
		ThoughtProcess: result.ThoughtProcess,
	}
	msg.ExecutionTimeMs = time.Since(start).Milliseconds()

	if err := s.messageRepo.Create(msg); err != nil {
		return nil, err
	}

	// Best-effort side effect: its failure never fails the request.
	if result.Title != nil {
		if err := s.sessionRepo.UpdateTitle(sessionID, *result.Title); err != nil {
			log.Printf("failed to update session %s title: %v", sessionID, err)
		}
	}

	return msg, nil
}

// GetBySession returns the session's full history, newest first. An existing
// session with no history yet yields an empty slice, not an error.
func (s *MessageService) GetBySession(sessionID uuid.UUID, userID uuid.UUID) ([]models.QueryMessageDetail, error) {
	session, err := s.sessionRepo.GetByIDAndUserID(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: query session not found", apperrors.ErrNotFound)
	}

	messages, err := s.messageRepo.GetBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.QueryMessageDetail{}
	}
	return messages, nil
}
