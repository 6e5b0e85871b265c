package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"voxql/internal/models"

	"github.com/google/uuid"
)

type fakeConnStore struct {
	conns map[uuid.UUID]*models.DatabaseConnection
}

func newFakeConnStore() *fakeConnStore {
	return &fakeConnStore{conns: make(map[uuid.UUID]*models.DatabaseConnection)}
}

func (f *fakeConnStore) Create(conn *models.DatabaseConnection) error {
	conn.Prepare()
	conn.CreatedAt = time.Now()
	conn.UpdatedAt = conn.CreatedAt
	copied := *conn
	f.conns[conn.ID] = &copied
	return nil
}

func (f *fakeConnStore) GetByUserID(userID uuid.UUID) ([]models.DatabaseConnection, error) {
	var out []models.DatabaseConnection
	for _, c := range f.conns {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeConnStore) GetByIDAndUserID(id uuid.UUID, userID uuid.UUID) (*models.DatabaseConnection, error) {
	c, ok := f.conns[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeConnStore) Update(conn *models.DatabaseConnection) error {
	existing, ok := f.conns[conn.ID]
	if !ok || existing.UserID != conn.UserID {
		return nil
	}
	copied := *conn
	f.conns[conn.ID] = &copied
	return nil
}

func (f *fakeConnStore) DeleteByIDAndUserID(id uuid.UUID, userID uuid.UUID) (int64, error) {
	c, ok := f.conns[id]
	if !ok || c.UserID != userID {
		return 0, nil
	}
	delete(f.conns, id)
	return 1, nil
}

type fakeSessionStore struct {
	sessions       map[uuid.UUID]*models.QuerySessionDetail
	updateTitleErr error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[uuid.UUID]*models.QuerySessionDetail)}
}

func (f *fakeSessionStore) Create(session *models.QuerySession) error {
	session.Prepare()
	session.CreatedAt = time.Now()
	session.UpdatedAt = session.CreatedAt
	f.sessions[session.ID] = &models.QuerySessionDetail{QuerySession: *session}
	return nil
}

func (f *fakeSessionStore) GetByUserID(userID uuid.UUID) ([]models.QuerySessionDetail, error) {
	var out []models.QuerySessionDetail
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionStore) GetByIDAndUserID(id uuid.UUID, userID uuid.UUID) (*models.QuerySessionDetail, error) {
	s, ok := f.sessions[id]
	if !ok || s.UserID != userID {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionStore) UpdateTitle(id uuid.UUID, title string) error {
	if f.updateTitleErr != nil {
		return f.updateTitleErr
	}
	if s, ok := f.sessions[id]; ok {
		s.Title = title
	}
	return nil
}

type fakeMessageStore struct {
	messages  []models.QueryMessage
	createErr error
}

func (f *fakeMessageStore) Create(msg *models.QueryMessage) error {
	if f.createErr != nil {
		return f.createErr
	}
	msg.Prepare()
	msg.CreatedAt = time.Now()
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeMessageStore) GetBySessionID(sessionID uuid.UUID) ([]models.QueryMessageDetail, error) {
	var out []models.QueryMessageDetail
	for i := len(f.messages) - 1; i >= 0; i-- {
		if f.messages[i].SessionID == sessionID {
			out = append(out, models.QueryMessageDetail{QueryMessage: f.messages[i], AuthorUsername: "tester"})
		}
	}
	return out, nil
}

type fakeNLQClient struct {
	result *ChatResult
	err    error
	calls  []ChatRequest
}

func (f *fakeNLQClient) Chat(_ context.Context, req ChatRequest) (*ChatResult, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeEncryptor makes ciphertexts readable in assertions.
type fakeEncryptor struct{}

func (fakeEncryptor) Encrypt(plaintext string) (string, error) {
	return "enc:" + plaintext, nil
}

func (fakeEncryptor) Decrypt(ciphertext string) (string, error) {
	if !strings.HasPrefix(ciphertext, "enc:") {
		return "", errors.New("not encrypted")
	}
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}

func strPtr(s string) *string { return &s }
