package services

import (
	"testing"

	"voxql/internal/apperrors"
	"voxql/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateDefaultsTitle(t *testing.T) {
	svc := NewSessionService(newFakeSessionStore())
	owner := uuid.New()

	session, err := svc.Create(owner, CreateSessionRequest{DatabaseID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSessionTitle, session.Title)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, owner, session.UserID)
}

func TestSessionCreateKeepsExplicitTitle(t *testing.T) {
	svc := NewSessionService(newFakeSessionStore())

	session, err := svc.Create(uuid.New(), CreateSessionRequest{
		DatabaseID:  uuid.New(),
		Title:       "Q3 revenue digging",
		Description: strPtr("ad hoc analysis"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Q3 revenue digging", session.Title)
	require.NotNil(t, session.Description)
	assert.Equal(t, "ad hoc analysis", *session.Description)
}

func TestSessionGetEnforcesOwnership(t *testing.T) {
	store := newFakeSessionStore()
	svc := NewSessionService(store)
	owner := uuid.New()

	session, err := svc.Create(owner, CreateSessionRequest{DatabaseID: uuid.New()})
	require.NoError(t, err)

	got, err := svc.GetByID(session.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = svc.GetByID(session.ID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.GetByID(uuid.New(), owner)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSessionListForOwner(t *testing.T) {
	store := newFakeSessionStore()
	svc := NewSessionService(store)
	owner := uuid.New()

	_, err := svc.Create(owner, CreateSessionRequest{DatabaseID: uuid.New()})
	require.NoError(t, err)
	_, err = svc.Create(uuid.New(), CreateSessionRequest{DatabaseID: uuid.New()})
	require.NoError(t, err)

	sessions, err := svc.ListForOwner(owner)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.Equal(t, owner, sessions[0].UserID)
}
