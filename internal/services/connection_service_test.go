package services

import (
	"testing"

	"voxql/internal/apperrors"
	"voxql/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnectionService() (*ConnectionService, *fakeConnStore) {
	store := newFakeConnStore()
	return NewConnectionService(store, fakeEncryptor{}), store
}

func TestConnectionCreateAndGet(t *testing.T) {
	svc, _ := newConnectionService()
	owner := uuid.New()

	conn, err := svc.Create(owner, CreateConnectionRequest{
		Host:     "db.local",
		Username: "u",
		Password: "p",
		Database: "sales",
		DBType:   "mysql",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, conn.ID)
	assert.Equal(t, owner, conn.UserID)
	assert.Equal(t, "db.local", conn.Host)
	assert.Equal(t, "sales", conn.DatabaseName)
	assert.Equal(t, "enc:p", conn.PasswordEncrypted)

	got, err := svc.GetByID(conn.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, conn, got)
}

func TestConnectionCreateRejectsUnknownEngine(t *testing.T) {
	svc, store := newConnectionService()

	_, err := svc.Create(uuid.New(), CreateConnectionRequest{
		Host:     "db.local",
		Username: "u",
		Password: "p",
		Database: "sales",
		DBType:   "oracle",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, store.conns)
}

func TestConnectionGetNotOwned(t *testing.T) {
	svc, _ := newConnectionService()
	owner := uuid.New()

	conn, err := svc.Create(owner, CreateConnectionRequest{
		Host: "db.local", Username: "u", Password: "p", Database: "sales", DBType: "postgresql",
	})
	require.NoError(t, err)

	_, err = svc.GetByID(conn.ID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestConnectionUpdateMergesPresentFields(t *testing.T) {
	svc, _ := newConnectionService()
	owner := uuid.New()

	conn, err := svc.Create(owner, CreateConnectionRequest{
		Host: "db.local", Username: "u", Password: "p", Database: "sales", DBType: "mysql",
	})
	require.NoError(t, err)

	updated, err := svc.Update(conn.ID, owner, UpdateConnectionRequest{
		Host:   strPtr("db.remote"),
		DBType: strPtr("postgresql"),
	})
	require.NoError(t, err)
	assert.Equal(t, "db.remote", updated.Host)
	assert.Equal(t, "postgresql", updated.DBType)
	// untouched fields survive
	assert.Equal(t, "u", updated.Username)
	assert.Equal(t, "enc:p", updated.PasswordEncrypted)
	assert.Equal(t, "sales", updated.DatabaseName)
}

func TestConnectionUpdateValidatesEngine(t *testing.T) {
	svc, store := newConnectionService()
	owner := uuid.New()

	conn, err := svc.Create(owner, CreateConnectionRequest{
		Host: "db.local", Username: "u", Password: "p", Database: "sales", DBType: "mysql",
	})
	require.NoError(t, err)

	_, err = svc.Update(conn.ID, owner, UpdateConnectionRequest{DBType: strPtr("mssql")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "mysql", store.conns[conn.ID].DBType)
}

func TestConnectionUpdateNotOwnedDoesNotMutate(t *testing.T) {
	svc, store := newConnectionService()
	owner := uuid.New()

	conn, err := svc.Create(owner, CreateConnectionRequest{
		Host: "db.local", Username: "u", Password: "p", Database: "sales", DBType: "mysql",
	})
	require.NoError(t, err)

	_, err = svc.Update(conn.ID, uuid.New(), UpdateConnectionRequest{Host: strPtr("evil")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "db.local", store.conns[conn.ID].Host)
}

func TestConnectionDelete(t *testing.T) {
	svc, store := newConnectionService()
	owner := uuid.New()

	conn, err := svc.Create(owner, CreateConnectionRequest{
		Host: "db.local", Username: "u", Password: "p", Database: "sales", DBType: "mysql",
	})
	require.NoError(t, err)

	// not the owner: miss, record survives
	err = svc.Delete(conn.ID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Len(t, store.conns, 1)

	require.NoError(t, svc.Delete(conn.ID, owner))
	assert.Empty(t, store.conns)

	err = svc.Delete(conn.ID, owner)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestConnectionList(t *testing.T) {
	svc, _ := newConnectionService()
	owner := uuid.New()

	for _, db := range []string{"sales", "billing"} {
		_, err := svc.Create(owner, CreateConnectionRequest{
			Host: "db.local", Username: "u", Password: "p", Database: db, DBType: "mysql",
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(uuid.New(), CreateConnectionRequest{
		Host: "db.local", Username: "u", Password: "p", Database: "other", DBType: "mysql",
	})
	require.NoError(t, err)

	conns, err := svc.List(owner)
	require.NoError(t, err)
	assert.Len(t, conns, 2)
	for _, c := range conns {
		assert.Equal(t, owner, c.UserID)
	}
}

func TestIsValidDBType(t *testing.T) {
	assert.True(t, models.IsValidDBType("mysql"))
	assert.True(t, models.IsValidDBType("postgresql"))
	assert.False(t, models.IsValidDBType("sqlite"))
	assert.False(t, models.IsValidDBType(""))
	assert.False(t, models.IsValidDBType("MySQL"))
}
