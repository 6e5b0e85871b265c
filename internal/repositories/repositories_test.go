package repositories

import (
	"context"
	"testing"
	"time"

	"voxql/internal/database"
	"voxql/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres spins up a throwaway Postgres container, runs the schema
// migrations against it and returns a connected pool.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("voxql_test"),
		tcpostgres.WithUsername("voxql"),
		tcpostgres.WithPassword("voxql"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminating container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(pool))
	return pool
}

func seedUser(t *testing.T, repo *UserRepository, username, email string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, repo.Create(user))
	return user
}

func seedConnection(t *testing.T, repo *ConnectionRepository, userID uuid.UUID, dbName string) *models.DatabaseConnection {
	t.Helper()
	conn := &models.DatabaseConnection{
		UserID:            userID,
		Host:              "db.internal:3306",
		Username:          "app",
		PasswordEncrypted: "ciphertext",
		DatabaseName:      dbName,
		DBType:            models.DBTypeMySQL,
	}
	require.NoError(t, repo.Create(conn))
	return conn
}

func TestRepositoriesAgainstPostgres(t *testing.T) {
	pool := startPostgres(t)

	users := NewUserRepository(pool)
	connections := NewConnectionRepository(pool)
	sessions := NewSessionRepository(pool)
	messages := NewMessageRepository(pool)

	alice := seedUser(t, users, "alice", "alice@example.com")
	bob := seedUser(t, users, "bob", "bob@example.com")

	t.Run("user lookup", func(t *testing.T) {
		found, err := users.FindUserByEmail("alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, alice.ID, found.ID)

		missing, err := users.FindUserByEmail("nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, missing)

		exists, err := users.ExistsByEmailOrUsername("other@example.com", "bob")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	conn := seedConnection(t, connections, alice.ID, "sales")

	t.Run("connection ownership", func(t *testing.T) {
		got, err := connections.GetByIDAndUserID(conn.ID, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "sales", got.DatabaseName)
		assert.Equal(t, models.DBTypeMySQL, got.DBType)

		foreign, err := connections.GetByIDAndUserID(conn.ID, bob.ID)
		require.NoError(t, err)
		assert.Nil(t, foreign)

		affected, err := connections.DeleteByIDAndUserID(conn.ID, bob.ID)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("connection update", func(t *testing.T) {
		conn.Host = "replica.internal:3306"
		require.NoError(t, connections.Update(conn))

		got, err := connections.GetByIDAndUserID(conn.ID, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "replica.internal:3306", got.Host)
	})

	session := &models.QuerySession{
		UserID:     alice.ID,
		DatabaseID: conn.ID,
	}
	require.NoError(t, sessions.Create(session))

	t.Run("session detail joins", func(t *testing.T) {
		got, err := sessions.GetByIDAndUserID(session.ID, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.DefaultSessionTitle, got.Title)
		assert.Equal(t, "alice", got.Owner.Username)
		assert.Equal(t, "alice@example.com", got.Owner.Email)
		assert.Equal(t, "sales", got.Database.Name)

		foreign, err := sessions.GetByIDAndUserID(session.ID, bob.ID)
		require.NoError(t, err)
		assert.Nil(t, foreign)

		listed, err := sessions.GetByUserID(alice.ID)
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})

	t.Run("session title rename", func(t *testing.T) {
		require.NoError(t, sessions.UpdateTitle(session.ID, "Customer count"))

		got, err := sessions.GetByIDAndUserID(session.ID, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Customer count", got.Title)
	})

	t.Run("message round trip and ordering", func(t *testing.T) {
		sqlQuery := "SELECT COUNT(*) FROM customers"
		summary := "There are 42 customers."
		first := &models.QueryMessage{
			SessionID:       session.ID,
			UserID:          alice.ID,
			RequestQuery:    "how many customers are there",
			SQLQuery:        &sqlQuery,
			SQLResponse:     []map[string]interface{}{{"count": float64(42)}},
			Summary:         &summary,
			ExecutionTimeMs: 1200,
		}
		require.NoError(t, messages.Create(first))

		// second message has no rows: stored as SQL NULL, read back as nil
		second := &models.QueryMessage{
			SessionID:       session.ID,
			UserID:          alice.ID,
			RequestQuery:    "drop the customers table",
			ExecutionTimeMs: 30,
		}
		require.NoError(t, messages.Create(second))

		history, err := messages.GetBySessionID(session.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)

		assert.Equal(t, second.ID, history[0].ID)
		assert.Nil(t, history[0].SQLResponse)
		assert.Equal(t, first.ID, history[1].ID)
		assert.Equal(t, "alice", history[1].AuthorUsername)
		require.Len(t, history[1].SQLResponse, 1)
		assert.Equal(t, float64(42), history[1].SQLResponse[0]["count"])
		assert.Equal(t, int64(1200), history[1].ExecutionTimeMs)
	})

	t.Run("empty history", func(t *testing.T) {
		other := &models.QuerySession{UserID: alice.ID, DatabaseID: conn.ID}
		require.NoError(t, sessions.Create(other))

		history, err := messages.GetBySessionID(other.ID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("deleting a connection cascades", func(t *testing.T) {
		victim := seedConnection(t, connections, bob.ID, "scratch")
		s := &models.QuerySession{UserID: bob.ID, DatabaseID: victim.ID}
		require.NoError(t, sessions.Create(s))

		affected, err := connections.DeleteByIDAndUserID(victim.ID, bob.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		gone, err := sessions.GetByIDAndUserID(s.ID, bob.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})
}
