package repositories

import (
	"context"
	"errors"
	"time"

	"voxql/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ConnectionRepository struct {
	pool *pgxpool.Pool
}

func NewConnectionRepository(pool *pgxpool.Pool) *ConnectionRepository {
	return &ConnectionRepository{pool: pool}
}

func (r *ConnectionRepository) Create(conn *models.DatabaseConnection) error {
	ctx := context.Background()

	conn.Prepare()

	query := `
		INSERT INTO database_connections (id, user_id, host, username, password_encrypted, database_name, db_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`

	now := time.Now()
	conn.CreatedAt = now
	conn.UpdatedAt = now
	_, err := r.pool.Exec(ctx, query,
		conn.ID,
		conn.UserID,
		conn.Host,
		conn.Username,
		conn.PasswordEncrypted,
		conn.DatabaseName,
		conn.DBType,
		now,
	)

	return err
}

func (r *ConnectionRepository) GetByUserID(userID uuid.UUID) ([]models.DatabaseConnection, error) {
	ctx := context.Background()

	query := `
		SELECT id, user_id, host, username, password_encrypted, database_name, db_type, created_at, updated_at
		FROM database_connections WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conns []models.DatabaseConnection
	for rows.Next() {
		var conn models.DatabaseConnection
		err := rows.Scan(
			&conn.ID,
			&conn.UserID,
			&conn.Host,
			&conn.Username,
			&conn.PasswordEncrypted,
			&conn.DatabaseName,
			&conn.DBType,
			&conn.CreatedAt,
			&conn.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		conns = append(conns, conn)
	}

	return conns, rows.Err()
}

func (r *ConnectionRepository) GetByIDAndUserID(id uuid.UUID, userID uuid.UUID) (*models.DatabaseConnection, error) {
	ctx := context.Background()

	query := `
		SELECT id, user_id, host, username, password_encrypted, database_name, db_type, created_at, updated_at
		FROM database_connections WHERE id = $1 AND user_id = $2
	`

	var conn models.DatabaseConnection
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&conn.ID,
		&conn.UserID,
		&conn.Host,
		&conn.Username,
		&conn.PasswordEncrypted,
		&conn.DatabaseName,
		&conn.DBType,
		&conn.CreatedAt,
		&conn.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &conn, nil
}

func (r *ConnectionRepository) Update(conn *models.DatabaseConnection) error {
	ctx := context.Background()

	query := `
		UPDATE database_connections SET
			host = $3, username = $4, password_encrypted = $5, database_name = $6, db_type = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	_, err := r.pool.Exec(ctx, query,
		conn.ID,
		conn.UserID,
		conn.Host,
		conn.Username,
		conn.PasswordEncrypted,
		conn.DatabaseName,
		conn.DBType,
	)

	return err
}

// DeleteByIDAndUserID reports how many rows were removed so the caller can
// distinguish a miss from a successful delete.
func (r *ConnectionRepository) DeleteByIDAndUserID(id uuid.UUID, userID uuid.UUID) (int64, error) {
	ctx := context.Background()

	query := `DELETE FROM database_connections WHERE id = $1 AND user_id = $2`
	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
