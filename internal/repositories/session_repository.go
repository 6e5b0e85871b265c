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

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(session *models.QuerySession) error {
	ctx := context.Background()

	session.Prepare()

	query := `
		INSERT INTO query_sessions (id, user_id, database_id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`

	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.DatabaseID,
		session.Title,
		session.Description,
		now,
	)

	return err
}

const sessionDetailColumns = `
	s.id, s.user_id, s.database_id, s.title, s.description, s.created_at, s.updated_at,
	u.username, u.email, u.profile_image,
	d.database_name
`

func scanSessionDetail(row pgx.Row) (*models.QuerySessionDetail, error) {
	var detail models.QuerySessionDetail
	err := row.Scan(
		&detail.ID,
		&detail.UserID,
		&detail.DatabaseID,
		&detail.Title,
		&detail.Description,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.Owner.Username,
		&detail.Owner.Email,
		&detail.Owner.ProfileImage,
		&detail.Database.Name,
	)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *SessionRepository) GetByUserID(userID uuid.UUID) ([]models.QuerySessionDetail, error) {
	ctx := context.Background()

	query := `
		SELECT ` + sessionDetailColumns + `
		FROM query_sessions s
		JOIN users u ON u.id = s.user_id
		JOIN database_connections d ON d.id = s.database_id
		WHERE s.user_id = $1
		ORDER BY s.updated_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.QuerySessionDetail
	for rows.Next() {
		detail, err := scanSessionDetail(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *detail)
	}

	return sessions, rows.Err()
}

func (r *SessionRepository) GetByIDAndUserID(id uuid.UUID, userID uuid.UUID) (*models.QuerySessionDetail, error) {
	ctx := context.Background()

	query := `
		SELECT ` + sessionDetailColumns + `
		FROM query_sessions s
		JOIN users u ON u.id = s.user_id
		JOIN database_connections d ON d.id = s.database_id
		WHERE s.id = $1 AND s.user_id = $2
	`

	detail, err := scanSessionDetail(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return detail, nil
}

// UpdateTitle overwrites the session title unconditionally; invoked by the
// message pipeline when the NLQ service suggests one.
func (r *SessionRepository) UpdateTitle(id uuid.UUID, title string) error {
	ctx := context.Background()

	query := `UPDATE query_sessions SET title = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, title)
	return err
}
