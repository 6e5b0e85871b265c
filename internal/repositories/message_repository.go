package repositories

import (
	"context"
	"time"

	"voxql/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

func (r *MessageRepository) Create(msg *models.QueryMessage) error {
	ctx := context.Background()

	msg.Prepare()

	query := `
		INSERT INTO query_messages (id, session_id, user_id, request_query, sql_query, sql_response, summary, thought_process, execution_time_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	// An absent result set must land as SQL NULL, not JSON null.
	var sqlResponse interface{}
	if msg.SQLResponse != nil {
		sqlResponse = msg.SQLResponse
	}

	now := time.Now()
	msg.CreatedAt = now
	_, err := r.pool.Exec(ctx, query,
		msg.ID,
		msg.SessionID,
		msg.UserID,
		msg.RequestQuery,
		msg.SQLQuery,
		sqlResponse,
		msg.Summary,
		msg.ThoughtProcess,
		msg.ExecutionTimeMs,
		now,
	)

	return err
}

// GetBySessionID returns the session's messages newest first, with the
// author's username expanded.
func (r *MessageRepository) GetBySessionID(sessionID uuid.UUID) ([]models.QueryMessageDetail, error) {
	ctx := context.Background()

	query := `
		SELECT m.id, m.session_id, m.user_id, m.request_query, m.sql_query, m.sql_response,
		       m.summary, m.thought_process, m.execution_time_ms, m.created_at,
		       u.username
		FROM query_messages m
		JOIN users u ON u.id = m.user_id
		WHERE m.session_id = $1
		ORDER BY m.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.QueryMessageDetail
	for rows.Next() {
		var msg models.QueryMessageDetail
		err := rows.Scan(
			&msg.ID,
			&msg.SessionID,
			&msg.UserID,
			&msg.RequestQuery,
			&msg.SQLQuery,
			&msg.SQLResponse,
			&msg.Summary,
			&msg.ThoughtProcess,
			&msg.ExecutionTimeMs,
			&msg.CreatedAt,
			&msg.AuthorUsername,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}
