package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryMessage is one immutable question/answer exchange within a session.
// It is written exactly once by the pipeline; there is no update or delete
// path. SQLQuery, SQLResponse, Summary and ThoughtProcess are nil when the
// NLQ service produced no value for them.
type QueryMessage struct {
	ID              uuid.UUID                `json:"id"`
	SessionID       uuid.UUID                `json:"session_id"`
	UserID          uuid.UUID                `json:"user_id"`
	RequestQuery    string                   `json:"request_query"`
	SQLQuery        *string                  `json:"sql_query,omitempty"`
	SQLResponse     []map[string]interface{} `json:"sql_response,omitempty"`
	Summary         *string                  `json:"summary,omitempty"`
	ThoughtProcess  *string                  `json:"thought_process,omitempty"`
	ExecutionTimeMs int64                    `json:"execution_time_ms"`
	CreatedAt       time.Time                `json:"created_at"`
}

func (m *QueryMessage) Prepare() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
}

// QueryMessageDetail is a message with the author's username expanded.
type QueryMessageDetail struct {
	QueryMessage
	AuthorUsername string `json:"author_username"`
}
