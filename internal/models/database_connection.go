package models

import (
	"time"

	"github.com/google/uuid"
)

// Recognized engine types for a registered connection.
const (
	DBTypeMySQL      = "mysql"
	DBTypePostgreSQL = "postgresql"
)

func IsValidDBType(dbType string) bool {
	return dbType == DBTypeMySQL || dbType == DBTypePostgreSQL
}

// DatabaseConnection holds the credentials a user registered for one external
// relational database. The password is encrypted at rest and only decrypted
// when a query is forwarded to the NLQ service.
type DatabaseConnection struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Host              string    `json:"host"`
	Username          string    `json:"username"`
	PasswordEncrypted string    `json:"-"`
	DatabaseName      string    `json:"database"`
	DBType            string    `json:"db_type"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (d *DatabaseConnection) Prepare() {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
}
