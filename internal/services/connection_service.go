package services

import (
	"fmt"

	"voxql/internal/apperrors"
	"voxql/internal/models"

	"github.com/google/uuid"
)

// ConnectionStore is the persistence surface the registry needs.
type ConnectionStore interface {
	Create(conn *models.DatabaseConnection) error
	GetByUserID(userID uuid.UUID) ([]models.DatabaseConnection, error)
	GetByIDAndUserID(id uuid.UUID, userID uuid.UUID) (*models.DatabaseConnection, error)
	Update(conn *models.DatabaseConnection) error
	DeleteByIDAndUserID(id uuid.UUID, userID uuid.UUID) (int64, error)
}

// Encryptor encrypts and decrypts stored connection passwords.
type Encryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

type ConnectionService struct {
	connRepo  ConnectionStore
	encryptor Encryptor
}

func NewConnectionService(connRepo ConnectionStore, encryptor Encryptor) *ConnectionService {
	return &ConnectionService{
		connRepo:  connRepo,
		encryptor: encryptor,
	}
}

type CreateConnectionRequest struct {
	Host     string `json:"host" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Database string `json:"database" binding:"required"`
	DBType   string `json:"db_type" binding:"required"`
}

type UpdateConnectionRequest struct {
	Host     *string `json:"host"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Database *string `json:"database"`
	DBType   *string `json:"db_type"`
}

func (s *ConnectionService) Create(userID uuid.UUID, req CreateConnectionRequest) (*models.DatabaseConnection, error) {
	if !models.IsValidDBType(req.DBType) {
		return nil, fmt.Errorf("%w: invalid database type %q", apperrors.ErrValidation, req.DBType)
	}

	encrypted, err := s.encryptor.Encrypt(req.Password)
	if err != nil {
		return nil, err
	}

	conn := &models.DatabaseConnection{
		UserID:            userID,
		Host:              req.Host,
		Username:          req.Username,
		PasswordEncrypted: encrypted,
		DatabaseName:      req.Database,
		DBType:            req.DBType,
	}

	if err := s.connRepo.Create(conn); err != nil {
		return nil, err
	}

	return conn, nil
}

func (s *ConnectionService) List(userID uuid.UUID) ([]models.DatabaseConnection, error) {
	return s.connRepo.GetByUserID(userID)
}

func (s *ConnectionService) GetByID(id uuid.UUID, userID uuid.UUID) (*models.DatabaseConnection, error) {
	conn, err := s.connRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, fmt.Errorf("%w: database connection not found", apperrors.ErrNotFound)
	}
	return conn, nil
}

// Update merges only the fields present in the request.
func (s *ConnectionService) Update(id uuid.UUID, userID uuid.UUID, req UpdateConnectionRequest) (*models.DatabaseConnection, error) {
	if req.DBType != nil && !models.IsValidDBType(*req.DBType) {
		return nil, fmt.Errorf("%w: invalid database type %q", apperrors.ErrValidation, *req.DBType)
	}

	conn, err := s.connRepo.GetByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, fmt.Errorf("%w: database connection not found", apperrors.ErrNotFound)
	}

	if req.Host != nil {
		conn.Host = *req.Host
	}
	if req.Username != nil {
		conn.Username = *req.Username
	}
	if req.Password != nil {
		encrypted, err := s.encryptor.Encrypt(*req.Password)
		if err != nil {
			return nil, err
		}
		conn.PasswordEncrypted = encrypted
	}
	if req.Database != nil {
		conn.DatabaseName = *req.Database
	}
	if req.DBType != nil {
		conn.DBType = *req.DBType
	}

	if err := s.connRepo.Update(conn); err != nil {
		return nil, err
	}

	return conn, nil
}

func (s *ConnectionService) Delete(id uuid.UUID, userID uuid.UUID) error {
	deleted, err := s.connRepo.DeleteByIDAndUserID(id, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: database connection not found", apperrors.ErrNotFound)
	}
	return nil
}
