package services

import (
	"errors"
	"time"

	"voxql/internal/models"
	"voxql/internal/utils"

	"github.com/google/uuid"
)

const (
	AccessTokenDuration  = 15 * time.Minute
	RefreshTokenDuration = 30 * 24 * time.Hour
)

// UserStore is the persistence surface for accounts.
type UserStore interface {
	Create(user *models.User) error
	FindUserByID(id uuid.UUID) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	ExistsByEmailOrUsername(email, username string) (bool, error)
	UpdatePassword(id uuid.UUID, passwordHash string) error
}

type AuthService struct {
	userRepo UserStore
}

func NewAuthService(userRepo UserStore) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func (s *AuthService) Register(user *models.User, password string) (string, string, error) {
	// 1. Check if user already exists
	exists, err := s.userRepo.ExistsByEmailOrUsername(user.Email, user.Username)
	if err != nil {
		return "", "", err
	}
	if exists {
		return "", "", errors.New("user already exists")
	}

	// 2. Hash password before saving
	hashedPassword, err := utils.Hash(password)
	if err != nil {
		return "", "", err
	}
	user.PasswordHash = string(hashedPassword)

	// 3. Save user in DB
	if err := s.userRepo.Create(user); err != nil {
		return "", "", err
	}

	// 4. Generate tokens (self-contained, no server-side session)
	return s.issueTokens(user.ID)
}

func (s *AuthService) Login(email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return nil, "", "", err
	}
	if user == nil {
		return nil, "", "", errors.New("invalid credentials")
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, "", "", errors.New("invalid credentials")
	}

	accessToken, refreshToken, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *AuthService) issueTokens(userID uuid.UUID) (string, string, error) {
	accessToken, err := utils.GenerateJWT(userID, AccessTokenDuration, utils.AccessTokenSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := utils.GenerateJWT(userID, RefreshTokenDuration, utils.RefreshTokenSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
