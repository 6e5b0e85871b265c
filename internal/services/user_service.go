package services

import (
	"errors"
	"fmt"

	"voxql/internal/apperrors"
	"voxql/internal/models"
	"voxql/internal/utils"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo UserStore
}

func NewUserService(userRepo UserStore) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
	}
	return user, nil
}

func (s *UserService) UpdatePassword(id uuid.UUID, oldPassword, newPassword string) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := utils.VerifyPassword(user.PasswordHash, oldPassword); err != nil {
		return errors.New("old password is incorrect")
	}

	hashed, err := utils.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(id, string(hashed))
}
