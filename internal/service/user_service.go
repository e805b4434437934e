package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/domain"
	"github.com/njprem/Travel_Booking_APP_BackEnd/internal/repository/ports"
)

type UserService struct {
	users ports.UserRepository
}

func NewUserService(userRepo ports.UserRepository) *UserService {
	return &UserService{users: userRepo}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Create signs up a user. A duplicate email comes back as a ConstraintError
// holding the store message.
func (s *UserService) Create(ctx context.Context, fields domain.UserCreateFields) (*domain.User, error) {
	fields.Email = strings.TrimSpace(fields.Email)
	if fields.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrUserValidation)
	}

	user, err := s.users.Create(ctx, fields)
	if err != nil {
		return nil, asConstraintError(err)
	}
	return user, nil
}
