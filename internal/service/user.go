package service

import (
	"context"
	"database/sql"
	"errors"

	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, upd UserProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Gender != nil {
		user.Gender = *upd.Gender
	}
	if upd.DateOfBirth != nil {
		user.DateOfBirth = *upd.DateOfBirth
	}
	if upd.PhoneNumber != nil {
		user.PhoneNumber = *upd.PhoneNumber
	}
	if upd.ProfilePhoto != nil {
		user.ProfilePhoto = *upd.ProfilePhoto
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
