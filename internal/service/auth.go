package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/logger"
	"finanzas-backend/internal/repository"
	"finanzas-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) {
	logger.EnterMethod("authService.Signup", "email", email)

	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		logger.ExitMethodWithError("authService.Signup", ErrEmailTaken, "email", email)
		return nil, "", "", ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethodWithError("authService.Signup", err, "email", email)
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.ExitMethodWithError("authService.Signup", err, "email", email)
		return nil, "", "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ExitMethodWithError("authService.Signup", err, "email", email)
		return nil, "", "", err
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		logger.ExitMethodWithError("authService.Signup", err, "userID", user.ID)
		return nil, "", "", err
	}

	logger.ExitMethod("authService.Signup", "userID", user.ID)
	return user, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	logger.EnterMethod("authService.Login", "email", email)

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.ExitMethodWithError("authService.Login", ErrInvalidCredentials, "email", email)
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.ExitMethodWithError("authService.Login", ErrInvalidCredentials, "email", email)
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		logger.ExitMethodWithError("authService.Login", err, "userID", user.ID)
		return nil, "", "", err
	}

	logger.ExitMethod("authService.Login", "userID", user.ID)
	return user, access, refresh, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	logger.EnterMethod("authService.RefreshToken")

	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		logger.ExitMethodWithError("authService.RefreshToken", ErrInvalidRefresh)
		return "", "", ErrInvalidRefresh
	}
	if claims.Type != security.TokenTypeRefresh {
		logger.ExitMethodWithError("authService.RefreshToken", ErrInvalidRefresh)
		return "", "", ErrInvalidRefresh
	}

	// The user may have been deleted since the token was issued.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.ExitMethodWithError("authService.RefreshToken", ErrInvalidRefresh, "userID", claims.UserID)
		return "", "", ErrInvalidRefresh
	}

	access, newRefresh, err := s.issueTokens(user)
	if err != nil {
		logger.ExitMethodWithError("authService.RefreshToken", err, "userID", user.ID)
		return "", "", err
	}

	logger.ExitMethod("authService.RefreshToken", "userID", user.ID)
	return access, newRefresh, nil
}

func (s *authService) issueTokens(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
