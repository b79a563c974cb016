package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/logger"
	"finanzas-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	logger.EnterMethod("userRepository.Create", "email", user.Email)

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (
			id, name, email, password_hash, gender, date_of_birth,
			phone_number, profile_photo, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Gender,
		user.DateOfBirth, user.PhoneNumber, user.ProfilePhoto, now, now,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("userRepository.Create", err, "email", user.Email)
		return err
	}

	logger.ExitMethod("userRepository.Create", "userID", user.ID)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	logger.EnterMethod("userRepository.GetByID", "userID", id)

	query := `
		SELECT id, name, email, password_hash, COALESCE(gender, ''),
		       COALESCE(date_of_birth, ''), COALESCE(phone_number, ''),
		       COALESCE(profile_photo, ''), created_at, updated_at
		FROM users WHERE id = $1
	`

	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Gender,
		&user.DateOfBirth, &user.PhoneNumber, &user.ProfilePhoto,
		&user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		logger.ExitMethodWithError("userRepository.GetByID", err, "userID", id)
		return nil, err
	}

	logger.ExitMethod("userRepository.GetByID", "userID", id)
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	logger.EnterMethod("userRepository.GetByEmail", "email", email)

	query := `
		SELECT id, name, email, password_hash, COALESCE(gender, ''),
		       COALESCE(date_of_birth, ''), COALESCE(phone_number, ''),
		       COALESCE(profile_photo, ''), created_at, updated_at
		FROM users WHERE email = $1
	`

	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Gender,
		&user.DateOfBirth, &user.PhoneNumber, &user.ProfilePhoto,
		&user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		logger.ExitMethodWithError("userRepository.GetByEmail", err, "email", email)
		return nil, err
	}

	logger.ExitMethod("userRepository.GetByEmail", "userID", user.ID)
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	logger.EnterMethod("userRepository.Update", "userID", user.ID)

	query := `
		UPDATE users SET
			name = $1,
			gender = $2,
			date_of_birth = $3,
			phone_number = $4,
			profile_photo = $5,
			updated_at = $6
		WHERE id = $7
	`

	_, err := r.db.ExecContext(ctx, query,
		user.Name, user.Gender, user.DateOfBirth, user.PhoneNumber,
		user.ProfilePhoto, time.Now(), user.ID,
	)

	if err != nil {
		logger.ExitMethodWithError("userRepository.Update", err, "userID", user.ID)
		return err
	}

	logger.ExitMethod("userRepository.Update", "userID", user.ID)
	return nil
}
