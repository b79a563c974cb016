package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/repository/postgres"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := &domain.User{
			Name:         "Ana",
			Email:        "ana@example.com",
			PasswordHash: "$2a$10$hash",
		}

		now := time.Now()
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), user.Name, user.Email, user.PasswordHash,
				user.Gender, user.DateOfBirth, user.PhoneNumber, user.ProfilePhoto,
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		err := repo.Create(ctx, user)
		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	columns := []string{
		"id", "name", "email", "password_hash", "gender",
		"date_of_birth", "phone_number", "profile_photo", "created_at", "updated_at",
	}

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(columns).
			AddRow("user-1", "Ana", "ana@example.com", "$2a$10$hash", "", "", "", "", now, now)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("ana@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "ana@example.com", user.Email)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, user)
	})
}

func TestUserRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := &domain.User{
			ID:          "user-1",
			Name:        "Ana María",
			PhoneNumber: "555-0100",
		}

		mock.ExpectExec("UPDATE users SET").
			WithArgs(user.Name, user.Gender, user.DateOfBirth, user.PhoneNumber,
				user.ProfilePhoto, sqlmock.AnyArg(), user.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, user)
		assert.NoError(t, err)
	})
}
