package postgres

import (
	"database/sql"
	"finanzas-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.BillRepository
	repository.PaymentRepository
	repository.ExpenseRepository
	repository.LifestyleRepository
	repository.FavoriteCategoryRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                         db,
		UserRepository:             NewUserRepository(db),
		BillRepository:             NewBillRepository(db),
		PaymentRepository:          NewPaymentRepository(db),
		ExpenseRepository:          NewExpenseRepository(db),
		LifestyleRepository:        NewLifestyleRepository(db),
		FavoriteCategoryRepository: NewFavoriteCategoryRepository(db),
	}
}
