package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/service"
)

type BudgetHandler struct {
	budget service.BudgetService
}

func NewBudgetHandler(budget service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budget: budget}
}

type expenseRequest struct {
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    int             `json:"category_id"`
	SubcategoryID int             `json:"subcategory_id"`
	Month         int             `json:"month"`
}

func (h *BudgetHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense := &domain.Expense{
		UserID:        userID,
		Name:          req.Name,
		Amount:        req.Amount,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Month:         req.Month,
	}
	if err := h.budget.AddExpense(r.Context(), expense); err != nil {
		respondBudgetError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, expense)
}

func (h *BudgetHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense := &domain.Expense{
		ID:            mux.Vars(r)["id"],
		Name:          req.Name,
		Amount:        req.Amount,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Month:         req.Month,
	}
	if err := h.budget.UpdateExpense(r.Context(), userID, expense); err != nil {
		respondBudgetError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expense)
}

func (h *BudgetHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.budget.DeleteExpense(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		respondBudgetError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func (h *BudgetHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	month, err := monthParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	expenses, err := h.budget.ListExpenses(r.Context(), userID, month)
	if err != nil {
		respondBudgetError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expenses)
}

func (h *BudgetHandler) GetLifestyle(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	lifestyle, err := h.budget.GetLifestyle(r.Context(), userID)
	if err != nil {
		respondBudgetError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, lifestyle)
}

type lifestyleRequest struct {
	Income  decimal.Decimal          `json:"income"`
	Budgets []domain.LifestyleBudget `json:"budgets"`
}

func (h *BudgetHandler) SaveLifestyle(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req lifestyleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lifestyle := &domain.Lifestyle{
		UserID:  userID,
		Income:  req.Income,
		Budgets: req.Budgets,
	}
	if err := h.budget.SaveLifestyle(r.Context(), lifestyle); err != nil {
		respondBudgetError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, lifestyle)
}

func (h *BudgetHandler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	month, err := monthParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.budget.GetMonthlySummary(r.Context(), userID, month)
	if err != nil {
		respondBudgetError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func monthParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return 0, errors.New("month query parameter is required")
	}
	month, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("month must be a number between 0 and 11")
	}
	return month, nil
}

func respondBudgetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrExpenseNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidExpense),
		errors.Is(err, service.ErrInvalidMonth),
		errors.Is(err, service.ErrNegativeAmount):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
