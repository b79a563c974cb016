package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/service"
)

type BillHandler struct {
	bills service.BillService
}

func NewBillHandler(bills service.BillService) *BillHandler {
	return &BillHandler{bills: bills}
}

type billRequest struct {
	Name            string            `json:"name"`
	Color           string            `json:"color"`
	Type            domain.BillType   `json:"type"`
	Status          domain.BillStatus `json:"status"`
	CutoffDate      *int              `json:"cutoff_date"`
	PaymentDeadline *int              `json:"payment_deadline"`
}

func (h *BillHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req billRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bill := &domain.Bill{
		UserID:          userID,
		Name:            req.Name,
		Color:           req.Color,
		Type:            req.Type,
		Status:          req.Status,
		CutoffDate:      req.CutoffDate,
		PaymentDeadline: req.PaymentDeadline,
	}
	if err := h.bills.CreateBill(r.Context(), bill); err != nil {
		respondBillError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, bill)
}

func (h *BillHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	bill, err := h.bills.GetBill(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		respondBillError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, bill)
}

func (h *BillHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req billRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bill := &domain.Bill{
		ID:              mux.Vars(r)["id"],
		Name:            req.Name,
		Color:           req.Color,
		Type:            req.Type,
		Status:          req.Status,
		CutoffDate:      req.CutoffDate,
		PaymentDeadline: req.PaymentDeadline,
	}
	if err := h.bills.UpdateBill(r.Context(), userID, bill); err != nil {
		respondBillError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, bill)
}

func (h *BillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.bills.DeleteBill(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		respondBillError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func (h *BillHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var statuses []domain.BillStatus
	if s := r.URL.Query().Get("status"); s != "" {
		statuses = append(statuses, domain.BillStatus(s))
	}

	cards, err := h.bills.ListBills(r.Context(), userID, statuses)
	if err != nil {
		respondBillError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cards)
}

func (h *BillHandler) Overview(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	overview, err := h.bills.GetOverview(r.Context(), userID)
	if err != nil {
		respondBillError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, overview)
}

func (h *BillHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	analysis, err := h.bills.GetAnalysis(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		respondBillError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, analysis)
}

func respondBillError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBillNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidBill):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
