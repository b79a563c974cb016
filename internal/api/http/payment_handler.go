package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"finanzas-backend/internal/service"
)

type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type paymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	PaidAt time.Time       `json:"paid_at"`
	Skip   bool            `json:"skip"`
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	billID := mux.Vars(r)["id"]

	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var payment interface{}
	if req.Skip {
		payment, err = h.payments.SkipCycle(r.Context(), userID, billID, req.PaidAt)
	} else {
		payment, err = h.payments.RecordPayment(r.Context(), userID, billID, req.Amount, req.PaidAt)
	}
	if err != nil {
		respondPaymentError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	payments, err := h.payments.ListPayments(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		respondPaymentError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	vars := mux.Vars(r)

	if err := h.payments.DeletePayment(r.Context(), userID, vars["id"], vars["paymentID"]); err != nil {
		respondPaymentError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func respondPaymentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBillNotFound), errors.Is(err, service.ErrPaymentNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNegativeAmount):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
