package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"finanzas-backend/internal/service"
)

type CategoryHandler struct {
	categories service.CategoryService
}

func NewCategoryHandler(categories service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.categories.ListCategories(r.Context()))
}

func (h *CategoryHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	favorites, err := h.categories.ListFavorites(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, favorites)
}

type favoriteRequest struct {
	SubcategoryID int `json:"subcategory_id"`
}

func (h *CategoryHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req favoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fav, err := h.categories.AddFavorite(r.Context(), userID, req.SubcategoryID)
	switch {
	case errors.Is(err, service.ErrUnknownSubcategory):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, service.ErrFavoriteLimit):
		respondError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusCreated, fav)
}

func (h *CategoryHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	subcategoryID, err := strconv.Atoi(mux.Vars(r)["subcategoryID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid subcategory id")
		return
	}

	if err := h.categories.RemoveFavorite(r.Context(), userID, subcategoryID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
