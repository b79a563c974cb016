package http

import (
	"io"
	"net/http"

	"finanzas-backend/internal/service"
	"finanzas-backend/internal/storage"
)

// maxPhotoBytes caps profile photo uploads at 5 MiB.
const maxPhotoBytes = 5 << 20

// PhotoHandler stores and serves profile photos. The photo lives under a key
// derived from the user ID, so re-uploading replaces the previous one.
type PhotoHandler struct {
	photos storage.Service
	users  service.UserService
}

func NewPhotoHandler(photos storage.Service, users service.UserService) *PhotoHandler {
	return &PhotoHandler{photos: photos, users: users}
}

func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		respondError(w, http.StatusBadRequest, "photo must be image/jpeg or image/png")
		return
	}

	key := photoKey(userID)
	body := http.MaxBytesReader(w, r.Body, maxPhotoBytes)
	if err := h.photos.Save(r.Context(), key, body); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to store photo")
		return
	}

	path := "/api/v1/me/photo"
	if _, err := h.users.UpdateProfile(r.Context(), userID, service.UserProfileUpdate{ProfilePhoto: &path}); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"profile_photo": path})
}

func (h *PhotoHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	file, err := h.photos.Open(r.Context(), photoKey(userID))
	if err != nil {
		respondError(w, http.StatusNotFound, "no profile photo")
		return
	}
	defer file.Close()

	w.Header().Set("Cache-Control", "private, max-age=3600")
	io.Copy(w, file)
}

func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.photos.Delete(r.Context(), photoKey(userID)); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete photo")
		return
	}

	empty := ""
	if _, err := h.users.UpdateProfile(r.Context(), userID, service.UserProfileUpdate{ProfilePhoto: &empty}); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func photoKey(userID string) string {
	return "profile-" + userID
}
