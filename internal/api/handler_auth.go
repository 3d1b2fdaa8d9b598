package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"trendai/internal/domain"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	result, err := h.auth.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	user, err := h.auth.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) linkBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := h.users.LinkBrand(r.Context(), chi.URLParam(r, "userId"), chi.URLParam(r, "brandId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, brand)
}

func (h *Handler) linkInfluencer(w http.ResponseWriter, r *http.Request) {
	inf, err := h.users.LinkInfluencer(r.Context(), chi.URLParam(r, "userId"), chi.URLParam(r, "influencerId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, inf)
}
