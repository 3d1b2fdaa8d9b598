package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"trendai/internal/domain"
)

func (h *Handler) createBrand(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBrandRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	brand, err := h.brands.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, brand)
}

func (h *Handler) listBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brands.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if brands == nil {
		brands = []domain.Brand{}
	}
	h.writeJSON(w, http.StatusOK, brands)
}

func (h *Handler) getBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := h.brands.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, brand)
}

func (h *Handler) updateBrand(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateBrandRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	brand, err := h.brands.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, brand)
}

func (h *Handler) deleteBrand(w http.ResponseWriter, r *http.Request) {
	if err := h.brands.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
