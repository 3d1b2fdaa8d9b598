package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"trendai/internal/domain"
)

func (h *Handler) createInfluencer(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateInfluencerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	inf, err := h.influencers.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, inf)
}

func (h *Handler) listInfluencers(w http.ResponseWriter, r *http.Request) {
	influencers, err := h.influencers.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if influencers == nil {
		influencers = []domain.Influencer{}
	}
	h.writeJSON(w, http.StatusOK, influencers)
}

func (h *Handler) getInfluencer(w http.ResponseWriter, r *http.Request) {
	inf, err := h.influencers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, inf)
}

func (h *Handler) updateInfluencer(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateInfluencerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	inf, err := h.influencers.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, inf)
}

func (h *Handler) deleteInfluencer(w http.ResponseWriter, r *http.Request) {
	if err := h.influencers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
