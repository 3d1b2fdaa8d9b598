package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"trendai/internal/domain"
)

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCampaignRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	campaign, err := h.campaigns.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, campaign)
}

func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaign)
}

func (h *Handler) updateCampaign(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateCampaignRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	campaign, err := h.campaigns.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaign)
}

func (h *Handler) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
