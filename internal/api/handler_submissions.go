package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"trendai/internal/domain"
)

func (h *Handler) createSubmission(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSubmissionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	sub, err := h.submissions.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, sub)
}

func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.submissions.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if subs == nil {
		subs = []domain.Submission{}
	}
	h.writeJSON(w, http.StatusOK, subs)
}

func (h *Handler) getSubmission(w http.ResponseWriter, r *http.Request) {
	sub, err := h.submissions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sub)
}

func (h *Handler) updateSubmission(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateSubmissionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	sub, err := h.submissions.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sub)
}

func (h *Handler) deleteSubmission(w http.ResponseWriter, r *http.Request) {
	if err := h.submissions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// brandReport returns the campaign -> influencer -> submissions tree for
// a brand.
func (h *Handler) brandReport(w http.ResponseWriter, r *http.Request) {
	tree, err := h.reports.BrandReport(r.Context(), chi.URLParam(r, "brandId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tree)
}

// influencerReport returns an influencer's submissions grouped by brand,
// then campaign, as an object keyed by brand id.
func (h *Handler) influencerReport(w http.ResponseWriter, r *http.Request) {
	groups, err := h.reports.InfluencerReport(r.Context(), chi.URLParam(r, "influencerId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, groups)
}
