// Package api provides the HTTP handlers and router for the campaign
// tracking REST API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"trendai/internal/config"
	"trendai/internal/middleware"
	"trendai/internal/service"
)

// Handler holds the service dependencies for all HTTP endpoints.
type Handler struct {
	auth        *service.AuthService
	users       *service.UserService
	brands      *service.BrandService
	influencers *service.InfluencerService
	campaigns   *service.CampaignService
	submissions *service.SubmissionService
	reports     *service.ReportService
	log         *slog.Logger
}

// NewHandler creates a new Handler with all required service dependencies.
func NewHandler(
	auth *service.AuthService,
	users *service.UserService,
	brands *service.BrandService,
	influencers *service.InfluencerService,
	campaigns *service.CampaignService,
	submissions *service.SubmissionService,
	reports *service.ReportService,
	log *slog.Logger,
) *Handler {
	return &Handler{
		auth:        auth,
		users:       users,
		brands:      brands,
		influencers: influencers,
		campaigns:   campaigns,
		submissions: submissions,
		reports:     reports,
		log:         log,
	}
}

// Router builds the chi router: public auth endpoints, then the
// authenticated API guarded per operation by the static role table.
func (h *Handler) Router(cfg *config.Config, verifier middleware.TokenVerifier) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Public endpoints
	r.Post("/auth/login", h.login)
	r.Post("/users/register", h.register)

	// Authenticated API
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(verifier, h.log))

		h.route(r, "POST", "/users/{userId}/link-brand/{brandId}", "users.linkBrand", h.linkBrand)
		h.route(r, "POST", "/users/{userId}/link-influencer/{influencerId}", "users.linkInfluencer", h.linkInfluencer)

		h.route(r, "POST", "/brands", "brands.create", h.createBrand)
		h.route(r, "GET", "/brands", "brands.list", h.listBrands)
		h.route(r, "GET", "/brands/{id}", "brands.get", h.getBrand)
		h.route(r, "PATCH", "/brands/{id}", "brands.update", h.updateBrand)
		h.route(r, "DELETE", "/brands/{id}", "brands.delete", h.deleteBrand)

		h.route(r, "POST", "/influencers", "influencers.create", h.createInfluencer)
		h.route(r, "GET", "/influencers", "influencers.list", h.listInfluencers)
		h.route(r, "GET", "/influencers/{id}", "influencers.get", h.getInfluencer)
		h.route(r, "PATCH", "/influencers/{id}", "influencers.update", h.updateInfluencer)
		h.route(r, "DELETE", "/influencers/{id}", "influencers.delete", h.deleteInfluencer)

		h.route(r, "GET", "/campaigns", "campaigns.list", h.listCampaigns)
		h.route(r, "GET", "/campaigns/{id}", "campaigns.get", h.getCampaign)
		h.route(r, "POST", "/campaigns", "campaigns.create", h.createCampaign)
		h.route(r, "PUT", "/campaigns/{id}", "campaigns.update", h.updateCampaign)
		h.route(r, "PATCH", "/campaigns/{id}", "campaigns.update", h.updateCampaign)
		h.route(r, "DELETE", "/campaigns/{id}", "campaigns.delete", h.deleteCampaign)

		// Report routes must register before /submissions/{id} so the
		// literal segments win.
		h.route(r, "GET", "/submissions/brand/{brandId}", "submissions.brandReport", h.brandReport)
		h.route(r, "GET", "/submissions/influencer/{influencerId}", "submissions.influencerReport", h.influencerReport)

		h.route(r, "GET", "/submissions", "submissions.list", h.listSubmissions)
		h.route(r, "GET", "/submissions/{id}", "submissions.get", h.getSubmission)
		h.route(r, "POST", "/submissions", "submissions.create", h.createSubmission)
		h.route(r, "PUT", "/submissions/{id}", "submissions.update", h.updateSubmission)
		h.route(r, "PATCH", "/submissions/{id}", "submissions.update", h.updateSubmission)
		h.route(r, "DELETE", "/submissions/{id}", "submissions.delete", h.deleteSubmission)
	})

	return r
}

// route registers a handler behind the role requirement declared for the
// operation.
func (h *Handler) route(r chi.Router, method, pattern, operation string, fn http.HandlerFunc) {
	r.With(middleware.RequireRoles(operation)).Method(method, pattern, fn)
}
