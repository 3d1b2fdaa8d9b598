// Command server runs the campaign tracking HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"trendai/internal/api"
	"trendai/internal/config"
	"trendai/internal/db"
	"trendai/internal/db/repository"
	"trendai/internal/middleware"
	"trendai/internal/service"
)

func main() {
	os.Exit(execute())
}

func execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "server",
		Short:         "Campaign tracking API server",
		Long:          "Multi-tenant backend for marketing campaigns, influencers, and content submissions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSeedCmd())
	return rootCmd
}

// app bundles the wired services shared by the serve and seed commands.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	handler *api.Handler
	signer  *middleware.HS256Verifier
	sweeper *service.Sweeper

	auth        *service.AuthService
	users       *service.UserService
	brands      *service.BrandService
	influencers *service.InfluencerService
	campaigns   *service.CampaignService
	submissions *service.SubmissionService

	close func()
}

func buildApp() (*app, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)
	for _, w := range cfg.Warnings {
		log.Warn(w)
	}

	writeDB, readDB, err := db.OpenSQLitePair(cfg.DBPath, 0)
	if err != nil {
		return nil, err
	}
	closeDBs := func() {
		_ = readDB.Close()
		_ = writeDB.Close()
	}

	if err := db.RunMigrations(writeDB); err != nil {
		closeDBs()
		return nil, err
	}

	// Mutating flows go through the write pool; the read-heavy report
	// queries use the read pool.
	users := repository.NewUserRepo(writeDB)
	brands := repository.NewBrandRepo(writeDB)
	influencers := repository.NewInfluencerRepo(writeDB)
	campaigns := repository.NewCampaignRepo(writeDB)
	submissions := repository.NewSubmissionRepo(writeDB)
	audit := repository.NewAuditRepo(writeDB)

	readBrands := repository.NewBrandRepo(readDB)
	readInfluencers := repository.NewInfluencerRepo(readDB)
	readCampaigns := repository.NewCampaignRepo(readDB)
	readSubmissions := repository.NewSubmissionRepo(readDB)

	signer, err := middleware.NewHS256Verifier(cfg.JWTSecret)
	if err != nil {
		closeDBs()
		return nil, err
	}

	authSvc := service.NewAuthService(users, brands, influencers, audit, signer, cfg.JWTTTL, log)
	userSvc := service.NewUserService(users, brands, influencers, audit, log)
	brandSvc := service.NewBrandService(brands, audit, log)
	influencerSvc := service.NewInfluencerService(influencers, audit, log)
	campaignSvc := service.NewCampaignService(campaigns, brands, audit, log)
	submissionSvc := service.NewSubmissionService(submissions, campaigns, audit, log)
	reportSvc := service.NewReportService(readBrands, readInfluencers, readCampaigns, readSubmissions, log)

	return &app{
		cfg:         cfg,
		log:         log,
		handler:     api.NewHandler(authSvc, userSvc, brandSvc, influencerSvc, campaignSvc, submissionSvc, reportSvc, log),
		signer:      signer,
		sweeper:     service.NewSweeper(campaignSvc, cfg.SweepSchedule, log),
		auth:        authSvc,
		users:       userSvc,
		brands:      brandSvc,
		influencers: influencerSvc,
		campaigns:   campaignSvc,
		submissions: submissionSvc,
		close:       closeDBs,
	}, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.close()
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	if err := a.sweeper.Start(ctx); err != nil {
		return fmt.Errorf("start sweeper: %w", err)
	}
	defer a.sweeper.Stop()

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           a.handler.Router(a.cfg, a.signer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("HTTP API listening", "addr", a.cfg.ListenAddr, "env", a.cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	select {
	case err := <-errCh:
		return err
	case <-stop.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.close()
			return a.seed(cmd.Context())
		},
	}
}

// seed populates demo accounts, a brand with a campaign, an influencer,
// and one submission. Idempotent; it does nothing when brands exist.
func (a *app) seed(ctx context.Context) error {
	existing, err := a.brands.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		a.log.Info("database already seeded")
		return nil
	}

	brandUser, err := a.auth.Register(ctx, domainCreateUser("brand@demo.test", "brand"))
	if err != nil {
		return fmt.Errorf("seed brand user: %w", err)
	}
	infUser, err := a.auth.Register(ctx, domainCreateUser("influencer@demo.test", "influencer"))
	if err != nil {
		return fmt.Errorf("seed influencer user: %w", err)
	}

	brand, err := a.brands.Create(ctx, seedBrand())
	if err != nil {
		return fmt.Errorf("seed brand: %w", err)
	}
	if _, err := a.users.LinkBrand(ctx, brandUser.ID, brand.ID); err != nil {
		return fmt.Errorf("link brand user: %w", err)
	}

	inf, err := a.influencers.Create(ctx, seedInfluencer())
	if err != nil {
		return fmt.Errorf("seed influencer: %w", err)
	}
	if _, err := a.users.LinkInfluencer(ctx, infUser.ID, inf.ID); err != nil {
		return fmt.Errorf("link influencer user: %w", err)
	}

	campaign, err := a.campaigns.Create(ctx, seedCampaign(brand.ID))
	if err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}

	if _, err := a.submissions.Create(ctx, seedSubmission(campaign.ID, inf.ID, brand.ID)); err != nil {
		return fmt.Errorf("seed submission: %w", err)
	}

	a.log.Info("seeded demo data",
		"brand", brand.ID, "influencer", inf.ID, "campaign", campaign.ID)
	return nil
}
