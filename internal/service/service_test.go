package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	orderedmap "github.com/pb33f/ordered-map/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendai/internal/db"
	"trendai/internal/db/repository"
	"trendai/internal/domain"
	"trendai/internal/middleware"
)

// testEnv wires every service against a real SQLite database.
type testEnv struct {
	auth        *AuthService
	users       *UserService
	brands      *BrandService
	influencers *InfluencerService
	campaigns   *CampaignService
	submissions *SubmissionService
	reports     *ReportService

	brandRepo      *repository.BrandRepo
	campaignRepo   *repository.CampaignRepo
	submissionRepo *repository.SubmissionRepo
	auditRepo      *repository.AuditRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	writeDB, _ := db.OpenTestSQLite(t)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := repository.NewUserRepo(writeDB)
	brands := repository.NewBrandRepo(writeDB)
	influencers := repository.NewInfluencerRepo(writeDB)
	campaigns := repository.NewCampaignRepo(writeDB)
	submissions := repository.NewSubmissionRepo(writeDB)
	audit := repository.NewAuditRepo(writeDB)

	signer, err := middleware.NewHS256Verifier("service-test-secret")
	require.NoError(t, err)

	return &testEnv{
		auth:        NewAuthService(users, brands, influencers, audit, signer, time.Hour, log),
		users:       NewUserService(users, brands, influencers, audit, log),
		brands:      NewBrandService(brands, audit, log),
		influencers: NewInfluencerService(influencers, audit, log),
		campaigns:   NewCampaignService(campaigns, brands, audit, log),
		submissions: NewSubmissionService(submissions, campaigns, audit, log),
		reports:     NewReportService(brands, influencers, campaigns, submissions, log),

		brandRepo:      brands,
		campaignRepo:   campaigns,
		submissionRepo: submissions,
		auditRepo:      audit,
	}
}

func (e *testEnv) createBrand(t *testing.T, name string) *domain.Brand {
	t.Helper()
	brand, err := e.brands.Create(context.Background(), domain.CreateBrandRequest{
		Name: name, Industry: "Fashion", Website: "https://" + name + ".test",
	})
	require.NoError(t, err)
	return brand
}

func (e *testEnv) createCampaign(t *testing.T, brandID, name string) *domain.Campaign {
	t.Helper()
	campaign, err := e.campaigns.Create(context.Background(), domain.CreateCampaignRequest{
		Name: name, BrandID: brandID, Budget: 1000,
		StartDate: time.Now().Add(-24 * time.Hour),
		EndDate:   time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	return campaign
}

func (e *testEnv) createInfluencer(t *testing.T, name string) *domain.Influencer {
	t.Helper()
	inf, err := e.influencers.Create(context.Background(), domain.CreateInfluencerRequest{
		Name: name, Handle: "@" + name, Platform: "instagram", FollowersCount: 100,
	})
	require.NoError(t, err)
	return inf
}

func (e *testEnv) createSubmission(t *testing.T, campaignID, influencerID, brandID string) *domain.Submission {
	t.Helper()
	sub, err := e.submissions.Create(context.Background(), domain.CreateSubmissionRequest{
		CampaignID:   campaignID,
		InfluencerID: influencerID,
		BrandID:      brandID,
		ContentLink:  "https://posts.test/1",
		Engagement:   domain.Engagement{Likes: 10, Comments: 2},
	})
	require.NoError(t, err)
	return sub
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.Register(ctx, domain.CreateUserRequest{
		Email: "ann@brand.test", Password: "s3cret", Role: domain.RoleBrand,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cret", user.PasswordHash, "password must not be stored in clear")

	result, err := env.auth.Login(ctx, domain.LoginRequest{Email: "ann@brand.test", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful", result.Message)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, domain.RoleBrand, result.User.Role)
	assert.Nil(t, result.User.Profile)
}

func TestAuthService_LoginFailuresIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, domain.CreateUserRequest{
		Email: "ann@brand.test", Password: "s3cret", Role: domain.RoleBrand,
	})
	require.NoError(t, err)

	_, wrongPass := env.auth.Login(ctx, domain.LoginRequest{Email: "ann@brand.test", Password: "nope"})
	_, unknownUser := env.auth.Login(ctx, domain.LoginRequest{Email: "ghost@brand.test", Password: "nope"})

	require.Error(t, wrongPass)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPass.Error(), unknownUser.Error())
}

func TestAuthService_RegisterRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(context.Background(), domain.CreateUserRequest{
		Email: "x@y.test", Password: "pw", Role: "admin",
	})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := domain.CreateUserRequest{Email: "dup@x.test", Password: "pw", Role: domain.RoleInfluencer}
	_, err := env.auth.Register(ctx, req)
	require.NoError(t, err)

	_, err = env.auth.Register(ctx, req)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestAuthService_LoginEmbedsLinkedProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.Register(ctx, domain.CreateUserRequest{
		Email: "owner@brand.test", Password: "pw", Role: domain.RoleBrand,
	})
	require.NoError(t, err)

	brand := env.createBrand(t, "acme")
	_, err = env.users.LinkBrand(ctx, user.ID, brand.ID)
	require.NoError(t, err)

	result, err := env.auth.Login(ctx, domain.LoginRequest{Email: "owner@brand.test", Password: "pw"})
	require.NoError(t, err)
	profile, ok := result.User.Profile.(*domain.Brand)
	require.True(t, ok)
	assert.Equal(t, brand.ID, profile.ID)
	assert.Contains(t, profile.MemberUserIDs, user.ID)
}

func TestUserService_LinkInfluencer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.Register(ctx, domain.CreateUserRequest{
		Email: "ann@inf.test", Password: "pw", Role: domain.RoleInfluencer,
	})
	require.NoError(t, err)
	inf := env.createInfluencer(t, "ann")

	linked, err := env.users.LinkInfluencer(ctx, user.ID, inf.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, linked.OwnerUserID)
}

func TestUserService_LinkMissingTarget(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.Register(ctx, domain.CreateUserRequest{
		Email: "ann@inf.test", Password: "pw", Role: domain.RoleInfluencer,
	})
	require.NoError(t, err)

	var notFound *domain.NotFoundError
	_, err = env.users.LinkBrand(ctx, user.ID, "no-such-brand")
	require.ErrorAs(t, err, &notFound)
	_, err = env.users.LinkInfluencer(ctx, "no-such-user", "no-such-influencer")
	require.ErrorAs(t, err, &notFound)
}

func TestBrandService_CRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	brand := env.createBrand(t, "acme")

	got, err := env.brands.Get(ctx, brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "acme", got.Name)

	newName := "acme-renamed"
	updated, err := env.brands.Update(ctx, brand.ID, domain.UpdateBrandRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, "Fashion", updated.Industry)

	all, err := env.brands.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, env.brands.Delete(ctx, brand.ID))
	var notFound *domain.NotFoundError
	_, err = env.brands.Get(ctx, brand.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestCampaignService_CreateRequiresBrand(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.campaigns.Create(context.Background(), domain.CreateCampaignRequest{
		Name: "orphan", BrandID: "no-such-brand",
	})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCampaignService_StatusDefaultsToActive(t *testing.T) {
	env := newTestEnv(t)

	brand := env.createBrand(t, "acme")
	campaign := env.createCampaign(t, brand.ID, "summer")
	assert.Equal(t, domain.CampaignActive, campaign.Status)
}

func TestCampaignService_CompleteExpired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	brand := env.createBrand(t, "acme")
	expired, err := env.campaigns.Create(ctx, domain.CreateCampaignRequest{
		Name: "past", BrandID: brand.ID,
		StartDate: time.Now().Add(-48 * time.Hour),
		EndDate:   time.Now().Add(-24 * time.Hour),
	})
	require.NoError(t, err)
	current := env.createCampaign(t, brand.ID, "current")

	n, err := env.campaigns.CompleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := env.campaigns.Get(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignCompleted, got.Status)

	got, err = env.campaigns.Get(ctx, current.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignActive, got.Status)

	// Second sweep finds nothing.
	n, err = env.campaigns.CompleteExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSubmissionService_CreateStartsPending(t *testing.T) {
	env := newTestEnv(t)

	brand := env.createBrand(t, "acme")
	campaign := env.createCampaign(t, brand.ID, "summer")
	inf := env.createInfluencer(t, "ann")

	sub := env.createSubmission(t, campaign.ID, inf.ID, brand.ID)
	assert.Equal(t, domain.SubmissionPending, sub.Status)
	assert.False(t, sub.SubmittedAt.IsZero())
}

func TestSubmissionService_CreateRequiresCampaign(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.submissions.Create(context.Background(), domain.CreateSubmissionRequest{
		CampaignID: "no-such-campaign", InfluencerID: "i", BrandID: "b", ContentLink: "https://x",
	})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSubmissionService_ApprovalRecordsReviewer(t *testing.T) {
	env := newTestEnv(t)

	brand := env.createBrand(t, "acme")
	campaign := env.createCampaign(t, brand.ID, "summer")
	inf := env.createInfluencer(t, "ann")
	sub := env.createSubmission(t, campaign.ID, inf.ID, brand.ID)

	reviewer, err := env.auth.Register(context.Background(), domain.CreateUserRequest{
		Email: "rev@brand.test", Password: "pw", Role: domain.RoleBrand,
	})
	require.NoError(t, err)

	ctx := domain.WithPrincipal(context.Background(), domain.ContextPrincipal{
		SubjectID: reviewer.ID, Role: domain.RoleBrand,
	})
	status := domain.SubmissionApproved
	updated, err := env.submissions.Update(ctx, sub.ID, domain.UpdateSubmissionRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionApproved, updated.Status)
	require.NotNil(t, updated.ApproverID)
	assert.Equal(t, reviewer.ID, *updated.ApproverID)
}

func TestReportService_BrandReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	brand := env.createBrand(t, "acme")
	summer := env.createCampaign(t, brand.ID, "summer")
	winter := env.createCampaign(t, brand.ID, "winter")
	ann := env.createInfluencer(t, "ann")
	bob := env.createInfluencer(t, "bob")

	env.createSubmission(t, summer.ID, ann.ID, brand.ID)
	env.createSubmission(t, summer.ID, bob.ID, brand.ID)
	env.createSubmission(t, winter.ID, ann.ID, brand.ID)

	tree, err := env.reports.BrandReport(ctx, brand.ID)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, summer.ID, tree[0].ID)
	assert.Len(t, tree[0].Influencers, 2)
	assert.Equal(t, winter.ID, tree[1].ID)
	assert.Len(t, tree[1].Influencers, 1)
}

func TestReportService_BrandReportMissingBrand(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reports.BrandReport(context.Background(), "no-such-brand")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestReportService_BrandReportEmpty(t *testing.T) {
	env := newTestEnv(t)

	brand := env.createBrand(t, "quiet")
	tree, err := env.reports.BrandReport(context.Background(), brand.ID)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestReportService_InfluencerReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	acme := env.createBrand(t, "acme")
	globex := env.createBrand(t, "globex")
	summer := env.createCampaign(t, acme.ID, "summer")
	launch := env.createCampaign(t, globex.ID, "launch")
	ann := env.createInfluencer(t, "ann")

	env.createSubmission(t, summer.ID, ann.ID, acme.ID)
	env.createSubmission(t, launch.ID, ann.ID, globex.ID)
	env.createSubmission(t, summer.ID, ann.ID, acme.ID)

	groups, err := env.reports.InfluencerReport(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, groups.Len())

	node, ok := groups.Get(acme.ID)
	require.True(t, ok)
	name, _ := node.Get("name")
	assert.Equal(t, "acme", name)
	campaignsAny, ok := node.Get("campaigns")
	require.True(t, ok)
	campaigns := campaignsAny.(*orderedmap.OrderedMap[string, interface{}])
	assert.Equal(t, 1, campaigns.Len())
}

func TestReportService_OrphanedSubmissionsSkipped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	brand := env.createBrand(t, "acme")
	keep := env.createCampaign(t, brand.ID, "keep")
	doomed := env.createCampaign(t, brand.ID, "doomed")
	ann := env.createInfluencer(t, "ann")

	env.createSubmission(t, keep.ID, ann.ID, brand.ID)
	orphan := env.createSubmission(t, doomed.ID, ann.ID, brand.ID)

	require.NoError(t, env.campaigns.Delete(ctx, doomed.ID))

	// The orphan row still exists.
	_, err := env.submissions.Get(ctx, orphan.ID)
	require.NoError(t, err)

	tree, err := env.reports.BrandReport(ctx, brand.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, keep.ID, tree[0].ID)
	require.Len(t, tree[0].Influencers, 1)
	assert.Len(t, tree[0].Influencers[0].Submissions, 1)

	groups, err := env.reports.InfluencerReport(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, groups.Len())
}

func TestAuditTrailRecordsMutations(t *testing.T) {
	env := newTestEnv(t)
	ctx := domain.WithPrincipal(context.Background(), domain.ContextPrincipal{
		SubjectID: "user-1", Role: domain.RoleBrand,
	})

	_, err := env.brands.Create(ctx, domain.CreateBrandRequest{
		Name: "acme", Industry: "Fashion", Website: "https://acme.test",
	})
	require.NoError(t, err)

	entries, err := env.auditRepo.List(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "CREATE_BRAND", entries[0].Action)
	assert.Equal(t, "user-1", entries[0].Principal)
}
