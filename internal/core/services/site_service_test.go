package services

import (
	"context"
	"testing"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/adapters/persistence/repositories"
	"nitp-innovhub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSiteService(t *testing.T) (*SiteService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewSiteService(
		repositories.NewSiteRepository(db),
		repositories.NewInquiryRepository(db),
		newTestConfig(),
	)
	return svc, db
}

func strPtr(s string) *string { return &s }

func TestSiteConfiguration(t *testing.T) {
	svc, db := newSiteService(t)
	ctx := context.Background()

	_, err := svc.GetConfiguration(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// First update creates the row
	cfg, err := svc.UpdateConfiguration(ctx, &UpdateConfigurationInput{
		SiteName:   strPtr("Innovation Hub"),
		FooterText: strPtr("Made by students, for students"),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, cfg.ID)

	// Later updates patch the same row
	cfg, err = svc.UpdateConfiguration(ctx, &UpdateConfigurationInput{
		VisionStatement: strPtr("Every junior finds a senior"),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, cfg.ID)
	assert.Equal(t, "Innovation Hub", cfg.SiteName)
	assert.Equal(t, "Every junior finds a senior", cfg.VisionStatement)

	var count int64
	require.NoError(t, db.Model(&models.SiteConfiguration{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSiteNavbarAndCards(t *testing.T) {
	svc, _ := newSiteService(t)
	ctx := context.Background()

	_, err := svc.CreateNavbarLink(ctx, &models.NavbarLink{Label: "Vault", URL: "/vault", SortOrder: 2, IsActive: true})
	require.NoError(t, err)
	_, err = svc.CreateNavbarLink(ctx, &models.NavbarLink{Label: "Home", URL: "/", SortOrder: 1, IsActive: true})
	require.NoError(t, err)
	hidden, err := svc.CreateNavbarLink(ctx, &models.NavbarLink{Label: "Old", URL: "/old", SortOrder: 0, IsActive: false})
	require.NoError(t, err)

	_, err = svc.CreateNavbarLink(ctx, &models.NavbarLink{URL: "/nolabel"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Public listing: active only, sort order ascending
	links, err := svc.GetNavbarLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "Home", links[0].Label)
	assert.Equal(t, "Vault", links[1].Label)

	require.NoError(t, svc.DeleteNavbarLink(ctx, hidden.ID))
	assert.ErrorIs(t, svc.DeleteNavbarLink(ctx, 9999), domain.ErrNotFound)

	// Cards follow the same shape
	card, err := svc.CreateBentoCard(ctx, &models.BentoCard{Title: "Find a Mentor", LinkURL: "/guidance", IsActive: true})
	require.NoError(t, err)

	cards, err := svc.GetBentoCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, card.Title, cards[0].Title)
}

func TestSiteNavbarLinkUpdate(t *testing.T) {
	svc, _ := newSiteService(t)
	ctx := context.Background()

	link, err := svc.CreateNavbarLink(ctx, &models.NavbarLink{Label: "Vault", URL: "/vault", SortOrder: 2, IsActive: true})
	require.NoError(t, err)

	// Patch semantics: untouched fields keep their stored values
	sortOrder := 1
	updated, err := svc.UpdateNavbarLink(ctx, link.ID, &UpdateNavbarLinkInput{
		Label:     strPtr("Resource Vault"),
		SortOrder: &sortOrder,
	})
	require.NoError(t, err)
	assert.Equal(t, "Resource Vault", updated.Label)
	assert.Equal(t, "/vault", updated.URL)
	assert.Equal(t, 1, updated.SortOrder)

	// Deactivating removes the link from the public listing
	inactive := false
	_, err = svc.UpdateNavbarLink(ctx, link.ID, &UpdateNavbarLinkInput{IsActive: &inactive})
	require.NoError(t, err)
	links, err := svc.GetNavbarLinks(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)

	_, err = svc.UpdateNavbarLink(ctx, link.ID, &UpdateNavbarLinkInput{Label: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.UpdateNavbarLink(ctx, 9999, &UpdateNavbarLinkInput{Label: strPtr("Ghost")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSiteRoadmaps(t *testing.T) {
	svc, _ := newSiteService(t)
	ctx := context.Background()

	_, err := svc.CreateRoadmap(ctx, &models.GuidanceRoadmap{
		Title:       "CSE Placement Roadmap",
		Category:    models.RoadmapCategoryCSE,
		ContentLink: "https://notion.example/cse-roadmap",
		IsActive:    true,
	})
	require.NoError(t, err)
	_, err = svc.CreateRoadmap(ctx, &models.GuidanceRoadmap{
		Title:       "Core Electronics Track",
		Category:    models.RoadmapCategoryECE,
		ContentLink: "https://notion.example/ece-roadmap",
		IsActive:    true,
	})
	require.NoError(t, err)

	all, err := svc.GetRoadmaps(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	cse, err := svc.GetRoadmaps(ctx, models.RoadmapCategoryCSE)
	require.NoError(t, err)
	require.Len(t, cse, 1)
	assert.Equal(t, "CSE Placement Roadmap", cse[0].Title)

	// Patch semantics mirror navbar links
	updated, err := svc.UpdateRoadmap(ctx, cse[0].ID, &UpdateRoadmapInput{
		Title:       strPtr("CSE Placement Roadmap 2026"),
		ContentLink: strPtr("https://notion.example/cse-roadmap-2026"),
	})
	require.NoError(t, err)
	assert.Equal(t, "CSE Placement Roadmap 2026", updated.Title)
	assert.Equal(t, models.RoadmapCategoryCSE, updated.Category)

	_, err = svc.UpdateRoadmap(ctx, cse[0].ID, &UpdateRoadmapInput{ContentLink: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.UpdateRoadmap(ctx, 9999, &UpdateRoadmapInput{Title: strPtr("Ghost")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSiteInquiries(t *testing.T) {
	svc, _ := newSiteService(t)
	ctx := context.Background()

	valid := &SubmitInquiryInput{
		StudentName:     "Riya Kumari",
		Email:           "riya.ug23@nitp.ac.in",
		Subject:         "Hostel wifi for night study",
		Message:         "Who do I talk to about lab access after 10pm?",
		StudentWhatsapp: "+919800000002",
	}

	t.Run("rejects outside email", func(t *testing.T) {
		input := *valid
		input.Email = "riya@gmail.com"
		_, err := svc.SubmitInquiry(ctx, &input)
		assert.ErrorIs(t, err, domain.ErrNonInstituteEmail)
	})

	t.Run("submit and resolve", func(t *testing.T) {
		inquiry, err := svc.SubmitInquiry(ctx, valid)
		require.NoError(t, err)
		assert.False(t, inquiry.IsResolved)

		unresolved := false
		list, total, err := svc.ListInquiries(ctx, &ListInquiriesInput{Resolved: &unresolved})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, list, 1)

		resolved, err := svc.ResolveInquiry(ctx, inquiry.ID)
		require.NoError(t, err)
		assert.True(t, resolved.IsResolved)

		list, total, err = svc.ListInquiries(ctx, &ListInquiriesInput{Resolved: &unresolved})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, list)

		_, err = svc.ResolveInquiry(ctx, 9999)
		assert.ErrorIs(t, err, ErrInquiryNotFound)
	})
}
