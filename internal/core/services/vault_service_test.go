package services

import (
	"context"
	"testing"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVaultService(t *testing.T) (*VaultService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewVaultService(
		repositories.NewBranchRepository(db),
		repositories.NewSubjectRepository(db),
		repositories.NewResourceRepository(db),
	)
	return svc, db
}

// seedVault loads a small catalog: two branches, three subjects and four
// resources spread over types and semesters.
func seedVault(t *testing.T, db *gorm.DB) {
	t.Helper()

	cse := &models.Branch{Name: "Computer Science & Engineering", Code: "CSE", IsActive: true}
	ece := &models.Branch{Name: "Electronics & Communication", Code: "ECE", IsActive: true}
	require.NoError(t, db.Create(cse).Error)
	require.NoError(t, db.Create(ece).Error)

	dsa := &models.Subject{Name: "Data Structures", Code: "CS2101", BranchID: cse.ID, Semester: 3, IsActive: true}
	os := &models.Subject{Name: "Operating Systems", Code: "CS2301", BranchID: cse.ID, Semester: 4, IsActive: true}
	signals := &models.Subject{Name: "Signals and Systems", Code: "EC2102", BranchID: ece.ID, Semester: 3, IsActive: true}
	require.NoError(t, db.Create(dsa).Error)
	require.NoError(t, db.Create(os).Error)
	require.NoError(t, db.Create(signals).Error)

	resources := []*models.Resource{
		{SubjectID: dsa.ID, Title: "DSA End Sem 2024", ResourceType: models.ResourceTypePYQ, ExamType: models.ExamTypeEnd, FileURL: "https://drive.example/dsa-end-2024", IsActive: true},
		{SubjectID: dsa.ID, Title: "DSA Class Notes", ResourceType: models.ResourceTypeNotes, ExamType: models.ExamTypeNA, FileURL: "https://drive.example/dsa-notes", IsActive: true},
		{SubjectID: os.ID, Title: "OS Mid Sem 2023", ResourceType: models.ResourceTypePYQ, ExamType: models.ExamTypeMid, FileURL: "https://drive.example/os-mid-2023", IsActive: true},
		{SubjectID: signals.ID, Title: "Oppenheim Reference Book", ResourceType: models.ResourceTypeBook, ExamType: models.ExamTypeNA, FileURL: "https://drive.example/oppenheim", IsActive: true},
	}
	for _, r := range resources {
		require.NoError(t, db.Create(r).Error)
	}
}

func intPtr(v int) *int { return &v }

func TestVaultListResources(t *testing.T) {
	svc, db := newVaultService(t)
	seedVault(t, db)
	ctx := context.Background()

	t.Run("unfiltered listing with facets", func(t *testing.T) {
		listing, err := svc.ListResources(ctx, &ListResourcesInput{})
		require.NoError(t, err)
		assert.Equal(t, 4, listing.Total)
		assert.Len(t, listing.Branches, 2)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, listing.Semesters)
		assert.Equal(t, []string{models.ResourceTypePYQ, models.ResourceTypeNotes, models.ResourceTypeBook}, listing.ResourceTypes)
	})

	t.Run("filters combine conjunctively", func(t *testing.T) {
		listing, err := svc.ListResources(ctx, &ListResourcesInput{
			BranchCode:   "CSE",
			ResourceType: models.ResourceTypePYQ,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, listing.Total)

		listing, err = svc.ListResources(ctx, &ListResourcesInput{
			BranchCode:   "CSE",
			ResourceType: models.ResourceTypePYQ,
			Semester:     intPtr(3),
		})
		require.NoError(t, err)
		require.Equal(t, 1, listing.Total)
		assert.Equal(t, "DSA End Sem 2024", listing.Groups[0].Resources[0].Title)
	})

	t.Run("groups results by subject", func(t *testing.T) {
		listing, err := svc.ListResources(ctx, &ListResourcesInput{BranchCode: "CSE"})
		require.NoError(t, err)
		assert.Equal(t, 3, listing.Total)
		require.Len(t, listing.Groups, 2)
		for _, group := range listing.Groups {
			require.NotNil(t, group.Subject)
			assert.NotEmpty(t, group.Resources)
		}
	})

	t.Run("exam filter", func(t *testing.T) {
		listing, err := svc.ListResources(ctx, &ListResourcesInput{ExamType: models.ExamTypeMid})
		require.NoError(t, err)
		require.Equal(t, 1, listing.Total)
		assert.Equal(t, "OS Mid Sem 2023", listing.Groups[0].Resources[0].Title)
	})

	t.Run("search matches titles and subjects", func(t *testing.T) {
		listing, err := svc.ListResources(ctx, &ListResourcesInput{Search: "operating"})
		require.NoError(t, err)
		assert.Equal(t, 1, listing.Total)
	})

	t.Run("out of range semester is ignored", func(t *testing.T) {
		listing, err := svc.ListResources(ctx, &ListResourcesInput{Semester: intPtr(9)})
		require.NoError(t, err)
		assert.Equal(t, 4, listing.Total)
	})

	t.Run("unknown type and exam values are ignored", func(t *testing.T) {
		listing, err := svc.ListResources(ctx, &ListResourcesInput{ResourceType: "SLIDES", ExamType: "FINALS"})
		require.NoError(t, err)
		assert.Equal(t, 4, listing.Total)
	})

	t.Run("no matches yields an empty page, not an error", func(t *testing.T) {
		listing, err := svc.ListResources(ctx, &ListResourcesInput{Search: "quantum"})
		require.NoError(t, err)
		assert.Zero(t, listing.Total)
		assert.Empty(t, listing.Groups)
		assert.Len(t, listing.Branches, 2, "facets survive an empty result")
	})
}

func TestVaultListSubjects(t *testing.T) {
	svc, db := newVaultService(t)
	seedVault(t, db)
	ctx := context.Background()

	subjects, err := svc.ListSubjects(ctx, "CSE", nil)
	require.NoError(t, err)
	assert.Len(t, subjects, 2)

	subjects, err = svc.ListSubjects(ctx, "CSE", intPtr(3))
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "CS2101", subjects[0].Code)

	// A nonsense semester falls back to the unfiltered branch listing
	subjects, err = svc.ListSubjects(ctx, "CSE", intPtr(12))
	require.NoError(t, err)
	assert.Len(t, subjects, 2)

	_, err = svc.ListSubjects(ctx, "AERO", nil)
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestVaultAdminCatalog(t *testing.T) {
	svc, db := newVaultService(t)
	seedVault(t, db)
	ctx := context.Background()

	t.Run("subject needs a real branch and semester", func(t *testing.T) {
		_, err := svc.CreateSubject(ctx, &CreateSubjectInput{Name: "X", Code: "X1", BranchID: 9999, Semester: 1})
		assert.ErrorIs(t, err, ErrBranchNotFound)

		_, err = svc.CreateSubject(ctx, &CreateSubjectInput{Name: "X", Code: "X1", BranchID: 1, Semester: 9})
		assert.ErrorIs(t, err, ErrInvalidSemester)
	})

	t.Run("resource type is validated and exam defaults to NA", func(t *testing.T) {
		_, err := svc.CreateResource(ctx, &CreateResourceInput{
			SubjectID: 1, Title: "Slides", ResourceType: "SLIDES", FileURL: "https://x",
		})
		assert.ErrorIs(t, err, ErrInvalidResourceType)

		res, err := svc.CreateResource(ctx, &CreateResourceInput{
			SubjectID: 1, Title: "DSA Quick Revision", ResourceType: models.ResourceTypeNotes, FileURL: "https://x",
		})
		require.NoError(t, err)
		assert.Equal(t, models.ExamTypeNA, res.ExamType)
		assert.True(t, res.IsActive)
	})

	t.Run("delete is a soft disable", func(t *testing.T) {
		before, err := svc.ListResources(ctx, &ListResourcesInput{})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteResource(ctx, 1))

		after, err := svc.ListResources(ctx, &ListResourcesInput{})
		require.NoError(t, err)
		assert.Equal(t, before.Total-1, after.Total)

		// The row itself survives for the audit trail
		var row models.Resource
		require.NoError(t, db.First(&row, 1).Error)
		assert.False(t, row.IsActive)

		assert.ErrorIs(t, svc.DeleteResource(ctx, 9999), ErrResourceNotFound)
	})
}
