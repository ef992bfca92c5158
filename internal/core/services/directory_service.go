package services

import (
	"context"
	"errors"
	"log"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/pkg/eligibility"

	"gorm.io/gorm"
)

// DirectoryService keeps the mentor directory in step with approved
// applications. It implements DirectorySyncer.
type DirectoryService struct{}

// NewDirectoryService creates a new directory service
func NewDirectoryService() *DirectoryService {
	return &DirectoryService{}
}

// Sync gets or creates the account behind the application's email and
// upserts its mentor profile from the application. Idempotent: re-approving
// the same application updates the existing profile, never duplicates it.
func (s *DirectoryService) Sync(ctx context.Context, tx *gorm.DB, app *models.MentorApplication) (*models.MentorProfile, error) {
	user, err := s.getOrCreateUser(ctx, tx, app)
	if err != nil {
		return nil, err
	}

	var profile models.MentorProfile
	err = tx.WithContext(ctx).Where("user_id = ?", user.ID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.MentorProfile{
			UserID:         user.ID,
			Branch:         app.Branch,
			Year:           app.Year,
			Bio:            app.Bio(),
			MentorWhatsapp: app.MentorWhatsapp,
			IsApproved:     true,
		}
		if err := tx.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, err
		}
		log.Printf("✅ Mentor profile created for %s", app.Email)
	case err != nil:
		return nil, err
	default:
		profile.Branch = app.Branch
		profile.Year = app.Year
		profile.Bio = app.Bio()
		profile.MentorWhatsapp = app.MentorWhatsapp
		profile.IsApproved = true
		if err := tx.WithContext(ctx).Save(&profile).Error; err != nil {
			return nil, err
		}
		log.Printf("✅ Mentor profile updated for %s", app.Email)
	}

	return &profile, nil
}

// getOrCreateUser finds the account by email or provisions one. Provisioned
// accounts get the email's local part as username and no usable credential.
func (s *DirectoryService) getOrCreateUser(ctx context.Context, tx *gorm.DB, app *models.MentorApplication) (*models.User, error) {
	var user models.User
	err := tx.WithContext(ctx).Where("email = ?", app.Email).First(&user).Error
	if err == nil {
		if user.Role == models.RoleStudent {
			user.Role = models.RoleMentor
			if err := tx.WithContext(ctx).Save(&user).Error; err != nil {
				return nil, err
			}
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	username := eligibility.LocalPart(app.Email)

	// Fall back to the full email if the handle is taken by another account
	var taken int64
	if err := tx.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Count(&taken).Error; err != nil {
		return nil, err
	}
	if taken > 0 {
		username = app.Email
	}

	user = models.User{
		Username: username,
		Email:    app.Email,
		FullName: app.FullName,
		Password: "",
		Role:     models.RoleMentor,
		IsActive: true,
	}
	if err := tx.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	log.Printf("✅ Mentor account provisioned: %s (%s)", user.Username, user.Email)
	return &user, nil
}
