package services

import (
	"context"

	"nitp-innovhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Note: AuthService implementation is in auth_service.go
// Note: UserService implementation is in user_service.go

// DirectorySyncer provisions the mentor directory entry for an approved
// application. Sync runs inside the caller's transaction so the approval
// write and the profile upsert commit together. A nil syncer means the
// guidance directory is not deployed and approval persists without it.
type DirectorySyncer interface {
	Sync(ctx context.Context, tx *gorm.DB, app *models.MentorApplication) (*models.MentorProfile, error)
}
