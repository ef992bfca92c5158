package services

import (
	"context"
	"errors"

	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/adapters/persistence/repositories"
	"nitp-innovhub/internal/core/domain"
	"nitp-innovhub/internal/pkg/password"

	"gorm.io/gorm"
)

// User service errors
var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrOldPasswordWrong    = errors.New("old password is incorrect")
	ErrCannotDeleteSelf    = errors.New("cannot delete your own account")
	ErrCannotChangeOwnRole = errors.New("cannot change your own role")
)

// UserService handles user management business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsersInput represents list users input
type ListUsersInput struct {
	Page  int
	Limit int
}

// ListUsersOutput represents list users output
type ListUsersOutput struct {
	Users      []*models.UserResponse `json:"users"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
}

// UpdateUserByAdminInput represents update user input (for admin)
type UpdateUserByAdminInput struct {
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// UpdateProfileInput represents update profile input (for self)
type UpdateProfileInput struct {
	FullName *string `json:"full_name"`
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ListUsers lists all users with pagination
func (s *UserService) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	// Set defaults
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 10
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	offset := (input.Page - 1) * input.Limit

	users, total, err := s.userRepo.List(ctx, offset, input.Limit)
	if err != nil {
		return nil, err
	}

	userResponses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = user.ToResponse()
	}

	totalPages := int(total) / input.Limit
	if int(total)%input.Limit > 0 {
		totalPages++
	}

	return &ListUsersOutput{
		Users:      userResponses,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return user.ToResponse(), nil
}

// UpdateUserByAdmin updates a user by admin
func (s *UserService) UpdateUserByAdmin(ctx context.Context, id uint, adminID uint, input *UpdateUserByAdminInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	// Prevent admin from changing own role
	if id == adminID && input.Role != nil {
		return nil, ErrCannotChangeOwnRole
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}

	if input.Role != nil {
		switch *input.Role {
		case models.RoleStudent, models.RoleMentor, models.RoleAdmin:
			user.Role = *input.Role
		default:
			return nil, errors.New("invalid role")
		}
	}

	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// DeleteUser deletes a user (soft delete)
func (s *UserService) DeleteUser(ctx context.Context, id uint, adminID uint) error {
	// Prevent admin from deleting self
	if id == adminID {
		return ErrCannotDeleteSelf
	}

	// Check if user exists
	_, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.userRepo.Delete(ctx, id)
}

// GetProfile gets own profile
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.UserResponse, error) {
	return s.GetUserByID(ctx, userID)
}

// UpdateProfile updates own profile
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// ChangePassword changes user's password
func (s *UserService) ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	// Verify old password
	if !password.Verify(input.OldPassword, user.Password) {
		return ErrOldPasswordWrong
	}

	// Validate new password
	if !password.ValidatePassword(input.NewPassword) {
		return domain.ErrInvalidInput
	}

	// Hash new password
	hashedPassword, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}
