package api

import (
	"context"

	"go.uber.org/zap"

	"game_store/internal/models"
	"game_store/internal/pkg/logger"
	"game_store/internal/pkg/requester"
)

const accountsPath = "/accounts/"

// UserService serves the account endpoints.
// Its operations degrade to nil/empty results on failure so a failed profile read
// never blocks rendering; failures are logged.
type UserService struct {
	client *requester.Client
	log    *logger.Logger
}

// NewUserService creates a UserService.
func NewUserService(client *requester.Client, l *logger.Logger) *UserService {
	return &UserService{client: client, log: l}
}

// Me returns the current user, or nil when it cannot be fetched.
func (s *UserService) Me(ctx context.Context) *models.Profile {
	var p models.Profile
	if err := s.client.Get(ctx, accountsPath+"me/", &p); err != nil {
		s.log.Error("Cannot fetch current user", zap.Error(err))
		return nil
	}
	return &p
}

// List returns every user, or an empty list when it cannot be fetched.
func (s *UserService) List(ctx context.Context) []models.Profile {
	users := make([]models.Profile, 0)
	if err := s.client.Get(ctx, accountsPath+"users/", &users); err != nil {
		s.log.Error("Cannot fetch users list", zap.Error(err))
		return make([]models.Profile, 0)
	}
	return users
}

// Update patches the user's details, or returns nil when the update fails.
func (s *UserService) Update(ctx context.Context, userID int64, form models.ProfileForm) *models.Profile {
	f := requester.NewForm().
		Set("first_name", form.FirstName).
		Set("last_name", form.LastName)
	if form.Picture != nil {
		f.AddFile("profile_picture", form.Picture.Name, form.Picture.ContentType, form.Picture.Content)
	}

	var p models.Profile
	if err := s.client.PatchForm(ctx, accountsPath+"users/"+id(userID)+"/", f, &p); err != nil {
		s.log.Error("Cannot update user", zap.Int64("user_id", userID), zap.Error(err))
		return nil
	}
	return &p
}

// Delete removes the user's account and reports whether the backend accepted it.
func (s *UserService) Delete(ctx context.Context, userID int64) bool {
	if err := s.client.Delete(ctx, accountsPath+"delete/"+id(userID)+"/", nil); err != nil {
		s.log.Error("Cannot delete user", zap.Int64("user_id", userID), zap.Error(err))
		return false
	}
	return true
}
