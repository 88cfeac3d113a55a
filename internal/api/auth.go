package api

import (
	"context"

	"game_store/internal/models"
	"game_store/internal/pkg/logger"
	"game_store/internal/pkg/requester"
)

const authPath = "/auth/"

// AuthService serves the token and sign-up endpoints.
type AuthService struct {
	client *requester.Client
	log    *logger.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(client *requester.Client, l *logger.Logger) *AuthService {
	return &AuthService{client: client, log: l}
}

// Login exchanges credentials for a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	var pair models.TokenPair
	body := models.Credentials{Email: email, Password: password}
	if err := s.client.Post(ctx, authPath+"token/", body, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Register creates an account. It does not log in.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	body := models.Credentials{Email: email, Password: password}
	return s.client.Post(ctx, accountsPath+"signup/", body, nil)
}

// Refresh exchanges a refresh token for a new access token. Refresh is empty in the
// result unless the backend rotates refresh tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	var pair models.TokenPair
	body := map[string]string{"refresh": refreshToken}
	if err := s.client.Post(ctx, authPath+"token/refresh/", body, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}
