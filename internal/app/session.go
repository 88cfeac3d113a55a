package app

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"game_store/internal/models"
	"game_store/internal/pkg/auth"
	"game_store/internal/pkg/logger"
	"game_store/internal/pkg/requester"
	"game_store/internal/storage"
)

// authKey is the storage key holding the serialized session.
const authKey = "authKey"

// State is the authentication state of a Session.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// TokenListener is notified after the session access token changes.
// An empty token means the session became anonymous.
type TokenListener func(ctx context.Context, token string)

// Session is the session store. It owns the token pair and the cached profile,
// persists them under a fixed storage key and pushes token changes to the HTTP
// client and to the registered listeners.
type Session struct {
	mu        sync.RWMutex
	data      models.Session
	state     State
	listeners []TokenListener

	auth   AuthAPI
	users  UserAPI
	tokens TokenSetter
	db     storage.Storage
	log    *logger.Logger
	now    func() time.Time
}

// NewSession creates an anonymous Session. Call Restore to load a persisted one.
func NewSession(authAPI AuthAPI, users UserAPI, tokens TokenSetter, db storage.Storage, l *logger.Logger) *Session {
	return &Session{
		auth:   authAPI,
		users:  users,
		tokens: tokens,
		db:     db,
		log:    l,
		now:    time.Now,
	}
}

// OnTokenChange registers fn to run after every token change.
func (s *Session) OnTokenChange(fn TokenListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Snapshot returns a copy of the cached session.
func (s *Session) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// State returns the current authentication state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated reports whether the session holds a non-empty access token.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.IsAuthenticated()
}

// UserID returns the session user id, or 0 when unknown.
func (s *Session) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.ID
}

// Email returns the session user email.
func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Email
}

// Money returns the cached balance.
func (s *Session) Money() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Money
}

// TokenExpired reports whether the access token is past its exp claim at now.
// An anonymous session is never expired.
func (s *Session) TokenExpired(now time.Time) bool {
	s.mu.RLock()
	token := s.data.AccessToken
	s.mu.RUnlock()

	if token == "" {
		return false
	}
	return auth.Expired(token, now)
}

// Login exchanges the credentials for a token pair, then fetches the full profile
// and merges it into the session. Failures are returned as form errors under the
// general key.
func (s *Session) Login(ctx context.Context, email, password string) models.FieldErrors {
	s.setState(StateAuthenticating)

	pair, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.log.Info("Login rejected", zap.String("email", email), zap.Error(err))
		s.setState(s.restingState())

		msg := "Login failed"
		if apiErr, ok := requester.AsAPIError(err); ok && apiErr.Detail() != "" {
			msg = apiErr.Detail()
		}
		return models.FieldErrors{models.GeneralError: msg}
	}

	s.establish(ctx, pair, email)
	return nil
}

// Register validates the form locally, creates the account and logs in with the
// same credentials. Invalid forms return field errors without any network call.
func (s *Session) Register(ctx context.Context, form models.Registration) models.FieldErrors {
	if fieldErrors := validateForm(form); fieldErrors != nil {
		return fieldErrors
	}

	s.setState(StateAuthenticating)

	if err := s.auth.Register(ctx, form.Email, form.Password); err != nil {
		s.log.Info("Registration rejected", zap.String("email", form.Email), zap.Error(err))
		s.setState(s.restingState())

		if apiErr, ok := requester.AsAPIError(err); ok {
			if fields := apiErr.FieldErrors(); len(fields) > 0 {
				return models.FieldErrors(fields)
			}
		}
		return models.FieldErrors{models.GeneralError: "Registration failed"}
	}

	pair, err := s.auth.Login(ctx, form.Email, form.Password)
	if err != nil {
		s.log.Error("Login after registration failed", zap.String("email", form.Email), zap.Error(err))
		s.setState(s.restingState())
		return models.FieldErrors{models.GeneralError: "Registration failed"}
	}

	s.establish(ctx, pair, form.Email)
	return nil
}

// establish replaces the session with a fresh token pair and hydrates the profile.
func (s *Session) establish(ctx context.Context, pair *models.TokenPair, email string) {
	data := models.Session{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		Email:        email,
	}
	if claims, err := auth.ParseClaims(pair.Access); err == nil {
		data.ID = claims.UserID
	}

	s.tokens.SetToken(pair.Access)
	data.Merge(s.users.Me(ctx))

	s.mu.Lock()
	s.data = data
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.persist(ctx, data)
	s.notify(ctx, pair.Access)
}

// Logout clears the session in memory and in storage. It never fails.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.data = models.Session{}
	s.state = StateAnonymous
	s.mu.Unlock()

	if err := s.db.Delete(ctx, authKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.log.Sugar().Errorf("Cannot clear stored session: %s", err)
	}
	s.tokens.SetToken("")
	s.notify(ctx, "")
}

// RefreshUser re-fetches the profile and merges it into the session. Fields absent
// from the response are kept. It is a no-op for anonymous sessions.
func (s *Session) RefreshUser(ctx context.Context) {
	if !s.IsAuthenticated() {
		return
	}

	profile := s.users.Me(ctx)
	if profile == nil {
		return
	}

	s.mu.Lock()
	if !s.data.IsAuthenticated() {
		s.mu.Unlock()
		return
	}
	s.data.Merge(profile)
	data := s.data
	s.mu.Unlock()

	s.persist(ctx, data)
}

// RefreshToken rotates the access token with the refresh token.
func (s *Session) RefreshToken(ctx context.Context) error {
	token, err := s.rotate(ctx)
	if err != nil {
		return err
	}
	s.notify(ctx, token)
	return nil
}

func (s *Session) rotate(ctx context.Context) (string, error) {
	s.mu.RLock()
	refresh := s.data.RefreshToken
	s.mu.RUnlock()

	if refresh == "" {
		return "", ErrNoRefreshToken
	}

	pair, err := s.auth.Refresh(ctx, refresh)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.data.AccessToken = pair.Access
	if pair.Refresh != "" {
		s.data.RefreshToken = pair.Refresh
	}
	data := s.data
	s.mu.Unlock()

	s.tokens.SetToken(pair.Access)
	s.persist(ctx, data)
	return pair.Access, nil
}

// Restore loads the persisted session. An expired access token is rotated; when the
// rotation is rejected the session is cleared. A restored session re-fetches the profile.
func (s *Session) Restore(ctx context.Context) error {
	raw, err := s.db.Get(ctx, authKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var data models.Session
	if err := json.Unmarshal(raw, &data); err != nil {
		s.log.Sugar().Warnf("Discarding unreadable stored session: %s", err)
		s.Logout(ctx)
		return nil
	}
	if !data.IsAuthenticated() {
		return nil
	}

	s.mu.Lock()
	s.data = data
	s.state = StateAuthenticated
	s.mu.Unlock()
	s.tokens.SetToken(data.AccessToken)

	if auth.Expired(data.AccessToken, s.now()) {
		if _, err := s.rotate(ctx); err != nil {
			s.log.Info("Stored session expired", zap.String("email", data.Email), zap.Error(err))
			s.Logout(ctx)
			return nil
		}
	}

	s.RefreshUser(ctx)

	s.mu.RLock()
	token := s.data.AccessToken
	s.mu.RUnlock()
	s.notify(ctx, token)
	return nil
}

// DeductMoney lowers the cached balance after a purchase. The next RefreshUser
// replaces it with the backend value.
func (s *Session) DeductMoney(ctx context.Context, amount decimal.Decimal) {
	s.mu.Lock()
	s.data.Money = s.data.Money.Sub(amount)
	data := s.data
	s.mu.Unlock()

	s.persist(ctx, data)
}

// IncrementGamesCount bumps the cached listing counter after a game is created.
func (s *Session) IncrementGamesCount(ctx context.Context) {
	s.mu.Lock()
	s.data.GamesCount++
	data := s.data
	s.mu.Unlock()

	s.persist(ctx, data)
}

// UpdateProfile submits the profile form and refreshes the cached profile.
func (s *Session) UpdateProfile(ctx context.Context, form models.ProfileForm) error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	profile := s.users.Update(ctx, s.UserID(), form)
	if profile == nil || profile.ID == nil {
		return ErrProfileUpdateFailed
	}

	s.mu.Lock()
	s.data.Merge(profile)
	data := s.data
	s.mu.Unlock()
	s.persist(ctx, data)

	s.RefreshUser(ctx)
	return nil
}

// DeleteAccount deletes the session user's account and logs out.
func (s *Session) DeleteAccount(ctx context.Context) error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if !s.users.Delete(ctx, s.UserID()) {
		return ErrAccountDeleteFailed
	}
	s.Logout(ctx)
	return nil
}

// Users lists the backend accounts, or an empty list when they cannot be fetched.
func (s *Session) Users(ctx context.Context) []models.Profile {
	return s.users.List(ctx)
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// restingState is the state a failed login falls back to.
func (s *Session) restingState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.IsAuthenticated() {
		return StateAuthenticated
	}
	return StateAnonymous
}

// persist writes data under authKey. Failures are logged only.
func (s *Session) persist(ctx context.Context, data models.Session) {
	raw, err := json.Marshal(data)
	if err != nil {
		s.log.Sugar().Errorf("Cannot encode session: %s", err)
		return
	}
	if err := s.db.Set(ctx, authKey, raw); err != nil {
		s.log.Sugar().Errorf("Cannot store session: %s", err)
	}
}

func (s *Session) notify(ctx context.Context, token string) {
	s.mu.RLock()
	listeners := make([]TokenListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(ctx, token)
	}
}
