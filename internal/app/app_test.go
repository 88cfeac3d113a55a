package app

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"game_store/internal/app/mocks"
	"game_store/internal/models"
	"game_store/internal/pkg/auth"
	"game_store/internal/pkg/logger"
	"game_store/internal/storage"
)

type fixture struct {
	ctrl      *gomock.Controller
	games     *mocks.MockGameAPI
	purchases *mocks.MockPurchaseAPI
	comments  *mocks.MockCommentAPI
	users     *mocks.MockUserAPI
	auth      *mocks.MockAuthAPI
	tokens    *mocks.MockTokenSetter
	db        *storage.Memory
	session   *Session
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:      ctrl,
		games:     mocks.NewMockGameAPI(ctrl),
		purchases: mocks.NewMockPurchaseAPI(ctrl),
		comments:  mocks.NewMockCommentAPI(ctrl),
		users:     mocks.NewMockUserAPI(ctrl),
		auth:      mocks.NewMockAuthAPI(ctrl),
		tokens:    mocks.NewMockTokenSetter(ctrl),
		db:        storage.NewMemory(),
	}
	f.session = NewSession(f.auth, f.users, f.tokens, f.db, logger.Nop())
	return f
}

func signedToken(t *testing.T, userID int64, exp time.Time) string {
	t.Helper()
	claims := auth.Claims{
		UserID:    userID,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

// login stores an authenticated session and restores it. Listeners registered
// before the call are notified with the returned token.
func (f *fixture) login(t *testing.T, userID int64, email, money string) string {
	t.Helper()
	token := signedToken(t, userID, time.Now().Add(time.Hour))
	data := models.Session{
		AccessToken:  token,
		RefreshToken: "refresh-" + email,
		Email:        email,
		ID:           userID,
		Money:        decimal.RequireFromString(money),
	}
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, f.db.Set(context.Background(), authKey, raw))

	f.tokens.EXPECT().SetToken(token)
	f.users.EXPECT().Me(gomock.Any()).Return(nil)
	require.NoError(t, f.session.Restore(context.Background()))
	return token
}

func game(id, owner int64, title, price string, created time.Time) models.Game {
	return models.Game{
		ID:        id,
		Title:     title,
		Category:  models.CategoryBoard,
		Price:     decimal.RequireFromString(price),
		User:      owner,
		CreatedAt: created,
	}
}

func ids(games []models.Game) []int64 {
	out := make([]int64, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
