package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game_store/internal/app"
	"game_store/internal/app/mocks"
	"game_store/internal/config"
	"game_store/internal/models"
	"game_store/internal/pkg/auth"
	"game_store/internal/pkg/logger"
	"game_store/internal/pkg/requester"
	"game_store/internal/storage"
)

var created = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	games     *mocks.MockGameAPI
	purchases *mocks.MockPurchaseAPI
	comments  *mocks.MockCommentAPI
	users     *mocks.MockUserAPI
	auth      *mocks.MockAuthAPI
	tokens    *mocks.MockTokenSetter
	db        *storage.Memory
	stores    Stores
	server    *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		games:     mocks.NewMockGameAPI(ctrl),
		purchases: mocks.NewMockPurchaseAPI(ctrl),
		comments:  mocks.NewMockCommentAPI(ctrl),
		users:     mocks.NewMockUserAPI(ctrl),
		auth:      mocks.NewMockAuthAPI(ctrl),
		tokens:    mocks.NewMockTokenSetter(ctrl),
		db:        storage.NewMemory(),
	}

	l := logger.Nop()
	session := app.NewSession(env.auth, env.users, env.tokens, env.db, l)
	env.stores = Stores{
		Session:   session,
		Catalog:   app.NewCatalog(env.games, session, 12, l),
		Purchases: app.NewPurchases(env.purchases, session, env.db, l),
		Comments:  app.NewComments(env.comments, session, l),
	}

	service := NewService(env.stores, config.ServerRunAddress, l)
	env.server = httptest.NewServer(service.NewRouter())
	t.Cleanup(env.server.Close)
	return env
}

// login restores a stored session for userID. bought hydrates the purchases cache.
func (env *testEnv) login(t *testing.T, userID int64, email, money string, bought ...models.Game) {
	t.Helper()
	claims := auth.Claims{
		UserID:           userID,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	raw, err := json.Marshal(models.Session{
		AccessToken:  token,
		RefreshToken: "refresh",
		Email:        email,
		ID:           userID,
		Money:        decimal.RequireFromString(money),
	})
	require.NoError(t, err)
	require.NoError(t, env.db.Set(context.Background(), "authKey", raw))

	if bought == nil {
		bought = []models.Game{}
	}
	env.tokens.EXPECT().SetToken(token)
	env.users.EXPECT().Me(gomock.Any()).Return(nil)
	env.purchases.EXPECT().List(gomock.Any()).Return(bought, nil)
	require.NoError(t, env.stores.Session.Restore(context.Background()))
}

// loadGames fills the catalog with games.
func (env *testEnv) loadGames(t *testing.T, games ...models.Game) {
	t.Helper()
	env.games.EXPECT().List(gomock.Any()).Return(games, nil)
	require.NoError(t, env.stores.Catalog.RefreshGames(context.Background()))
}

func newGame(id, owner int64, title, price string, age time.Duration) models.Game {
	return models.Game{
		ID:        id,
		Title:     title,
		Category:  models.CategoryBoard,
		Price:     decimal.RequireFromString(price),
		User:      owner,
		CreatedAt: created.Add(-age),
	}
}

func testRequest(t *testing.T, ts *httptest.Server, method, path string, requestBody []byte) (*http.Response, string) {
	return testRequestWithContentType(t, ts, method, path, requestBody, "application/json")
}

func testRequestWithContentType(t *testing.T, ts *httptest.Server, method, path string, requestBody []byte, contentType string) (*http.Response, string) {
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewBuffer(requestBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, content []byte) ([]byte, string) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes(), w.FormDataContentType()
}

func viewIDs(t *testing.T, body string) []int64 {
	t.Helper()
	var view models.View
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	out := make([]int64, 0, len(view.Items))
	for _, g := range view.Items {
		out = append(out, g.ID)
	}
	return out
}

func TestLoginHandler(t *testing.T) {
	type expectedData struct {
		expectedContentType string
		expectedStatusCode  int
		expectedBody        string
	}

	testCases := []struct {
		name        string
		requestBody []byte
		setupMock   func(env *testEnv)
		expected    expectedData
	}{
		{
			name:        "Invalid JSON",
			requestBody: []byte("some body"),
			setupMock:   func(env *testEnv) {},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        "{\"errors\":\"invalid character 's' looking for beginning of value\"}\n",
			},
		},
		{
			name:        "Rejected credentials",
			requestBody: []byte(`{"email": "ann@example.com", "password": "wrong"}`),
			setupMock: func(env *testEnv) {
				env.auth.EXPECT().Login(gomock.Any(), "ann@example.com", "wrong").Return(nil, &requester.APIError{
					StatusCode:  http.StatusUnauthorized,
					ContentType: "application/json",
					Body:        []byte(`{"detail": "No active account found with the given credentials"}`),
				})
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusBadRequest,
				expectedBody:        `{"general":"No active account found with the given credentials"}`,
			},
		},
		{
			name:        "Successful login",
			requestBody: []byte(`{"email": "ann@example.com", "password": "secret"}`),
			setupMock: func(env *testEnv) {
				env.auth.EXPECT().Login(gomock.Any(), "ann@example.com", "secret").
					Return(&models.TokenPair{Access: "a1", Refresh: "r1"}, nil)
				env.tokens.EXPECT().SetToken("a1")
				env.users.EXPECT().Me(gomock.Any()).Return(&models.Profile{
					ID:    func() *int64 { v := int64(3); return &v }(),
					Money: func() *decimal.Decimal { v := decimal.RequireFromString("120.5"); return &v }(),
				})
				env.purchases.EXPECT().List(gomock.Any()).Return([]models.Game{}, nil)
			},
			expected: expectedData{
				expectedContentType: "application/json",
				expectedStatusCode:  http.StatusOK,
				expectedBody: `{"id":3,"email":"ann@example.com","first_name":"","last_name":"","money":"120.5",` +
					`"profile_picture":"","games_count":0,"state":"authenticated","isAuthenticated":true,"tokenExpired":true}`,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			tc.setupMock(env)

			resp, body := testRequest(t, env.server, http.MethodPost, "/api/login", tc.requestBody)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)
			assert.Equal(t, tc.expected.expectedContentType, resp.Header.Get("Content-Type"))
			assert.Equal(t, tc.expected.expectedBody, body)
		})
	}
}

func TestRegisterHandler(t *testing.T) {
	env := newTestEnv(t)

	resp, body := testRequest(t, env.server, http.MethodPost, "/api/register",
		[]byte(`{"email": "ann@example.com", "password": "pw", "confirmPassword": "other"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `{"confirmPassword":"Passwords do not match"}`, body)
}

func TestSessionAndLogoutHandlers(t *testing.T) {
	env := newTestEnv(t)

	resp, body := testRequest(t, env.server, http.MethodGet, "/api/session", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"isAuthenticated":false`)
	assert.Contains(t, body, `"state":"anonymous"`)

	env.login(t, 3, "ann@example.com", "50.00")
	_, body = testRequest(t, env.server, http.MethodGet, "/api/session", nil)
	assert.Contains(t, body, `"isAuthenticated":true`)
	assert.Contains(t, body, `"tokenExpired":false`)
	assert.NotContains(t, body, "accessToken")

	env.tokens.EXPECT().SetToken("")
	resp, _ = testRequest(t, env.server, http.MethodPost, "/api/logout", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.False(t, env.stores.Session.IsAuthenticated())
}

func TestRequireSession(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users"},
		{http.MethodPost, "/api/session/refresh"},
		{http.MethodGet, "/api/games/mine"},
		{http.MethodGet, "/api/bought-games"},
		{http.MethodPost, "/api/games"},
		{http.MethodPut, "/api/games/1"},
		{http.MethodDelete, "/api/games/1"},
		{http.MethodPost, "/api/games/1/buy"},
		{http.MethodPost, "/api/games/1/comments"},
		{http.MethodDelete, "/api/games/1/comments/2"},
		{http.MethodPatch, "/api/profile"},
		{http.MethodDelete, "/api/profile"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			resp, body := testRequest(t, env.server, route.method, route.path, nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "{\"errors\":\"login required\"}\n", body)
		})
	}
}

func TestHomeHandler(t *testing.T) {
	env := newTestEnv(t)
	env.loadGames(t,
		newGame(1, 4, "Chess", "19.99", 4*time.Hour),
		newGame(2, 4, "Go", "25.00", 3*time.Hour),
		newGame(3, 5, "Catan", "45.00", 2*time.Hour),
		newGame(4, 5, "Chess Titans", "10.00", time.Hour),
		newGame(5, 6, "Tetris", "12.00", 0),
	)

	testCases := []struct {
		name     string
		query    string
		expected []int64
		page     int
	}{
		{name: "Defaults", query: "", expected: []int64{5, 4, 3, 2, 1}, page: 1},
		{name: "Page size and page", query: "?perPage=4&page=2", expected: []int64{1}, page: 2},
		{name: "Sort resets the page", query: "?sort=price", expected: []int64{4, 5, 1, 2}, page: 1},
		{name: "Search", query: "?search=chess", expected: []int64{4, 1}, page: 1},
		{name: "Same search keeps the page", query: "?search=chess&page=2", expected: []int64{}, page: 2},
		{name: "Cleared search", query: "?search=&sort=oldest&perPage=12", expected: []int64{1, 2, 3, 4, 5}, page: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := testRequest(t, env.server, http.MethodGet, "/api/games"+tc.query, nil)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tc.expected, viewIDs(t, body))
			assert.Equal(t, tc.page, env.stores.Catalog.ViewState().Page)
		})
	}
}

func TestRefreshGamesHandler(t *testing.T) {
	env := newTestEnv(t)
	env.stores.Catalog.SetPerPage(4)

	env.games.EXPECT().List(gomock.Any()).Return(nil, &requester.APIError{
		StatusCode:  http.StatusServiceUnavailable,
		ContentType: "application/json",
		Body:        []byte(`{"detail":"maintenance"}`),
	})
	resp, body := testRequest(t, env.server, http.MethodPost, "/api/games/refresh", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, `{"detail":"maintenance"}`, body, "backend payload is passed through")

	env.games.EXPECT().List(gomock.Any()).Return([]models.Game{newGame(1, 4, "Chess", "19.99", 0)}, nil)
	resp, body = testRequest(t, env.server, http.MethodPost, "/api/games/refresh", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int64{1}, viewIDs(t, body))
	assert.Equal(t, 12, env.stores.Catalog.ViewState().PerPage)
}

func TestMyAndBoughtGamesHandlers(t *testing.T) {
	env := newTestEnv(t)
	bought := []models.Game{newGame(7, 9, "Portal", "20.00", 0), newGame(8, 9, "Pong", "15.50", time.Hour)}
	env.login(t, 4, "ann@example.com", "50.00", bought...)
	env.loadGames(t,
		newGame(1, 4, "Chess", "19.99", 2*time.Hour),
		newGame(2, 4, "Go", "25.00", time.Hour),
		newGame(3, 5, "Catan", "45.00", 0),
	)

	_, body := testRequest(t, env.server, http.MethodGet, "/api/games/mine", nil)
	assert.Equal(t, []int64{2, 1}, viewIDs(t, body))

	resp, body := testRequest(t, env.server, http.MethodGet, "/api/bought-games?sort=price", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int64{8, 7}, viewIDs(t, body))

	var view models.BoughtView
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	assert.Equal(t, "35.5", view.TotalSpent.String())
	assert.Equal(t, 2, view.Total)
}

func TestGameDetailsHandler(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, 4, "ann@example.com", "50.00")

	chess := newGame(1, 4, "Chess", "19.99", 0)
	env.games.EXPECT().Get(gomock.Any(), int64(1)).Return(&chess, nil)
	env.comments.EXPECT().List(gomock.Any(), int64(1)).Return([]models.Comment{
		{ID: 10, Game: 1, UserID: 4, UserEmail: "ann@example.com", Text: "Mine"},
	}, nil)

	resp, body := testRequest(t, env.server, http.MethodGet, "/api/games/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var details models.GameDetails
	require.NoError(t, json.Unmarshal([]byte(body), &details))
	assert.Equal(t, int64(1), details.Game.ID)
	assert.Len(t, details.Comments, 1)
	assert.False(t, details.CanComment, "one comment per user")
	assert.True(t, details.IsOwner)
	assert.False(t, details.IsBought)

	resp, body = testRequest(t, env.server, http.MethodGet, "/api/games/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "{\"errors\":\"invalid id\"}\n", body)

	env.games.EXPECT().Get(gomock.Any(), int64(2)).Return(nil, &requester.APIError{
		StatusCode:  http.StatusNotFound,
		ContentType: "application/json",
		Body:        []byte(`{"detail":"Not found."}`),
	})
	resp, body = testRequest(t, env.server, http.MethodGet, "/api/games/2", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, `{"detail":"Not found."}`, body)
}

func TestBuyGameHandler(t *testing.T) {
	type expectedData struct {
		expectedStatusCode int
		expectedBody       string
	}

	testCases := []struct {
		name      string
		money     string
		game      models.Game
		setupMock func(env *testEnv, g models.Game)
		expected  expectedData
	}{
		{
			name:      "Own game",
			money:     "100.00",
			game:      newGame(1, 3, "Chess", "19.99", 0),
			setupMock: func(env *testEnv, g models.Game) {},
			expected: expectedData{
				expectedStatusCode: http.StatusConflict,
				expectedBody:       "{\"errors\":\"cannot buy your own game\"}\n",
			},
		},
		{
			name:      "Not enough money",
			money:     "50.00",
			game:      newGame(2, 4, "Catan", "75.00", 0),
			setupMock: func(env *testEnv, g models.Game) {},
			expected: expectedData{
				expectedStatusCode: http.StatusConflict,
				expectedBody:       "{\"errors\":\"not enough money\"}\n",
			},
		},
		{
			name:  "Backend failure",
			money: "100.00",
			game:  newGame(2, 4, "Catan", "75.00", 0),
			setupMock: func(env *testEnv, g models.Game) {
				env.purchases.EXPECT().Buy(gomock.Any(), g.ID).Return(nil, errors.New("connection reset"))
			},
			expected: expectedData{
				expectedStatusCode: http.StatusBadGateway,
				expectedBody:       "{\"errors\":\"purchase failed, please try again\"}\n",
			},
		},
		{
			name:  "Successful purchase",
			money: "100.00",
			game:  newGame(2, 4, "Catan", "75.00", 0),
			setupMock: func(env *testEnv, g models.Game) {
				env.purchases.EXPECT().Buy(gomock.Any(), g.ID).Return(&g, nil)
			},
			expected: expectedData{
				expectedStatusCode: http.StatusOK,
				expectedBody:       `"redirect":"/bought-games"`,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.login(t, 3, "ann@example.com", tc.money)
			env.loadGames(t, tc.game)
			tc.setupMock(env, tc.game)

			resp, body := testRequest(t, env.server, http.MethodPost, "/api/games/"+strconv.FormatInt(tc.game.ID, 10)+"/buy", nil)
			assert.Equal(t, tc.expected.expectedStatusCode, resp.StatusCode)
			assert.Contains(t, body, tc.expected.expectedBody)

			if resp.StatusCode == http.StatusOK {
				assert.True(t, env.stores.Purchases.Contains(tc.game.ID))
				assert.Equal(t, "25", env.stores.Session.Money().String())
			} else {
				assert.False(t, env.stores.Purchases.Contains(tc.game.ID))
				assert.True(t, decimal.RequireFromString(tc.money).Equal(env.stores.Session.Money()))
			}
		})
	}
}

func TestBuyGameHandlerFetchesUncachedGame(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, 3, "ann@example.com", "100.00")

	g := newGame(9, 4, "Portal", "20.00", 0)
	env.games.EXPECT().Get(gomock.Any(), int64(9)).Return(&g, nil)
	env.purchases.EXPECT().Buy(gomock.Any(), int64(9)).Return(&g, nil)

	resp, _ := testRequest(t, env.server, http.MethodPost, "/api/games/9/buy", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateGameHandler(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, 3, "ann@example.com", "100.00")

	fields := map[string]string{"title": "Tetris", "category": "PUZZLE", "price": "12.50", "summary": "Blocks"}

	t.Run("Validation errors", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{"title": "", "category": "PUZZLE", "price": "12.50"}, "", "", nil)
		resp, respBody := testRequestWithContentType(t, env.server, http.MethodPost, "/api/games", body, contentType)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, `{"title":"Title is required"}`, respBody)
	})

	t.Run("Not multipart", func(t *testing.T) {
		resp, _ := testRequest(t, env.server, http.MethodPost, "/api/games", []byte(`{}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Backend field errors pass through", func(t *testing.T) {
		env.games.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &requester.APIError{
			StatusCode:  http.StatusBadRequest,
			ContentType: "application/json",
			Body:        []byte(`{"title":["game with this title already exists."]}`),
		})
		body, contentType := multipartBody(t, fields, "", "", nil)
		resp, respBody := testRequestWithContentType(t, env.server, http.MethodPost, "/api/games", body, contentType)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, `{"title":["game with this title already exists."]}`, respBody)
	})

	t.Run("Created", func(t *testing.T) {
		stored := newGame(10, 3, "Tetris", "12.50", 0)
		env.games.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, form models.GameForm) (*models.Game, error) {
				assert.Equal(t, "Tetris", form.Title)
				assert.Equal(t, models.CategoryPuzzle, form.Category)
				if assert.NotNil(t, form.Picture) {
					assert.Equal(t, "tetris.png", form.Picture.Name)
					assert.Equal(t, []byte("png-bytes"), form.Picture.Content)
				}
				return &stored, nil
			})

		body, contentType := multipartBody(t, fields, "game_picture", "tetris.png", []byte("png-bytes"))
		resp, _ := testRequestWithContentType(t, env.server, http.MethodPost, "/api/games", body, contentType)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, []int64{10}, idsOf(env.stores.Catalog.Games()))
		assert.Equal(t, 1, env.stores.Session.Snapshot().GamesCount)
	})
}

func TestEditAndDeleteGameHandlers(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, 3, "ann@example.com", "100.00")
	env.loadGames(t, newGame(1, 3, "Chess", "19.99", 0))

	edited := newGame(1, 3, "Chess Deluxe", "19.99", 0)
	env.games.EXPECT().Edit(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, form models.GameForm) (*models.Game, error) {
			if assert.NotNil(t, form.Picture) {
				assert.Equal(t, "no-image.jpg", form.Picture.Name)
			}
			return &edited, nil
		})
	env.games.EXPECT().List(gomock.Any()).Return([]models.Game{edited}, nil)

	body, contentType := multipartBody(t, map[string]string{
		"title": "Chess Deluxe", "category": "BOARD", "price": "19.99", "clear_picture": "true",
	}, "", "", nil)
	resp, _ := testRequestWithContentType(t, env.server, http.MethodPut, "/api/games/1", body, contentType)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env.stores.Catalog.Wait()
	assert.Equal(t, "Chess Deluxe", env.stores.Catalog.Games()[0].Title)

	env.games.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	env.games.EXPECT().List(gomock.Any()).Return([]models.Game{}, nil)

	resp, _ = testRequest(t, env.server, http.MethodDelete, "/api/games/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	env.stores.Catalog.Wait()
	assert.Empty(t, env.stores.Catalog.Games())
	assert.NoError(t, env.stores.Catalog.Err())
}

func TestCommentHandlers(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, 3, "ann@example.com", "100.00")

	env.comments.EXPECT().List(gomock.Any(), int64(1)).Return([]models.Comment{
		{ID: 10, Game: 1, UserID: 4, UserEmail: "bob@example.com", Text: "Great"},
	}, nil)
	_, err := env.stores.Comments.Load(context.Background(), 1)
	require.NoError(t, err)

	stored := &models.Comment{ID: 11, Game: 1, UserID: 3, UserEmail: "ann@example.com", Text: "Nice"}
	env.comments.EXPECT().Create(gomock.Any(), int64(1), "Nice").Return(stored, nil)

	resp, body := testRequest(t, env.server, http.MethodPost, "/api/games/1/comments", []byte(`{"text": "Nice"}`))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, body, `"user_email":"ann@example.com"`)

	resp, body = testRequest(t, env.server, http.MethodPost, "/api/games/1/comments", []byte(`{"text": "Again"}`))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "{\"errors\":\"you already commented on this game\"}\n", body)

	resp, _ = testRequest(t, env.server, http.MethodDelete, "/api/games/1/comments/10", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = testRequest(t, env.server, http.MethodDelete, "/api/games/1/comments/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	env.comments.EXPECT().Delete(gomock.Any(), int64(11)).Return(nil)
	resp, _ = testRequest(t, env.server, http.MethodDelete, "/api/games/1/comments/11", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Len(t, env.stores.Comments.List(1), 1)
}

func TestProfileHandlers(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, 3, "ann@example.com", "100.00")

	first := "Ann"
	id := int64(3)
	env.users.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).Return(&models.Profile{ID: &id, FirstName: &first})
	env.users.EXPECT().Me(gomock.Any()).Return(nil)

	body, contentType := multipartBody(t, map[string]string{"first_name": "Ann", "last_name": ""}, "", "", nil)
	resp, respBody := testRequestWithContentType(t, env.server, http.MethodPatch, "/api/profile", body, contentType)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, respBody, `"first_name":"Ann"`)

	env.users.EXPECT().List(gomock.Any()).Return([]models.Profile{{ID: &id}})
	resp, respBody = testRequest(t, env.server, http.MethodGet, "/api/users", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, respBody, `"id":3`)

	env.users.EXPECT().Delete(gomock.Any(), int64(3)).Return(false)
	resp, _ = testRequest(t, env.server, http.MethodDelete, "/api/profile", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	env.users.EXPECT().Delete(gomock.Any(), int64(3)).Return(true)
	env.tokens.EXPECT().SetToken("")
	resp, _ = testRequest(t, env.server, http.MethodDelete, "/api/profile", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.False(t, env.stores.Session.IsAuthenticated())
}

func idsOf(games []models.Game) []int64 {
	out := make([]int64, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}

func TestHomeHandlerLargestPage(t *testing.T) {
	env := newTestEnv(t)
	env.loadGames(t, newGame(1, 4, "Chess", "19.99", 0), newGame(2, 4, "Go", "25.00", time.Hour))

	resp, body := testRequest(t, env.server, http.MethodGet, "/api/games?page="+strconv.Itoa(math.MaxInt), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int64{}, viewIDs(t, body))

	resp, body = testRequest(t, env.server, http.MethodGet, "/api/games", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "the stored page keeps rendering")
	assert.Equal(t, []int64{}, viewIDs(t, body))

	resp, body = testRequest(t, env.server, http.MethodGet, "/api/games?page=1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int64{1, 2}, viewIDs(t, body))
}

func TestGameDetailsHandlerOwnerlessGame(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, 0, "ann@example.com", "50.00")

	var seeded models.Game
	require.NoError(t, json.Unmarshal([]byte(`{"id": 5, "title": "Seeded", "price": "10.00", "user": null}`), &seeded))
	env.games.EXPECT().Get(gomock.Any(), int64(5)).Return(&seeded, nil)
	env.comments.EXPECT().List(gomock.Any(), int64(5)).Return([]models.Comment{}, nil)

	resp, body := testRequest(t, env.server, http.MethodGet, "/api/games/5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var details models.GameDetails
	require.NoError(t, json.Unmarshal([]byte(body), &details))
	assert.False(t, details.IsOwner)
	assert.True(t, details.CanComment)
}
