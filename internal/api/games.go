package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"game_store/internal/models"
	"game_store/internal/pkg/logger"
	"game_store/internal/pkg/requester"
)

const gamesPath = "/games/"

// GameService serves the game listing endpoints.
type GameService struct {
	client   *requester.Client
	maxPages int
	log      *logger.Logger
}

// NewGameService creates a GameService. maxPages bounds the listing page walk.
func NewGameService(client *requester.Client, maxPages int, l *logger.Logger) *GameService {
	if maxPages <= 0 {
		maxPages = 1
	}
	return &GameService{client: client, maxPages: maxPages, log: l}
}

type gamePage struct {
	Results []models.Game `json:"results"`
	Next    *string       `json:"next"`
}

// List walks the paginated listing page by page until the backend reports no next
// page and returns the complete collection.
func (s *GameService) List(ctx context.Context) ([]models.Game, error) {
	games := make([]models.Game, 0)

	for page := 1; ; page++ {
		if page > s.maxPages {
			s.log.Sugar().Warnf("Game listing exceeds %d pages, giving up", s.maxPages)
			return nil, fmt.Errorf("%w: more than %d pages", ErrPageLimit, s.maxPages)
		}

		var raw json.RawMessage
		if err := s.client.Get(ctx, fmt.Sprintf("%s?page=%d", gamesPath, page), &raw); err != nil {
			return nil, err
		}

		if len(raw) == 0 {
			return games, nil
		}
		if isArray(raw) {
			var items []models.Game
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, fmt.Errorf("api: decode games page %d: %w", page, err)
			}
			return append(games, items...), nil
		}

		var p gamePage
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("api: decode games page %d: %w", page, err)
		}
		games = append(games, p.Results...)

		if p.Next == nil || strings.TrimSpace(*p.Next) == "" {
			return games, nil
		}
	}
}

// Get fetches a single game.
func (s *GameService) Get(ctx context.Context, gameID int64) (*models.Game, error) {
	var game models.Game
	if err := s.client.Get(ctx, gamesPath+id(gameID)+"/", &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// Create submits a new listing as multipart form data and returns the stored record.
func (s *GameService) Create(ctx context.Context, form models.GameForm) (*models.Game, error) {
	var game models.Game
	if err := s.client.PostForm(ctx, gamesPath, gameForm(form), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// Edit replaces a listing with the full form and returns the stored record.
func (s *GameService) Edit(ctx context.Context, gameID int64, form models.GameForm) (*models.Game, error) {
	var game models.Game
	if err := s.client.PutForm(ctx, gamesPath+id(gameID)+"/", gameForm(form), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// Delete removes a listing.
func (s *GameService) Delete(ctx context.Context, gameID int64) error {
	return s.client.Delete(ctx, gamesPath+id(gameID)+"/", nil)
}

func gameForm(form models.GameForm) *requester.Form {
	f := requester.NewForm().
		Set("title", form.Title).
		Set("category", string(form.Category)).
		Set("price", form.Price).
		Set("summary", form.Summary)
	if form.Picture != nil {
		f.AddFile("game_picture", form.Picture.Name, form.Picture.ContentType, form.Picture.Content)
	}
	return f
}
