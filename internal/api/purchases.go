package api

import (
	"context"
	"encoding/json"

	"game_store/internal/models"
	"game_store/internal/pkg/logger"
	"game_store/internal/pkg/requester"
)

// PurchaseService serves the bought-games endpoints.
type PurchaseService struct {
	client *requester.Client
	log    *logger.Logger
}

// NewPurchaseService creates a PurchaseService.
func NewPurchaseService(client *requester.Client, l *logger.Logger) *PurchaseService {
	return &PurchaseService{client: client, log: l}
}

// List returns the games bought by the session user. Records arrive either as bare
// games or as purchase records wrapping the game; both are unwrapped to the game.
func (s *PurchaseService) List(ctx context.Context) ([]models.Game, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, gamesPath+"bought-games/", &raw); err != nil {
		return nil, err
	}

	records := listEnvelope(raw, "results")
	games := make([]models.Game, 0, len(records))
	for _, record := range records {
		game, err := unwrapGame(record)
		if err != nil {
			s.log.Sugar().Warnf("Skipping bought game record: %s", err)
			continue
		}
		games = append(games, *game)
	}
	return games, nil
}

// Buy purchases gameID and returns the bought game.
func (s *PurchaseService) Buy(ctx context.Context, gameID int64) (*models.Game, error) {
	var raw json.RawMessage
	if err := s.client.Post(ctx, gamesPath+id(gameID)+"/buy/", struct{}{}, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrNoGame
	}
	return unwrapGame(raw)
}
