package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"game_store/internal/models"
	"game_store/internal/pkg/logger"
	"game_store/internal/storage"
)

// purchasesKey is the storage key holding the serialized purchases cache.
const purchasesKey = "boughtGames"

// Purchases is the purchases store. It caches the games bought by the session user
// and enforces the purchase rules before calling the backend.
type Purchases struct {
	mu    sync.RWMutex
	games []models.Game

	api     PurchaseAPI
	session *Session
	db      storage.Storage
	log     *logger.Logger
}

// NewPurchases creates a Purchases store that re-hydrates on every session token change.
func NewPurchases(api PurchaseAPI, session *Session, db storage.Storage, l *logger.Logger) *Purchases {
	p := &Purchases{
		games:   make([]models.Game, 0),
		api:     api,
		session: session,
		db:      db,
		log:     l,
	}
	session.OnTokenChange(p.onTokenChange)
	return p
}

// Load fills the cache from storage so bought games render before Hydrate resolves.
func (p *Purchases) Load(ctx context.Context) {
	raw, err := p.db.Get(ctx, purchasesKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			p.log.Sugar().Errorf("Cannot read stored purchases: %s", err)
		}
		return
	}

	games := make([]models.Game, 0)
	if err := json.Unmarshal(raw, &games); err != nil {
		p.log.Sugar().Warnf("Discarding unreadable stored purchases: %s", err)
		return
	}

	p.mu.Lock()
	p.games = games
	p.mu.Unlock()
}

// Hydrate replaces the cache with the backend purchase list. Anonymous sessions
// get an empty cache.
func (p *Purchases) Hydrate(ctx context.Context) error {
	if !p.session.IsAuthenticated() {
		p.clear(ctx)
		return nil
	}

	games, err := p.api.List(ctx)
	if err != nil {
		p.log.Error("Cannot load bought games", zap.Error(err))
		return err
	}
	if games == nil {
		games = make([]models.Game, 0)
	}

	p.mu.Lock()
	p.games = games
	p.mu.Unlock()

	p.persist(ctx, games)
	return nil
}

func (p *Purchases) onTokenChange(ctx context.Context, token string) {
	if token == "" {
		p.clear(ctx)
		return
	}
	// Hydrate already logged the failure; the stale cache stays in place.
	_ = p.Hydrate(ctx)
}

// BuyGame buys game for the session user. It rejects, without any network call, an
// anonymous session, the user's own game, a game already bought and a price above
// the cached balance, in that order. On success the bought game is appended to the
// cache and the balance is debited locally.
func (p *Purchases) BuyGame(ctx context.Context, game models.Game) (*models.Game, error) {
	if !p.session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if OwnedBy(game, p.session.UserID()) {
		return nil, ErrOwnGame
	}
	if p.Contains(game.ID) {
		return nil, ErrAlreadyBought
	}
	if p.session.Money().LessThan(game.Price) {
		return nil, ErrNotEnoughMoney
	}

	bought, err := p.api.Buy(ctx, game.ID)
	if err != nil {
		p.log.Error("Cannot buy game", zap.Int64("game_id", game.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPurchaseFailed, err)
	}

	p.mu.Lock()
	if !slices.ContainsFunc(p.games, func(g models.Game) bool { return g.ID == bought.ID }) {
		p.games = append(p.games, *bought)
	}
	games := slices.Clone(p.games)
	p.mu.Unlock()

	p.persist(ctx, games)
	p.session.DeductMoney(ctx, game.Price)
	return bought, nil
}

// Games returns a copy of the cache.
func (p *Purchases) Games() []models.Game {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.games)
}

// Contains reports whether gameID is in the cache.
func (p *Purchases) Contains(gameID int64) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.ContainsFunc(p.games, func(g models.Game) bool { return g.ID == gameID })
}

// TotalSpent sums the prices of the cached games.
func (p *Purchases) TotalSpent() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()

	total := decimal.Zero
	for _, g := range p.games {
		total = total.Add(g.Price)
	}
	return total
}

func (p *Purchases) clear(ctx context.Context) {
	p.mu.Lock()
	p.games = make([]models.Game, 0)
	p.mu.Unlock()

	if err := p.db.Delete(ctx, purchasesKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
		p.log.Sugar().Errorf("Cannot clear stored purchases: %s", err)
	}
}

func (p *Purchases) persist(ctx context.Context, games []models.Game) {
	raw, err := json.Marshal(games)
	if err != nil {
		p.log.Sugar().Errorf("Cannot encode purchases: %s", err)
		return
	}
	if err := p.db.Set(ctx, purchasesKey, raw); err != nil {
		p.log.Sugar().Errorf("Cannot store purchases: %s", err)
	}
}
