package app

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"game_store/internal/models"
	"game_store/internal/pkg/logger"
)

// Route names a catalog list page. Navigating to a different route resets the page.
type Route string

const (
	RouteHome   Route = "/"
	RouteMine   Route = "/my-games"
	RouteBought Route = "/bought-games"
)

// Catalog is the catalog store. It holds the full, unpaginated game list, the
// search-derived subset and the view controls shared by the list pages.
type Catalog struct {
	mu       sync.RWMutex
	games    []models.Game
	filtered []models.Game
	state    models.ViewState
	route    Route

	defaultPerPage int

	// pending tracks background reconciliations started by EditGame and DeleteGame.
	pending sync.WaitGroup
	errMu   sync.RWMutex
	err     error

	api     GameAPI
	session *Session
	log     *logger.Logger
}

// NewCatalog creates an empty Catalog. perPage is the default page size; values
// outside models.PerPageOptions fall back to the largest option.
func NewCatalog(api GameAPI, session *Session, perPage int, l *logger.Logger) *Catalog {
	if !slices.Contains(models.PerPageOptions, perPage) {
		perPage = models.PerPageOptions[len(models.PerPageOptions)-1]
	}
	return &Catalog{
		api:            api,
		session:        session,
		log:            l,
		defaultPerPage: perPage,
		route:          RouteHome,
		state: models.ViewState{
			Sort:    models.SortNewest,
			Page:    1,
			PerPage: perPage,
		},
	}
}

// RefreshGames replaces the game list with the complete backend listing.
// An active search is re-applied to the new list.
func (c *Catalog) RefreshGames(ctx context.Context) error {
	games, err := c.api.List(ctx)
	if err != nil {
		c.log.Error("Cannot load games", zap.Error(err))
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.games = games
	if c.state.SearchTerm == "" {
		c.filtered = nil
	} else {
		c.filtered = FilterByTitle(games, c.state.SearchTerm)
	}
	return nil
}

// HandleSearch sets the search term and resets the page. A blank term clears the filter.
func (c *Catalog) HandleSearch(term string) {
	term = strings.TrimSpace(term)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Page = 1
	c.state.SearchTerm = term
	if term == "" {
		c.filtered = nil
		return
	}
	c.filtered = FilterByTitle(c.games, term)
}

// CreateGame validates and submits a new listing, then prepends the stored record
// to the list and bumps the session's games counter.
func (c *Catalog) CreateGame(ctx context.Context, form models.GameForm) (*models.Game, error) {
	if fieldErrors := validateForm(form); fieldErrors != nil {
		return nil, fieldErrors
	}

	game, err := c.api.Create(ctx, form)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.games = append([]models.Game{*game}, c.games...)
	if c.state.SearchTerm != "" {
		c.filtered = FilterByTitle(c.games, c.state.SearchTerm)
	}
	c.mu.Unlock()

	c.session.IncrementGamesCount(ctx)
	return game, nil
}

// EditGame validates and submits the full listing. When the picture was cleared and
// no replacement chosen, a placeholder image is sent. The stored record replaces the
// local entry at once; the full list is then re-fetched in the background.
func (c *Catalog) EditGame(ctx context.Context, gameID int64, form models.GameForm) (*models.Game, error) {
	if fieldErrors := validateForm(form); fieldErrors != nil {
		return nil, fieldErrors
	}
	if form.ClearPicture && form.Picture == nil {
		form.Picture = DefaultPicture()
	}

	game, err := c.api.Edit(ctx, gameID, form)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	replace := func(games []models.Game) {
		for i := range games {
			if games[i].ID == gameID {
				games[i] = *game
			}
		}
	}
	replace(c.games)
	replace(c.filtered)
	c.mu.Unlock()

	c.reconcile(ctx)
	return game, nil
}

// DeleteGame deletes the listing, drops it locally and re-fetches the list in the background.
func (c *Catalog) DeleteGame(ctx context.Context, gameID int64) error {
	if err := c.api.Delete(ctx, gameID); err != nil {
		return err
	}

	c.mu.Lock()
	deleted := func(g models.Game) bool { return g.ID == gameID }
	c.games = slices.DeleteFunc(c.games, deleted)
	if c.filtered != nil {
		c.filtered = slices.DeleteFunc(c.filtered, deleted)
	}
	c.mu.Unlock()

	c.reconcile(ctx)
	return nil
}

// reconcile re-fetches the list after the caller's request has returned.
func (c *Catalog) reconcile(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()

		err := c.RefreshGames(ctx)
		c.errMu.Lock()
		c.err = err
		c.errMu.Unlock()
	}()
}

// Wait blocks until every background reconciliation has finished.
func (c *Catalog) Wait() {
	c.pending.Wait()
}

// Err returns the result of the latest background reconciliation.
func (c *Catalog) Err() error {
	c.errMu.RLock()
	defer c.errMu.RUnlock()
	return c.err
}

// Game fetches a single listing for its details page.
func (c *Catalog) Game(ctx context.Context, gameID int64) (*models.Game, error) {
	return c.api.Get(ctx, gameID)
}

// Games returns a copy of the full list.
func (c *Catalog) Games() []models.Game {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.games)
}

// Navigate switches to route, resetting the page when the route changes.
func (c *Catalog) Navigate(route Route) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if route != c.route {
		c.route = route
		c.state.Page = 1
	}
}

// SetSort changes the ordering, resetting the page when it changes.
func (c *Catalog) SetSort(sort models.Sort) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if sort != c.state.Sort {
		c.state.Sort = sort
		c.state.Page = 1
	}
}

// SetPerPage changes the page size, resetting the page when it changes.
// Sizes outside models.PerPageOptions are ignored.
func (c *Catalog) SetPerPage(perPage int) {
	if !slices.Contains(models.PerPageOptions, perPage) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if perPage != c.state.PerPage {
		c.state.PerPage = perPage
		c.state.Page = 1
	}
}

// SetPage selects the page to show.
func (c *Catalog) SetPage(page int) {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Page = page
}

// ResetPagination restores the default page size and the first page.
func (c *Catalog) ResetPagination() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.PerPage = c.defaultPerPage
	c.state.Page = 1
}

// ViewState returns the current view controls.
func (c *Catalog) ViewState() models.ViewState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// base returns the searched list, or the full list when no search is active.
// Callers hold c.mu.
func (c *Catalog) base() []models.Game {
	if c.state.SearchTerm != "" {
		return c.filtered
	}
	return c.games
}

// Home returns the current page of the whole catalog.
func (c *Catalog) Home() models.View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return BuildView(c.base(), c.state)
}

// Mine returns the current page of the session user's own listings.
func (c *Catalog) Mine() models.View {
	userID := c.session.UserID()

	c.mu.RLock()
	defer c.mu.RUnlock()
	return BuildView(FilterByOwner(c.base(), userID), c.state)
}

// Bought returns the current page of bought, filtered by the search term.
func (c *Catalog) Bought(bought []models.Game) models.View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return BuildView(FilterByTitle(bought, c.state.SearchTerm), c.state)
}
