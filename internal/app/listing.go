package app

import (
	"slices"
	"strings"

	"game_store/internal/models"
)

// FilterByTitle returns the games whose title contains term, ignoring case.
// An empty term returns games unchanged.
func FilterByTitle(games []models.Game, term string) []models.Game {
	if term == "" {
		return games
	}

	needle := strings.ToLower(term)
	filtered := make([]models.Game, 0, len(games))
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.Title), needle) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// OwnedBy reports whether game was listed by userID. Ownerless games arrive
// with a null user and are never owned, and an unknown user id owns nothing.
func OwnedBy(game models.Game, userID int64) bool {
	return userID != 0 && game.User == userID
}

// FilterByOwner returns the games listed by userID.
func FilterByOwner(games []models.Game, userID int64) []models.Game {
	owned := make([]models.Game, 0)
	for _, g := range games {
		if OwnedBy(g, userID) {
			owned = append(owned, g)
		}
	}
	return owned
}

// SortGames returns a sorted copy of games. Games with equal keys keep their order.
func SortGames(games []models.Game, sort models.Sort) []models.Game {
	sorted := slices.Clone(games)

	switch sort {
	case models.SortOldest:
		slices.SortStableFunc(sorted, func(a, b models.Game) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case models.SortPrice:
		slices.SortStableFunc(sorted, func(a, b models.Game) int {
			return a.Price.Cmp(b.Price)
		})
	default:
		slices.SortStableFunc(sorted, func(a, b models.Game) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	return sorted
}

// Paginate returns games[(page-1)*perPage : page*perPage], clamped to the list.
// A page past the end yields an empty slice.
func Paginate(games []models.Game, page, perPage int) []models.Game {
	if perPage <= 0 {
		return games
	}
	if page < 1 {
		page = 1
	}

	if page > TotalPages(len(games), perPage) {
		return make([]models.Game, 0)
	}
	start := (page - 1) * perPage
	end := min(start+perPage, len(games))
	return games[start:end]
}

// TotalPages returns ceil(total/perPage).
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// BuildView sorts and paginates games according to state.
func BuildView(games []models.Game, state models.ViewState) models.View {
	items := Paginate(SortGames(games, state.Sort), state.Page, state.PerPage)
	if items == nil {
		items = make([]models.Game, 0)
	}
	return models.View{
		Items:      items,
		Total:      len(games),
		TotalPages: TotalPages(len(games), state.PerPage),
		ViewState:  state,
	}
}
