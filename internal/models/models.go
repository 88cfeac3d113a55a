// Package models defines the data structures shared by the storefront client.
// It includes the backend resources (games, purchases, comments, profiles),
// the persisted session, catalog view state and the form payloads submitted
// to the backend.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the genre of a game listing.
type Category string

const (
	CategoryAction    Category = "ACTION"
	CategoryAdventure Category = "ADVENTURE"
	CategoryPuzzle    Category = "PUZZLE"
	CategoryStrategy  Category = "STRATEGY"
	CategorySports    Category = "SPORTS"
	CategoryBoard     Category = "BOARD"
	CategoryOther     Category = "OTHER"
)

// Categories lists every category accepted by the backend.
var Categories = []Category{
	CategoryAction, CategoryAdventure, CategoryPuzzle, CategoryStrategy,
	CategorySports, CategoryBoard, CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Game represents a game listing as returned by the backend.
// Price arrives either as a JSON string ("59.99") or a number; decimal.Decimal accepts both.
type Game struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Category      Category        `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Summary       string          `json:"summary,omitempty"`
	GamePicture   string          `json:"game_picture,omitempty"`
	User          int64           `json:"user"`
	SellerDisplay string          `json:"seller_display,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	OwnerEmail    string          `json:"ownerEmail,omitempty"`
}

// Comment is a single comment left on a game details page.
type Comment struct {
	ID             int64  `json:"id"`
	Game           int64  `json:"game"`
	UserID         int64  `json:"user_id"`
	UserEmail      string `json:"user_email"`
	Text           string `json:"text"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// TokenPair is the response of the token endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Profile is the current user as returned by /accounts/me/.
// Fields are pointers so a merge can tell an absent field from a zero value.
type Profile struct {
	ID             *int64           `json:"id"`
	Email          *string          `json:"email"`
	FirstName      *string          `json:"first_name"`
	LastName       *string          `json:"last_name"`
	Money          *decimal.Decimal `json:"money"`
	ProfilePicture *string          `json:"profile_picture"`
	GamesCount     *int             `json:"games_count"`
}

// Session is the authenticated (or anonymous) user context persisted in durable storage.
type Session struct {
	AccessToken    string          `json:"accessToken,omitempty"`
	RefreshToken   string          `json:"refreshToken,omitempty"`
	Email          string          `json:"email,omitempty"`
	ID             int64           `json:"id,omitempty"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Money          decimal.Decimal `json:"money"`
	ProfilePicture string          `json:"profile_picture"`
	GamesCount     int             `json:"games_count"`
}

// IsAuthenticated reports whether the session carries a non-empty access token.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// Merge overwrites the session profile fields that are present in p.
// Fields absent from p are left untouched.
func (s *Session) Merge(p *Profile) {
	if p == nil {
		return
	}
	if p.ID != nil {
		s.ID = *p.ID
	}
	if p.Email != nil && *p.Email != "" {
		s.Email = *p.Email
	}
	if p.FirstName != nil {
		s.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		s.LastName = *p.LastName
	}
	if p.Money != nil {
		s.Money = *p.Money
	}
	if p.ProfilePicture != nil {
		s.ProfilePicture = *p.ProfilePicture
	}
	if p.GamesCount != nil {
		s.GamesCount = *p.GamesCount
	}
}

// Sort is the ordering applied to a catalog view.
type Sort string

const (
	SortNewest Sort = "newest"
	SortOldest Sort = "oldest"
	SortPrice  Sort = "price"
)

// ParseSort returns the sort named by s, falling back to SortNewest.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortOldest, SortPrice:
		return Sort(s)
	default:
		return SortNewest
	}
}

// PerPageOptions are the page sizes offered by the catalog views.
var PerPageOptions = []int{4, 6, 8, 12}

// ViewState holds the transient catalog controls shared by the list pages.
type ViewState struct {
	SearchTerm string `json:"searchTerm"`
	Sort       Sort   `json:"sort"`
	Page       int    `json:"page"`
	PerPage    int    `json:"perPage"`
}

// View is one rendered page of a catalog list.
type View struct {
	Items      []Game `json:"items"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
	ViewState
}

// ErrorResponse represents a generic error response payload of the view server.
type ErrorResponse struct {
	Errors string `json:"errors"`
}
