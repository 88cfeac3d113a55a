package models

import "github.com/shopspring/decimal"

// SessionView is the session as shown to the view layer. Tokens are never exposed.
type SessionView struct {
	ID              int64           `json:"id,omitempty"`
	Email           string          `json:"email,omitempty"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Money           decimal.Decimal `json:"money"`
	ProfilePicture  string          `json:"profile_picture"`
	GamesCount      int             `json:"games_count"`
	State           string          `json:"state"`
	IsAuthenticated bool            `json:"isAuthenticated"`
	TokenExpired    bool            `json:"tokenExpired"`
}

// BoughtView is the bought games page.
type BoughtView struct {
	View
	TotalSpent decimal.Decimal `json:"totalSpent"`
}

// GameDetails is the game details page.
type GameDetails struct {
	Game       Game      `json:"game"`
	Comments   []Comment `json:"comments"`
	CanComment bool      `json:"canComment"`
	IsOwner    bool      `json:"isOwner"`
	IsBought   bool      `json:"isBought"`
}

// BuyResponse tells the view layer where to go after a successful purchase.
type BuyResponse struct {
	Game     Game   `json:"game"`
	Redirect string `json:"redirect"`
}

// CommentRequest is the add comment form.
type CommentRequest struct {
	Text string `json:"text"`
}
