// Package app provides the client-side stores of the storefront.
// The Session store holds the auth token and the cached profile, the Catalog store
// holds the full game list with its search/sort/paginate view state, the Purchases
// store holds the bought games and enforces the purchase rules, and the Comments
// store caches the comments of game details pages.
// Stores talk to the backend through the resource service interfaces below and
// persist their durable state through the storage package.
package app

import (
	"context"
	"errors"

	"game_store/internal/models"
)

// Precondition rejections. None of them performs a network call.
var (
	// ErrNotAuthenticated indicates that the operation needs a logged-in session.
	ErrNotAuthenticated = errors.New("app: login required")
	// ErrOwnGame indicates that the user tried to buy a game they listed.
	ErrOwnGame = errors.New("app: cannot buy your own game")
	// ErrAlreadyBought indicates that the game is already in the purchases cache.
	ErrAlreadyBought = errors.New("app: game already bought")
	// ErrNotEnoughMoney indicates that the cached balance is below the game price.
	ErrNotEnoughMoney = errors.New("app: not enough money")
	// ErrAlreadyCommented indicates that the user already commented on the game.
	ErrAlreadyCommented = errors.New("app: game already commented")
	// ErrNotCommentAuthor indicates that the user tried to remove someone else's comment.
	ErrNotCommentAuthor = errors.New("app: only the author can delete a comment")
	// ErrCommentNotFound indicates that the comment is not in the loaded comments.
	ErrCommentNotFound = errors.New("app: comment not found")
)

// Failures converted at the store boundary.
var (
	// ErrPurchaseFailed wraps a failed buy call made after every precondition passed.
	ErrPurchaseFailed = errors.New("app: purchase failed")
	// ErrProfileUpdateFailed indicates that the backend rejected a profile update.
	ErrProfileUpdateFailed = errors.New("app: profile update failed")
	// ErrAccountDeleteFailed indicates that the backend rejected an account deletion.
	ErrAccountDeleteFailed = errors.New("app: account deletion failed")
	// ErrNoRefreshToken indicates that the session has no refresh token to rotate with.
	ErrNoRefreshToken = errors.New("app: no refresh token")
)

// GameAPI is the game listing resource.
//
//go:generate mockgen -destination=mocks/mocks.go -package=mocks game_store/internal/app GameAPI,PurchaseAPI,CommentAPI,UserAPI,AuthAPI,TokenSetter
type GameAPI interface {
	List(ctx context.Context) ([]models.Game, error)
	Get(ctx context.Context, gameID int64) (*models.Game, error)
	Create(ctx context.Context, form models.GameForm) (*models.Game, error)
	Edit(ctx context.Context, gameID int64, form models.GameForm) (*models.Game, error)
	Delete(ctx context.Context, gameID int64) error
}

// PurchaseAPI is the bought-games resource.
type PurchaseAPI interface {
	List(ctx context.Context) ([]models.Game, error)
	Buy(ctx context.Context, gameID int64) (*models.Game, error)
}

// CommentAPI is the comments resource.
type CommentAPI interface {
	List(ctx context.Context, gameID int64) ([]models.Comment, error)
	Create(ctx context.Context, gameID int64, text string) (*models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

// UserAPI is the accounts resource. Its operations degrade instead of failing.
type UserAPI interface {
	Me(ctx context.Context) *models.Profile
	List(ctx context.Context) []models.Profile
	Update(ctx context.Context, userID int64, form models.ProfileForm) *models.Profile
	Delete(ctx context.Context, userID int64) bool
}

// AuthAPI is the token and sign-up resource.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.TokenPair, error)
	Register(ctx context.Context, email, password string) error
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

// TokenSetter receives the access token every backend request is authorized with.
type TokenSetter interface {
	SetToken(token string)
}
