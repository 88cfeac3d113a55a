package app

import (
	"context"
	"slices"
	"strings"
	"sync"

	"game_store/internal/models"
	"game_store/internal/pkg/logger"
)

// Comments caches the comments of game details pages, one list per game.
type Comments struct {
	mu     sync.RWMutex
	byGame map[int64][]models.Comment

	api     CommentAPI
	session *Session
	log     *logger.Logger
}

// NewComments creates an empty Comments store.
func NewComments(api CommentAPI, session *Session, l *logger.Logger) *Comments {
	return &Comments{
		byGame:  make(map[int64][]models.Comment),
		api:     api,
		session: session,
		log:     l,
	}
}

// Load fetches the comments of gameID and replaces the cached list.
func (c *Comments) Load(ctx context.Context, gameID int64) ([]models.Comment, error) {
	comments, err := c.api.List(ctx, gameID)
	if err != nil {
		c.log.Sugar().Errorf("Cannot load comments of game %d: %s", gameID, err)
		return nil, err
	}

	c.mu.Lock()
	c.byGame[gameID] = comments
	c.mu.Unlock()
	return slices.Clone(comments), nil
}

// List returns the cached comments of gameID.
func (c *Comments) List(gameID int64) []models.Comment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	comments := slices.Clone(c.byGame[gameID])
	if comments == nil {
		comments = make([]models.Comment, 0)
	}
	return comments
}

// CanComment reports whether email has not commented on gameID yet.
func (c *Comments) CanComment(gameID int64, email string) bool {
	if email == "" {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return !slices.ContainsFunc(c.byGame[gameID], func(cm models.Comment) bool {
		return cm.UserEmail == email
	})
}

// CanDelete reports whether userID wrote comment.
func CanDelete(comment models.Comment, userID int64) bool {
	return userID != 0 && comment.UserID == userID
}

// Add posts a comment on gameID as the session user and appends it to the cache.
func (c *Comments) Add(ctx context.Context, gameID int64, text string) (*models.Comment, error) {
	if !c.session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.FieldErrors{"text": "Comment cannot be empty"}
	}
	if !c.CanComment(gameID, c.session.Email()) {
		return nil, ErrAlreadyCommented
	}

	comment, err := c.api.Create(ctx, gameID, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byGame[gameID] = append(c.byGame[gameID], *comment)
	c.mu.Unlock()
	return comment, nil
}

// Remove deletes one of the session user's comments on gameID.
func (c *Comments) Remove(ctx context.Context, gameID, commentID int64) error {
	if !c.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	c.mu.RLock()
	idx := slices.IndexFunc(c.byGame[gameID], func(cm models.Comment) bool { return cm.ID == commentID })
	var comment models.Comment
	if idx >= 0 {
		comment = c.byGame[gameID][idx]
	}
	c.mu.RUnlock()

	if idx < 0 {
		return ErrCommentNotFound
	}
	if !CanDelete(comment, c.session.UserID()) {
		return ErrNotCommentAuthor
	}

	if err := c.api.Delete(ctx, commentID); err != nil {
		return err
	}

	c.mu.Lock()
	c.byGame[gameID] = slices.DeleteFunc(c.byGame[gameID], func(cm models.Comment) bool { return cm.ID == commentID })
	c.mu.Unlock()
	return nil
}
