package api

import (
	"context"
	"encoding/json"

	"game_store/internal/models"
	"game_store/internal/pkg/logger"
	"game_store/internal/pkg/requester"
)

const commentsPath = "/common/comments/"

// CommentService serves the comment endpoints of a game details page.
type CommentService struct {
	client *requester.Client
	log    *logger.Logger
}

// NewCommentService creates a CommentService.
func NewCommentService(client *requester.Client, l *logger.Logger) *CommentService {
	return &CommentService{client: client, log: l}
}

// List returns the comments of gameID. The backend may answer with a bare array,
// {"results": [...]} or {"comments": [...]}; anything else is an empty list.
func (s *CommentService) List(ctx context.Context, gameID int64) ([]models.Comment, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, commentsPath+id(gameID)+"/", &raw); err != nil {
		return nil, err
	}

	records := listEnvelope(raw, "results", "comments")
	comments := make([]models.Comment, 0, len(records))
	for _, record := range records {
		var c models.Comment
		if err := json.Unmarshal(record, &c); err != nil {
			s.log.Sugar().Warnf("Skipping comment record: %s", err)
			continue
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// Create posts a comment on gameID.
func (s *CommentService) Create(ctx context.Context, gameID int64, text string) (*models.Comment, error) {
	var c models.Comment
	body := map[string]string{"text": text}
	if err := s.client.Post(ctx, commentsPath+id(gameID)+"/", body, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a comment.
func (s *CommentService) Delete(ctx context.Context, commentID int64) error {
	return s.client.Delete(ctx, commentsPath+"delete/"+id(commentID)+"/", nil)
}
