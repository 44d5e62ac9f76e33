package qa

import (
	"context"
	"fmt"
	"strings"

	"github.com/garnizeh/askhub/pkg/models"
	"github.com/garnizeh/askhub/pkg/repository"
)

// CommentService threads comments under existing answers.
type CommentService struct {
	answers  repository.AnswerRepo
	comments repository.CommentRepo
}

func NewCommentService(ar repository.AnswerRepo, cr repository.CommentRepo) *CommentService {
	return &CommentService{answers: ar, comments: cr}
}

func (s *CommentService) Create(ctx context.Context, userID, answerID, body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", fmt.Errorf("%w: comment body is required", ErrValidation)
	}

	a, err := s.answers.GetAnswerByID(ctx, answerID)
	if err != nil {
		return "", fmt.Errorf("get answer: %w", err)
	}
	if a == nil {
		return "", fmt.Errorf("%w: answer %s", ErrNotFound, answerID)
	}

	c := &models.Comment{
		AnswerID: answerID,
		UserID:   userID,
		Body:     body,
	}

	id, err := s.comments.CreateComment(ctx, c)
	if err != nil {
		return "", fmt.Errorf("create comment: %w", err)
	}

	return id, nil
}
