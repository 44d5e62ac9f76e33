package qa

import (
	"context"
	"fmt"
	"strings"

	"github.com/garnizeh/askhub/pkg/models"
	"github.com/garnizeh/askhub/pkg/repository"
)

// AnswerService appends human answers to questions in the caller's tenant.
type AnswerService struct {
	questions repository.QuestionRepo
	answers   repository.AnswerRepo
}

func NewAnswerService(qr repository.QuestionRepo, ar repository.AnswerRepo) *AnswerService {
	return &AnswerService{questions: qr, answers: ar}
}

func (s *AnswerService) Create(ctx context.Context, companyID, userID, questionID, body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", fmt.Errorf("%w: answer body is required", ErrValidation)
	}

	q, err := s.questions.GetQuestionByID(ctx, questionID)
	if err != nil {
		return "", fmt.Errorf("get question: %w", err)
	}
	if q == nil {
		return "", fmt.Errorf("%w: question %s", ErrNotFound, questionID)
	}
	// tenant isolation holds on writes too
	if q.CompanyID != companyID {
		return "", fmt.Errorf("%w: question %s", ErrAccessDenied, questionID)
	}

	a := &models.Answer{
		QuestionID: questionID,
		UserID:     &userID,
		Body:       body,
		IsAI:       false,
		Upvotes:    0,
	}

	id, err := s.answers.CreateAnswer(ctx, a)
	if err != nil {
		return "", fmt.Errorf("create answer: %w", err)
	}

	return id, nil
}
