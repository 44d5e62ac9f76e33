package qa

import (
	"context"
	"fmt"
	"time"

	"github.com/garnizeh/askhub/pkg/models"
	"github.com/garnizeh/askhub/pkg/repository"
)

// Generator produces an answer draft for a question. Implementations wrap the
// external model call; the service treats it as opaque.
type Generator interface {
	GenerateAnswer(ctx context.Context, title, description string) (string, error)
}

// AIAnswerService records model-generated answers for tenants that enabled the
// feature. Generation runs under a deadline and nothing is persisted when it
// fails.
type AIAnswerService struct {
	questions repository.QuestionRepo
	answers   repository.AnswerRepo
	companies repository.CompanyRepo
	generator Generator
	timeout   time.Duration
}

func NewAIAnswerService(qr repository.QuestionRepo, ar repository.AnswerRepo, cr repository.CompanyRepo, g Generator, timeout time.Duration) *AIAnswerService {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &AIAnswerService{questions: qr, answers: ar, companies: cr, generator: g, timeout: timeout}
}

// GeneratedAnswer is the persisted id plus the text, which the caller gets
// back immediately instead of re-reading the question.
type GeneratedAnswer struct {
	ID   string `json:"answer_id"`
	Text string `json:"answer"`
}

func (s *AIAnswerService) Generate(ctx context.Context, companyID, questionID string) (*GeneratedAnswer, error) {
	q, err := s.questions.GetQuestionByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if q == nil {
		return nil, fmt.Errorf("%w: question %s", ErrNotFound, questionID)
	}
	if q.CompanyID != companyID {
		return nil, fmt.Errorf("%w: question %s", ErrAccessDenied, questionID)
	}

	company, err := s.companies.GetCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	if company == nil {
		return nil, fmt.Errorf("%w: company %s", ErrNotFound, companyID)
	}
	if !company.AIAnswerEnabled {
		return nil, fmt.Errorf("%w: AI-generated answers are disabled for company %s", ErrForbidden, companyID)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.GenerateAnswer(genCtx, q.Title, q.Description)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if text == "" {
		return nil, fmt.Errorf("%w: model returned an empty answer", ErrGeneration)
	}

	a := &models.Answer{
		QuestionID: questionID,
		UserID:     nil,
		Body:       text,
		IsAI:       true,
		Upvotes:    0,
	}

	id, err := s.answers.CreateAnswer(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create ai answer: %w", err)
	}

	return &GeneratedAnswer{ID: id, Text: text}, nil
}
