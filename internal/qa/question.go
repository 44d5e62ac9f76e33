package qa

import (
	"context"
	"fmt"
	"strings"

	"github.com/garnizeh/askhub/pkg/models"
	"github.com/garnizeh/askhub/pkg/repository"
)

// DefaultPageSize is used when the caller does not name one; MaxPageSize caps
// what a single page may return.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// QuestionService owns question creation, tenant-scoped listing and the full
// read view of a single question.
type QuestionService struct {
	questions repository.QuestionRepo
	answers   repository.AnswerRepo
	comments  repository.CommentRepo
}

func NewQuestionService(qr repository.QuestionRepo, ar repository.AnswerRepo, cr repository.CommentRepo) *QuestionService {
	return &QuestionService{questions: qr, answers: ar, comments: cr}
}

type CreateQuestionInput struct {
	Title       string
	Description string
	Tags        []string
}

func (s *QuestionService) Create(ctx context.Context, companyID, userID string, in CreateQuestionInput) (string, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", ErrValidation)
	}
	if description == "" {
		return "", fmt.Errorf("%w: description is required", ErrValidation)
	}

	q := &models.Question{
		CompanyID:   companyID,
		UserID:      userID,
		Title:       title,
		Description: description,
		Tags:        normalizeTags(in.Tags),
		Upvotes:     0,
	}

	id, err := s.questions.CreateQuestion(ctx, q)
	if err != nil {
		return "", fmt.Errorf("create question: %w", err)
	}

	return id, nil
}

type ListQuestionsInput struct {
	Tags     []string
	SortBy   string
	Page     int
	PageSize int
}

type QuestionPage struct {
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Items    []models.Question `json:"items"`
}

// List returns one page of the company's questions. Pages are 1-indexed.
// "upvotes" sorts most-upvoted first, "created_at" newest first; any other
// sort value falls back to the default, most-upvoted first.
func (s *QuestionService) List(ctx context.Context, companyID string, in ListQuestionsInput) (*QuestionPage, error) {
	if in.Page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", ErrValidation)
	}
	if in.PageSize < 1 {
		return nil, fmt.Errorf("%w: page_size must be >= 1", ErrValidation)
	}
	if in.PageSize > MaxPageSize {
		in.PageSize = MaxPageSize
	}

	sort := repository.SortByUpvotes
	if repository.SortKey(in.SortBy) == repository.SortByCreatedAt {
		sort = repository.SortByCreatedAt
	}

	tags := normalizeTags(in.Tags)
	offset := (in.Page - 1) * in.PageSize

	items, err := s.questions.ListQuestions(ctx, companyID, tags, sort, in.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	total, err := s.questions.CountQuestions(ctx, companyID, tags)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}

	return &QuestionPage{Total: total, Page: in.Page, PageSize: in.PageSize, Items: items}, nil
}

// AnswerView is an answer with its comment thread attached.
type AnswerView struct {
	models.Answer
	Comments []models.Comment `json:"comments"`
}

type QuestionDetail struct {
	Question models.Question `json:"question"`
	Answers  []AnswerView    `json:"answers"`
}

// Detail assembles the full read view of one question: the question itself,
// its answers in creation order, and each answer's comments. The fan-out is
// two queries after the question fetch (answers, then one batched comments
// lookup); no transaction spans the steps, so a write landing between them may
// or may not be visible.
func (s *QuestionService) Detail(ctx context.Context, companyID, questionID string) (*QuestionDetail, error) {
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

	answers, err := s.answers.ListAnswersByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	ids := make([]string, len(answers))
	for i, a := range answers {
		ids[i] = a.ID
	}

	comments, err := s.comments.ListCommentsByAnswerIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	views := make([]AnswerView, len(answers))
	for i, a := range answers {
		cs := comments[a.ID]
		if cs == nil {
			cs = []models.Comment{}
		}
		views[i] = AnswerView{Answer: a, Comments: cs}
	}

	return &QuestionDetail{Question: *q, Answers: views}, nil
}

// normalizeTags trims, drops empties and deduplicates while keeping order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
