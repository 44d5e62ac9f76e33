package repository

import (
	"context"

	"github.com/garnizeh/askhub/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// SortKey selects the ordering of a question listing. Ties are always broken
// by insertion order so that paging over a stable dataset has no gaps or
// duplicates.
type SortKey string

const (
	SortByUpvotes   SortKey = "upvotes"
	SortByCreatedAt SortKey = "created_at"
)

type CompanyRepo interface {
	CreateCompany(ctx context.Context, c *models.Company) (string, error)
	GetCompanyByID(ctx context.Context, id string) (*models.Company, error)
}

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (string, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type QuestionRepo interface {
	CreateQuestion(ctx context.Context, q *models.Question) (string, error)
	GetQuestionByID(ctx context.Context, id string) (*models.Question, error)
	// ListQuestions returns the company's questions, newest-to-lowest by the
	// given sort key. An empty tags slice means no tag filtering; a non-empty
	// one keeps questions whose tag set intersects it.
	ListQuestions(ctx context.Context, companyID string, tags []string, sort SortKey, limit, offset int) ([]models.Question, error)
	CountQuestions(ctx context.Context, companyID string, tags []string) (int64, error)
}

type AnswerRepo interface {
	CreateAnswer(ctx context.Context, a *models.Answer) (string, error)
	GetAnswerByID(ctx context.Context, id string) (*models.Answer, error)
	ListAnswersByQuestion(ctx context.Context, questionID string) ([]models.Answer, error)
	CountAnswersByQuestion(ctx context.Context, questionID string) (int64, error)
}

type CommentRepo interface {
	CreateComment(ctx context.Context, c *models.Comment) (string, error)
	GetCommentByID(ctx context.Context, id string) (*models.Comment, error)
	// ListCommentsByAnswerIDs is a single batched lookup keyed by the answer id
	// set, in creation order per answer.
	ListCommentsByAnswerIDs(ctx context.Context, answerIDs []string) (map[string][]models.Comment, error)
}
