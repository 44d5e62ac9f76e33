package models

// Domain models matching the database schema in db/migrations/0001_init.sql

type Company struct {
	ID              string `json:"id" db:"id"`
	Name            string `json:"name" db:"name" validate:"required"`
	AIAnswerEnabled bool   `json:"ai_answer_enabled" db:"ai_answer_enabled"`
	Created         int64  `json:"created" db:"created"`
}

type User struct {
	ID           string `json:"id" db:"id"`
	CompanyID    string `json:"company_id" db:"company_id"`
	Name         string `json:"name" db:"name" validate:"required"`
	Email        string `json:"email" db:"email" validate:"required,email"`
	PasswordHash string `json:"password_hash,omitempty" db:"password_hash"`
	Created      int64  `json:"created" db:"created"`
}

type Question struct {
	ID          string   `json:"id" db:"id"`
	CompanyID   string   `json:"company_id" db:"company_id"`
	UserID      string   `json:"user_id" db:"user_id"`
	Title       string   `json:"title" db:"title" validate:"required"`
	Description string   `json:"description" db:"description" validate:"required"`
	Tags        []string `json:"tags" db:"tags"`
	Upvotes     int64    `json:"upvotes" db:"upvotes"`
	Created     int64    `json:"created" db:"created"`
}

// Answer is immutable once created. UserID is nil exactly when the answer was
// produced by the AI bridge (IsAI == true).
type Answer struct {
	ID         string  `json:"id" db:"id"`
	QuestionID string  `json:"question_id" db:"question_id"`
	UserID     *string `json:"user_id,omitempty" db:"user_id"`
	Body       string  `json:"body" db:"body" validate:"required"`
	IsAI       bool    `json:"is_ai" db:"is_ai"`
	Upvotes    int64   `json:"upvotes" db:"upvotes"`
	Created    int64   `json:"created" db:"created"`
}

type Comment struct {
	ID       string `json:"id" db:"id"`
	AnswerID string `json:"answer_id" db:"answer_id"`
	UserID   string `json:"user_id" db:"user_id"`
	Body     string `json:"body" db:"body" validate:"required"`
	Created  int64  `json:"created" db:"created"`
}
