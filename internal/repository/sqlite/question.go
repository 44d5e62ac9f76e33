package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/garnizeh/askhub/pkg/models"
	"github.com/garnizeh/askhub/pkg/repository"
)

func (r *SQLiteRepo) CreateQuestion(ctx context.Context, q *models.Question) (string, error) {
	if q == nil {
		return "", fmt.Errorf("question is nil")
	}

	if q.ID == "" {
		q.ID = newID()
	}
	if q.Created == 0 {
		q.Created = now()
	}

	tags, err := encodeTags(q.Tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}

	_, err = r.conn.Exec(ctx, `INSERT INTO questions (id, company_id, user_id, title, description, tags, upvotes, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.CompanyID, q.UserID, q.Title, q.Description, tags, q.Upvotes, q.Created)
	if err != nil {
		return "", err
	}

	return q.ID, nil
}

func (r *SQLiteRepo) GetQuestionByID(ctx context.Context, id string) (*models.Question, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, company_id, user_id, title, description, tags, upvotes, created FROM questions WHERE id = ?`, id)

	var q models.Question
	var tags string
	if err := row.Scan(&q.ID, &q.CompanyID, &q.UserID, &q.Title, &q.Description, &tags, &q.Upvotes, &q.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &q.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}

	return &q, nil
}

func (r *SQLiteRepo) ListQuestions(ctx context.Context, companyID string, tags []string, sort repository.SortKey, limit, offset int) ([]models.Question, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	where, args := questionFilter(companyID, tags)

	// rowid breaks ties in insertion order so paging is stable
	order := "upvotes DESC, rowid ASC"
	if sort == repository.SortByCreatedAt {
		order = "created DESC, rowid ASC"
	}

	query := `SELECT id, company_id, user_id, title, description, tags, upvotes, created FROM questions WHERE ` + where +
		` ORDER BY ` + order + ` LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Question{}
	for rows.Next() {
		var q models.Question
		var tagsJSON string
		if err := rows.Scan(&q.ID, &q.CompanyID, &q.UserID, &q.Title, &q.Description, &tagsJSON, &q.Upvotes, &q.Created); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tagsJSON), &q.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}

		out = append(out, q)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CountQuestions(ctx context.Context, companyID string, tags []string) (int64, error) {
	where, args := questionFilter(companyID, tags)

	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM questions WHERE `+where, args...)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}

// questionFilter builds the WHERE clause shared by ListQuestions and
// CountQuestions: company scoping plus, when tags are given, a set
// intersection over the stored JSON tag array.
func questionFilter(companyID string, tags []string) (string, []any) {
	where := `company_id = ?`
	args := []any{companyID}

	if len(tags) > 0 {
		placeholders := strings.Repeat("?, ", len(tags)-1) + "?"
		where += ` AND EXISTS (SELECT 1 FROM json_each(questions.tags) WHERE json_each.value IN (` + placeholders + `))`
		for _, t := range tags {
			args = append(args, t)
		}
	}

	return where, args
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
