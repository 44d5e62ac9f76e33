package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/askhub/pkg/models"
)

func (r *SQLiteRepo) CreateAnswer(ctx context.Context, a *models.Answer) (string, error) {
	if a == nil {
		return "", fmt.Errorf("answer is nil")
	}

	if a.ID == "" {
		a.ID = newID()
	}
	if a.Created == 0 {
		a.Created = now()
	}

	var userID sql.NullString
	if a.UserID != nil {
		userID = sql.NullString{String: *a.UserID, Valid: true}
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO answers (id, question_id, user_id, body, is_ai, upvotes, created) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.QuestionID, userID, a.Body, boolToInt(a.IsAI), a.Upvotes, a.Created)
	if err != nil {
		return "", err
	}

	return a.ID, nil
}

func (r *SQLiteRepo) GetAnswerByID(ctx context.Context, id string) (*models.Answer, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, question_id, user_id, body, is_ai, upvotes, created FROM answers WHERE id = ?`, id)

	var a models.Answer
	var userID sql.NullString
	var isAI int
	if err := row.Scan(&a.ID, &a.QuestionID, &userID, &a.Body, &isAI, &a.Upvotes, &a.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if userID.Valid {
		v := userID.String
		a.UserID = &v
	}
	a.IsAI = isAI != 0

	return &a, nil
}

func (r *SQLiteRepo) ListAnswersByQuestion(ctx context.Context, questionID string) ([]models.Answer, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, question_id, user_id, body, is_ai, upvotes, created FROM answers WHERE question_id = ? ORDER BY created ASC, rowid ASC`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Answer{}
	for rows.Next() {
		var a models.Answer
		var userID sql.NullString
		var isAI int
		if err := rows.Scan(&a.ID, &a.QuestionID, &userID, &a.Body, &isAI, &a.Upvotes, &a.Created); err != nil {
			return nil, err
		}
		if userID.Valid {
			v := userID.String
			a.UserID = &v
		}
		a.IsAI = isAI != 0

		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CountAnswersByQuestion(ctx context.Context, questionID string) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM answers WHERE question_id = ?`, questionID)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}
