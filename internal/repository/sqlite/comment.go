package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/garnizeh/askhub/pkg/models"
)

func (r *SQLiteRepo) CreateComment(ctx context.Context, c *models.Comment) (string, error) {
	if c == nil {
		return "", fmt.Errorf("comment is nil")
	}

	if c.ID == "" {
		c.ID = newID()
	}
	if c.Created == 0 {
		c.Created = now()
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO comments (id, answer_id, user_id, body, created) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.AnswerID, c.UserID, c.Body, c.Created)
	if err != nil {
		return "", err
	}

	return c.ID, nil
}

func (r *SQLiteRepo) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, answer_id, user_id, body, created FROM comments WHERE id = ?`, id)

	var c models.Comment
	if err := row.Scan(&c.ID, &c.AnswerID, &c.UserID, &c.Body, &c.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &c, nil
}

// ListCommentsByAnswerIDs fetches the comments of all given answers in one
// query and groups them by answer id, each group in creation order.
func (r *SQLiteRepo) ListCommentsByAnswerIDs(ctx context.Context, answerIDs []string) (map[string][]models.Comment, error) {
	out := make(map[string][]models.Comment, len(answerIDs))
	if len(answerIDs) == 0 {
		return out, nil
	}

	placeholders := strings.Repeat("?, ", len(answerIDs)-1) + "?"
	args := make([]any, 0, len(answerIDs))
	for _, id := range answerIDs {
		args = append(args, id)
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT id, answer_id, user_id, body, created FROM comments WHERE answer_id IN (`+placeholders+`) ORDER BY created ASC, rowid ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.AnswerID, &c.UserID, &c.Body, &c.Created); err != nil {
			return nil, err
		}

		out[c.AnswerID] = append(out[c.AnswerID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
