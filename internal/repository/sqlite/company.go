package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/askhub/pkg/models"
)

func (r *SQLiteRepo) CreateCompany(ctx context.Context, c *models.Company) (string, error) {
	if c == nil {
		return "", fmt.Errorf("company is nil")
	}

	if c.ID == "" {
		c.ID = newID()
	}
	if c.Created == 0 {
		c.Created = now()
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO companies (id, name, ai_answer_enabled, created) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, boolToInt(c.AIAnswerEnabled), c.Created)
	if err != nil {
		return "", err
	}

	return c.ID, nil
}

func (r *SQLiteRepo) GetCompanyByID(ctx context.Context, id string) (*models.Company, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, ai_answer_enabled, created FROM companies WHERE id = ?`, id)

	var c models.Company
	var enabled int
	if err := row.Scan(&c.ID, &c.Name, &enabled, &c.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	c.AIAnswerEnabled = enabled != 0

	return &c, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
