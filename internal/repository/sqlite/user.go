package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/askhub/pkg/models"
)

func (r *SQLiteRepo) CreateUser(ctx context.Context, u *models.User) (string, error) {
	if u == nil {
		return "", fmt.Errorf("user is nil")
	}

	if u.ID == "" {
		u.ID = newID()
	}
	if u.Created == 0 {
		u.Created = now()
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO users (id, company_id, name, email, password_hash, created) VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.CompanyID, u.Name, u.Email, u.PasswordHash, u.Created)
	if err != nil {
		return "", err
	}

	return u.ID, nil
}

func (r *SQLiteRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, company_id, name, email, password_hash, created FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *SQLiteRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, company_id, name, email, password_hash, created FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.CompanyID, &u.Name, &u.Email, &u.PasswordHash, &u.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
