package repository

import (
	"database/sql"
	"fmt"

	"github.com/sabron12/Sabron/internal/models"
)

type BlocklistRepo struct {
	db *sql.DB
}

func NewBlocklistRepo(db *sql.DB) *BlocklistRepo {
	return &BlocklistRepo{db: db}
}

// Add records an email as blocked. Re-blocking an already blocked email is a
// no-op; the UNIQUE constraint plus OR IGNORE keeps the call idempotent.
func (r *BlocklistRepo) Add(email string) error {
	if _, err := r.db.Exec(`INSERT OR IGNORE INTO blocked_users (email) VALUES (?)`, email); err != nil {
		return fmt.Errorf("block %s: %w", email, err)
	}
	return nil
}

func (r *BlocklistRepo) Remove(email string) error {
	if _, err := r.db.Exec(`DELETE FROM blocked_users WHERE email = ?`, email); err != nil {
		return fmt.Errorf("unblock %s: %w", email, err)
	}
	return nil
}

func (r *BlocklistRepo) All() ([]models.BlockedUser, error) {
	rows, err := r.db.Query(`SELECT email FROM blocked_users ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("list blocked users: %w", err)
	}
	defer rows.Close()

	users := make([]models.BlockedUser, 0)
	for rows.Next() {
		var u models.BlockedUser
		if err := rows.Scan(&u.Email); err != nil {
			return nil, fmt.Errorf("scan blocked email: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *BlocklistRepo) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM blocked_users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count blocked users: %w", err)
	}
	return n, nil
}
