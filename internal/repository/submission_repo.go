package repository

import (
	"database/sql"
	"fmt"

	"github.com/sabron12/Sabron/internal/models"
)

type SubmissionRepo struct {
	db *sql.DB
}

func NewSubmissionRepo(db *sql.DB) *SubmissionRepo {
	return &SubmissionRepo{db: db}
}

func (r *SubmissionRepo) Create(sub *models.Submission) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO submissions (
			fullName, phone, email, description,
			birthCertificate, resultSlip,
			indexNumber, kcseYear, birthCertNumber, primaryIndexNumber,
			timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.FullName, sub.Phone, sub.Email, sub.Description,
		sub.BirthCertificate, sub.ResultSlip,
		sub.IndexNumber, sub.KCSEYear, sub.BirthCertNumber, sub.PrimaryIndexNumber,
		sub.Timestamp,
	)
	if err != nil {
		return 0, fmt.Errorf("insert submission: %w", err)
	}
	return res.LastInsertId()
}

// FindAll returns every submission, newest first. The id is the tiebreak for
// rows created within the same second.
func (r *SubmissionRepo) FindAll() ([]models.Submission, error) {
	rows, err := r.db.Query(`
		SELECT id, fullName, phone, email, description,
		       birthCertificate, resultSlip,
		       indexNumber, kcseYear, birthCertNumber, primaryIndexNumber,
		       timestamp
		FROM submissions
		ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	subs := make([]models.Submission, 0)
	for rows.Next() {
		var s models.Submission
		if err := rows.Scan(
			&s.ID, &s.FullName, &s.Phone, &s.Email, &s.Description,
			&s.BirthCertificate, &s.ResultSlip,
			&s.IndexNumber, &s.KCSEYear, &s.BirthCertNumber, &s.PrimaryIndexNumber,
			&s.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *SubmissionRepo) DeleteAll() error {
	if _, err := r.db.Exec(`DELETE FROM submissions`); err != nil {
		return fmt.Errorf("clear submissions: %w", err)
	}
	return nil
}

func (r *SubmissionRepo) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}
