package certificate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, req CertificateRequest) (int64, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin certificate tx: %w", err)
	}

	var id int64
	if err := tx.QueryRowContext(ctx, `
    INSERT INTO certificate_requests (student_id, certificate_type)
    VALUES ($1,$2)
    RETURNING id
  `, req.StudentID, req.CertificateType).Scan(&id); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert certificate request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit certificate request: %w", err)
	}
	return id, nil
}

// Get returns ErrNotFound when no certificate has the given id.
func (s *Store) Get(ctx context.Context, id int64) (CertificateRequest, error) {
	var c CertificateRequest
	err := s.DB.QueryRowContext(ctx, `
    SELECT id, student_id, certificate_type, created_at
    FROM certificate_requests
    WHERE id = $1
  `, id).Scan(&c.ID, &c.StudentID, &c.CertificateType, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return CertificateRequest{}, ErrNotFound
	}
	if err != nil {
		return CertificateRequest{}, fmt.Errorf("get certificate %d: %w", id, err)
	}
	return c, nil
}
