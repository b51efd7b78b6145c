package leave

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Create inserts req in its own transaction and returns the assigned id.
func (s *Store) Create(ctx context.Context, req LeaveRequest) (int64, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin leave request tx: %w", err)
	}

	var id int64
	if err := tx.QueryRowContext(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate, req.Reason).Scan(&id); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert leave request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit leave request: %w", err)
	}
	return id, nil
}

func (s *Store) List(ctx context.Context) ([]LeaveRequest, error) {
	rows, err := s.DB.QueryContext(ctx, `
    SELECT id, employee_id, leave_type, start_date, end_date, reason, created_at
    FROM leave_requests
    ORDER BY id
  `)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer rows.Close()

	out := []LeaveRequest{}
	for rows.Next() {
		var lr LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
