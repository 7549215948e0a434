package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/markwaveai/markwave-hr/internal/domain/leave"
	"github.com/markwaveai/markwave-hr/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, type,
			from_date, to_date, from_session, to_session, days,
			reason, notify_to, status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7, $8,
			$9, $10, $11,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.Type,
		request.FromDate, request.ToDate, request.FromSession, request.ToSession, request.Days,
		request.Reason, request.NotifyTo, request.Status,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.Request{}, err
	}

	return request, nil
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.type,
	lr.from_date, lr.to_date, lr.from_session, lr.to_session, lr.days,
	lr.reason, lr.notify_to, lr.status,
	lr.action_by, lr.action_at, lr.action_note,
	lr.created_at, lr.updated_at
`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Type,
		&req.FromDate, &req.ToDate, &req.FromSession, &req.ToSession, &req.Days,
		&req.Reason, &req.NotifyTo, &req.Status,
		&req.ActionBy, &req.ActionAt, &req.ActionNote,
		&req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM leave_requests lr WHERE lr.id = $1`, leaveRequestColumns)
	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, err
	}
	return req, nil
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM leave_requests lr
		WHERE lr.employee_id = $1
		ORDER BY lr.from_date DESC
	`, leaveRequestColumns)
	return r.list(ctx, query, employeeID)
}

func (r *leaveRequestRepositoryImpl) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.Request, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM leave_requests lr
		WHERE lr.employee_id = $1 AND EXTRACT(YEAR FROM lr.from_date) = $2
		ORDER BY lr.from_date DESC
	`, leaveRequestColumns)
	return r.list(ctx, query, employeeID, year)
}

func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, u.full_name
		FROM leave_requests lr
		LEFT JOIN users u ON u.employee_id = lr.employee_id
		WHERE lr.status = $1
		ORDER BY lr.created_at ASC
	`, leaveRequestColumns)

	rows, err := q.Query(ctx, query, leave.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type,
			&req.FromDate, &req.ToDate, &req.FromSession, &req.ToSession, &req.Days,
			&req.Reason, &req.NotifyTo, &req.Status,
			&req.ActionBy, &req.ActionAt, &req.ActionNote,
			&req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return requests, nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, actionBy string, actionNote *string, actionAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, action_by = $2, action_note = $3, action_at = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`
	var updatedID string
	if err := q.QueryRow(ctx, query, status, actionBy, actionNote, actionAt, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrRequestNotFound
		}
		return fmt.Errorf("failed to update status for leave request with id %s: %w", id, err)
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return requests, nil
}
