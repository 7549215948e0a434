package postgresql

import (
	"context"
	"fmt"

	"github.com/markwaveai/markwave-hr/internal/domain/leave"
	"github.com/markwaveai/markwave-hr/internal/pkg/database"
)

type wfhRepositoryImpl struct {
	db *database.DB
}

func NewWFHRepository(db *database.DB) leave.WFHRepository {
	return &wfhRepositoryImpl{db: db}
}

func (r *wfhRepositoryImpl) Create(ctx context.Context, request leave.WFHRequest) (leave.WFHRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wfh_requests (
			id, employee_id, from_date, to_date, reason, notify_to, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.FromDate, request.ToDate,
		request.Reason, request.NotifyTo, request.Status,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.WFHRequest{}, err
	}
	return request, nil
}

func (r *wfhRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.WFHRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, from_date, to_date, reason, notify_to, status,
		       action_by, action_at, created_at, updated_at
		FROM wfh_requests
		WHERE employee_id = $1
		ORDER BY from_date DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.WFHRequest
	for rows.Next() {
		var req leave.WFHRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.FromDate, &req.ToDate,
			&req.Reason, &req.NotifyTo, &req.Status,
			&req.ActionBy, &req.ActionAt, &req.CreatedAt, &req.UpdatedAt,
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
