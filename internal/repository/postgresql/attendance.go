package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/markwaveai/markwave-hr/internal/domain/attendance"
	"github.com/markwaveai/markwave-hr/internal/pkg/database"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

func (r *sessionRepositoryImpl) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_sessions (id, employee_id, date, clock_in, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		session.ID, session.EmployeeID, session.Date, session.ClockIn,
	).Scan(&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return attendance.Session{}, err
	}
	return session, nil
}

func (r *sessionRepositoryImpl) Close(ctx context.Context, id string, clockOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punch_sessions
		SET clock_out = $1, updated_at = NOW()
		WHERE id = $2 AND clock_out IS NULL
	`
	tag, err := q.Exec(ctx, query, clockOut, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return attendance.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepositoryImpl) GetOpen(ctx context.Context, employeeID string, date time.Time) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, created_at, updated_at
		FROM punch_sessions
		WHERE employee_id = $1 AND date = $2 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`
	var s attendance.Session
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.ClockIn, &s.ClockOut, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Session{}, attendance.ErrSessionNotFound
		}
		return attendance.Session{}, err
	}
	return s, nil
}

func (r *sessionRepositoryImpl) ListByRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, created_at, updated_at
		FROM punch_sessions
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC, clock_in ASC
	`
	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		err := rows.Scan(&s.ID, &s.EmployeeID, &s.Date, &s.ClockIn, &s.ClockOut, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return sessions, nil
}
