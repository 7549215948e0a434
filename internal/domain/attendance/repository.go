package attendance

import (
	"context"
	"time"
)

type SessionRepository interface {
	Create(ctx context.Context, session Session) (Session, error)
	Close(ctx context.Context, id string, clockOut time.Time) error
	GetOpen(ctx context.Context, employeeID string, date time.Time) (Session, error)
	ListByRange(ctx context.Context, employeeID string, from, to time.Time) ([]Session, error)
}
