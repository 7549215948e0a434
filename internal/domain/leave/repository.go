package leave

import (
	"context"
	"time"
)

type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	// ListByEmployeeYear returns requests whose from date falls in the
	// given calendar year, for balance computation.
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]Request, error)
	ListPending(ctx context.Context) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus, actionBy string, actionNote *string, actionAt time.Time) error
}

type WFHRepository interface {
	Create(ctx context.Context, request WFHRequest) (WFHRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]WFHRequest, error)
}
