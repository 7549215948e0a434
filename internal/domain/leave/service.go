package leave

import (
	"context"
	"time"
)

type Service interface {
	Apply(ctx context.Context, employeeID string, req ApplyRequest, now time.Time) (RequestResponse, error)
	List(ctx context.Context, employeeID string) ([]RequestResponse, error)
	Balance(ctx context.Context, employeeID string, now time.Time) (Balance, error)
	Cancel(ctx context.Context, employeeID string, requestID string, now time.Time) error

	// Admin surface
	ListPending(ctx context.Context) ([]RequestResponse, error)
	Action(ctx context.Context, requestID string, actorID string, req ActionRequest, now time.Time) error

	ApplyWFH(ctx context.Context, employeeID string, req WFHApplyRequest, now time.Time) (WFHResponse, error)
	ListWFH(ctx context.Context, employeeID string) ([]WFHResponse, error)
}
