package attendance

import (
	"context"
	"time"
)

type Service interface {
	ClockIn(ctx context.Context, employeeID string, now time.Time) (DayLogResponse, error)
	ClockOut(ctx context.Context, employeeID string, now time.Time) (DayLogResponse, error)
	Logs(ctx context.Context, employeeID string, filter LogsFilter, now time.Time) ([]DayLogResponse, error)
	Summary(ctx context.Context, employeeID string, window SummaryWindow, now time.Time) (SummaryResponse, error)
}
