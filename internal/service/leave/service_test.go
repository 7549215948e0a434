package leave

import (
	"context"
	"testing"
	"time"

	"github.com/markwaveai/markwave-hr/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRequestRepo struct {
	requests []leave.Request
}

func (m *memRequestRepo) Create(_ context.Context, request leave.Request) (leave.Request, error) {
	request.CreatedAt = time.Now()
	m.requests = append(m.requests, request)
	return request, nil
}

func (m *memRequestRepo) GetByID(_ context.Context, id string) (leave.Request, error) {
	for _, r := range m.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return leave.Request{}, leave.ErrRequestNotFound
}

func (m *memRequestRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.Request, error) {
	var out []leave.Request
	for _, r := range m.requests {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRequestRepo) ListByEmployeeYear(_ context.Context, employeeID string, year int) ([]leave.Request, error) {
	var out []leave.Request
	for _, r := range m.requests {
		if r.EmployeeID == employeeID && r.FromDate.Year() == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRequestRepo) ListPending(_ context.Context) ([]leave.Request, error) {
	var out []leave.Request
	for _, r := range m.requests {
		if r.Status == leave.StatusPending {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRequestRepo) UpdateStatus(_ context.Context, id string, status leave.RequestStatus, actionBy string, actionNote *string, actionAt time.Time) error {
	for i, r := range m.requests {
		if r.ID == id {
			m.requests[i].Status = status
			m.requests[i].ActionBy = &actionBy
			m.requests[i].ActionNote = actionNote
			m.requests[i].ActionAt = &actionAt
			return nil
		}
	}
	return leave.ErrRequestNotFound
}

type memWFHRepo struct {
	requests []leave.WFHRequest
}

func (m *memWFHRepo) Create(_ context.Context, request leave.WFHRequest) (leave.WFHRequest, error) {
	m.requests = append(m.requests, request)
	return request, nil
}

func (m *memWFHRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.WFHRequest, error) {
	var out []leave.WFHRequest
	for _, r := range m.requests {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

// passthroughTx satisfies Transactor without a database; it records how
// many transactions the service opened.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

func newTestService(repo *memRequestRepo, wfh *memWFHRepo, cal fixedCalendar) leave.Service {
	return NewLeaveService(repo, wfh, cal, NewEligibilityValidator(testCutoffs()), &passthroughTx{})
}

func applyReq(from, to string) leave.ApplyRequest {
	return leave.ApplyRequest{
		Type:        "casual",
		FromDate:    from,
		ToDate:      to,
		FromSession: "Full Day",
		ToSession:   "Full Day",
		Reason:      "family function",
		NotifyTo:    []string{"manager@markwave.ai"},
	}
}

func TestApplyCreatesPending(t *testing.T) {
	t.Parallel()
	repo := &memRequestRepo{}
	svc := newTestService(repo, &memWFHRepo{}, fixedCalendar{})

	resp, err := svc.Apply(context.Background(), "emp-1", applyReq("2025-03-12", "2025-03-13"), clock("2025-03-05", "11:00"))
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, 2.0, resp.Days)
	assert.Equal(t, leave.CodeCasual, resp.Type)
	require.Len(t, repo.requests, 1)
}

func TestApplyRejectsOnInsufficientBalance(t *testing.T) {
	t.Parallel()
	repo := &memRequestRepo{requests: []leave.Request{{
		ID:         "existing",
		EmployeeID: "emp-1",
		Type:       leave.CodeCasual,
		FromDate:   date("2025-02-03"),
		ToDate:     date("2025-02-07"),
		Days:       5,
		Status:     leave.StatusApproved,
	}}}
	svc := newTestService(repo, &memWFHRepo{}, fixedCalendar{})

	// 6 casual days per year, 5 used: a 2-day request must fail.
	_, err := svc.Apply(context.Background(), "emp-1", applyReq("2025-03-12", "2025-03-13"), clock("2025-03-05", "11:00"))
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	// A single day still fits.
	_, err = svc.Apply(context.Background(), "emp-1", applyReq("2025-03-12", "2025-03-12"), clock("2025-03-05", "11:00"))
	assert.NoError(t, err)
}

func TestBalanceSubtractsCountedRequests(t *testing.T) {
	t.Parallel()
	repo := &memRequestRepo{requests: []leave.Request{
		{EmployeeID: "emp-1", Type: leave.CodeCasual, FromDate: date("2025-02-03"), ToDate: date("2025-02-04"), Days: 2, Status: leave.StatusApproved},
		{EmployeeID: "emp-1", Type: leave.CodeSick, FromDate: date("2025-02-10"), ToDate: date("2025-02-10"), Days: 0.5, Status: leave.StatusPending},
		{EmployeeID: "emp-1", Type: leave.CodeEarned, FromDate: date("2025-02-12"), ToDate: date("2025-02-14"), Days: 3, Status: leave.StatusRejected},
	}}
	svc := newTestService(repo, &memWFHRepo{}, fixedCalendar{})

	balance, err := svc.Balance(context.Background(), "emp-1", clock("2025-03-05", "11:00"))
	require.NoError(t, err)

	assert.Equal(t, 4.0, balance.Casual)
	assert.Equal(t, 5.5, balance.Sick)
	assert.Equal(t, 17.0, balance.Earned) // rejected requests do not consume
}

func TestActionTransitionsOnlyPending(t *testing.T) {
	t.Parallel()
	repo := &memRequestRepo{requests: []leave.Request{{
		ID:         "req-1",
		EmployeeID: "emp-1",
		Type:       leave.CodeSick,
		FromDate:   date("2025-03-12"),
		ToDate:     date("2025-03-12"),
		Days:       1,
		Status:     leave.StatusPending,
	}}}
	svc := newTestService(repo, &memWFHRepo{}, fixedCalendar{})
	now := clock("2025-03-06", "10:00")

	err := svc.Action(context.Background(), "req-1", "admin-1", leave.ActionRequest{Action: "reject", Note: "short staffed"}, now)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, repo.requests[0].Status)
	require.NotNil(t, repo.requests[0].ActionNote)
	assert.Equal(t, "short staffed", *repo.requests[0].ActionNote)

	// Second action on the same request must fail.
	err = svc.Action(context.Background(), "req-1", "admin-1", leave.ActionRequest{Action: "approve"}, now)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestCancelOwnPendingOnly(t *testing.T) {
	t.Parallel()
	repo := &memRequestRepo{requests: []leave.Request{{
		ID:         "req-1",
		EmployeeID: "emp-1",
		Status:     leave.StatusPending,
	}}}
	svc := newTestService(repo, &memWFHRepo{}, fixedCalendar{})
	now := clock("2025-03-06", "10:00")

	assert.ErrorIs(t, svc.Cancel(context.Background(), "emp-2", "req-1", now), leave.ErrNotRequestOwner)
	require.NoError(t, svc.Cancel(context.Background(), "emp-1", "req-1", now))
	assert.Equal(t, leave.StatusCancelled, repo.requests[0].Status)

	// The cancellation timestamp is the caller's clock, not the wall clock.
	require.NotNil(t, repo.requests[0].ActionAt)
	assert.True(t, repo.requests[0].ActionAt.Equal(now))
}

func TestApplySubmitsInOneTransaction(t *testing.T) {
	t.Parallel()
	repo := &memRequestRepo{}
	tx := &passthroughTx{}
	svc := NewLeaveService(repo, &memWFHRepo{}, fixedCalendar{}, NewEligibilityValidator(testCutoffs()), tx)

	_, err := svc.Apply(context.Background(), "emp-1", applyReq("2025-03-12", "2025-03-13"), clock("2025-03-05", "11:00"))
	require.NoError(t, err)

	// The duplicate check and the insert share one transaction, and the
	// created request is visible after it commits.
	assert.Equal(t, 1, tx.calls)
	require.Len(t, repo.requests, 1)

	_, err = svc.ApplyWFH(context.Background(), "emp-1", leave.WFHApplyRequest{
		FromDate: "2025-03-17",
		Reason:   "remote work",
		NotifyTo: []string{"manager@markwave.ai"},
	}, clock("2025-03-05", "11:00"))
	require.NoError(t, err)
	assert.Equal(t, 2, tx.calls)
}

func TestApplyWFHSharesGates(t *testing.T) {
	t.Parallel()
	repo := &memRequestRepo{}
	wfh := &memWFHRepo{}
	svc := newTestService(repo, wfh, fixedCalendar{})
	now := clock("2025-03-05", "11:00")

	// 2025-03-16 is a Sunday.
	_, err := svc.ApplyWFH(context.Background(), "emp-1", leave.WFHApplyRequest{
		FromDate: "2025-03-16",
		Reason:   "remote work",
		NotifyTo: []string{"manager@markwave.ai"},
	}, now)
	var restricted *leave.RestrictedDayError
	assert.ErrorAs(t, err, &restricted)

	resp, err := svc.ApplyWFH(context.Background(), "emp-1", leave.WFHApplyRequest{
		FromDate: "2025-03-17",
		Reason:   "remote work",
		NotifyTo: []string{"manager@markwave.ai"},
	}, now)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, resp.Status)
	require.Len(t, wfh.requests, 1)
}
