package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/markwaveai/markwave-hr/internal/domain/holiday"
	"github.com/markwaveai/markwave-hr/internal/domain/leave"
)

// Transactor runs fn atomically; repository calls made with the ctx it
// passes to fn share one transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type leaveService struct {
	requestRepo leave.RequestRepository
	wfhRepo     leave.WFHRepository
	holidays    holiday.Calendar
	validator   *EligibilityValidator
	tx          Transactor
}

func NewLeaveService(
	requestRepo leave.RequestRepository,
	wfhRepo leave.WFHRepository,
	holidays holiday.Calendar,
	validator *EligibilityValidator,
	tx Transactor,
) leave.Service {
	return &leaveService{
		requestRepo: requestRepo,
		wfhRepo:     wfhRepo,
		holidays:    holidays,
		validator:   validator,
		tx:          tx,
	}
}

func (s *leaveService) Apply(ctx context.Context, employeeID string, req leave.ApplyRequest, now time.Time) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	code, _ := leave.ParseCode(req.Type)
	fromSession, _ := leave.ParseSessionChoice(req.FromSession)
	toSession, _ := leave.ParseSessionChoice(req.ToSession)
	from, to := req.Dates()

	// History is read and the request inserted in one transaction so two
	// overlapping submissions cannot both pass the duplicate gate.
	var created leave.Request
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		history, err := s.requestRepo.ListByEmployee(ctx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to list leave history: %w", err)
		}

		candidate := Candidate{
			FromDate:    from,
			ToDate:      to,
			FromSession: fromSession,
			ToSession:   toSession,
			Reason:      req.Reason,
			NotifyTo:    req.NotifyTo,
		}
		if err := s.validator.Admit(candidate, history, s.holidays, now); err != nil {
			return err
		}

		// Day-count happens at submit time, after the gates.
		days := CountDays(from, to, fromSession, toSession)

		if days > remaining(history, now.Year()).For(code) {
			return leave.ErrInsufficientBalance
		}

		request := leave.Request{
			ID:          uuid.NewString(),
			EmployeeID:  employeeID,
			Type:        code,
			FromDate:    from,
			ToDate:      to,
			FromSession: fromSession,
			ToSession:   toSession,
			Days:        days,
			Reason:      req.Reason,
			NotifyTo:    req.NotifyTo,
			Status:      leave.StatusPending,
		}

		created, err = s.requestRepo.Create(ctx, request)
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return mapRequest(created), nil
}

func (s *leaveService) List(ctx context.Context, employeeID string) ([]leave.RequestResponse, error) {
	requests, err := s.requestRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return mapRequests(requests), nil
}

func (s *leaveService) Balance(ctx context.Context, employeeID string, now time.Time) (leave.Balance, error) {
	year, err := s.requestRepo.ListByEmployeeYear(ctx, employeeID, now.Year())
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to list year requests: %w", err)
	}
	return remaining(year, now.Year()), nil
}

func (s *leaveService) Cancel(ctx context.Context, employeeID string, requestID string, now time.Time) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.EmployeeID != employeeID {
		return leave.ErrNotRequestOwner
	}
	if request.Status != leave.StatusPending {
		return leave.ErrAlreadyProcessed
	}
	return s.requestRepo.UpdateStatus(ctx, requestID, leave.StatusCancelled, employeeID, nil, now)
}

func (s *leaveService) ListPending(ctx context.Context) ([]leave.RequestResponse, error) {
	requests, err := s.requestRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return mapRequests(requests), nil
}

func (s *leaveService) Action(ctx context.Context, requestID string, actorID string, req leave.ActionRequest, now time.Time) error {
	if err := req.Validate(); err != nil {
		return err
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != leave.StatusPending {
		return leave.ErrAlreadyProcessed
	}

	status := leave.StatusApproved
	var note *string
	if req.Action == "reject" {
		status = leave.StatusRejected
		if req.Note != "" {
			note = &req.Note
		}
	}

	return s.requestRepo.UpdateStatus(ctx, requestID, status, actorID, note, now)
}

func (s *leaveService) ApplyWFH(ctx context.Context, employeeID string, req leave.WFHApplyRequest, now time.Time) (leave.WFHResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.WFHResponse{}, err
	}
	from, to := req.Dates()

	var created leave.WFHRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		history, err := s.requestRepo.ListByEmployee(ctx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to list leave history: %w", err)
		}

		// WFH shares the leave gates: no Sundays or holidays, no overlap
		// with counted leave, same-day cutoffs for a full-day request.
		candidate := Candidate{
			FromDate:    from,
			ToDate:      to,
			FromSession: leave.SessionFullDay,
			ToSession:   leave.SessionFullDay,
			Reason:      req.Reason,
			NotifyTo:    req.NotifyTo,
		}
		if err := s.validator.Admit(candidate, history, s.holidays, now); err != nil {
			return err
		}

		request := leave.WFHRequest{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			FromDate:   from,
			ToDate:     to,
			Reason:     req.Reason,
			NotifyTo:   req.NotifyTo,
			Status:     leave.StatusPending,
		}

		created, err = s.wfhRepo.Create(ctx, request)
		if err != nil {
			return fmt.Errorf("failed to create WFH request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.WFHResponse{}, err
	}

	return mapWFH(created), nil
}

func (s *leaveService) ListWFH(ctx context.Context, employeeID string) ([]leave.WFHResponse, error) {
	requests, err := s.wfhRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list WFH requests: %w", err)
	}

	responses := make([]leave.WFHResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, mapWFH(r))
	}
	return responses, nil
}

// remaining computes the per-type allowance left for one year. Only
// counted requests starting in that year consume it.
func remaining(requests []leave.Request, year int) leave.Balance {
	balance := leave.Balance{
		Casual: leave.CodeCasual.AnnualLimit(),
		Sick:   leave.CodeSick.AnnualLimit(),
		Earned: leave.CodeEarned.AnnualLimit(),
	}
	for _, r := range requests {
		if !r.Status.Counted() || r.FromDate.Year() != year {
			continue
		}
		switch r.Type {
		case leave.CodeCasual:
			balance.Casual -= r.Days
		case leave.CodeSick:
			balance.Sick -= r.Days
		case leave.CodeEarned:
			balance.Earned -= r.Days
		}
	}
	return balance
}

func mapRequest(r leave.Request) leave.RequestResponse {
	return leave.RequestResponse{
		ID:           r.ID,
		Type:         r.Type,
		FromDate:     r.FromDate.Format("2006-01-02"),
		ToDate:       r.ToDate.Format("2006-01-02"),
		FromSession:  r.FromSession,
		ToSession:    r.ToSession,
		Days:         r.Days,
		Reason:       r.Reason,
		NotifyTo:     r.NotifyTo,
		Status:       r.Status,
		EmployeeName: r.EmployeeName,
		ActionNote:   r.ActionNote,
		CreatedAt:    r.CreatedAt,
	}
}

func mapRequests(requests []leave.Request) []leave.RequestResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, mapRequest(r))
	}
	return responses
}

func mapWFH(r leave.WFHRequest) leave.WFHResponse {
	return leave.WFHResponse{
		ID:        r.ID,
		FromDate:  r.FromDate.Format("2006-01-02"),
		ToDate:    r.ToDate.Format("2006-01-02"),
		Reason:    r.Reason,
		NotifyTo:  r.NotifyTo,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
