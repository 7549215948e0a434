package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/markwaveai/markwave-hr/internal/domain/attendance"
	"github.com/markwaveai/markwave-hr/internal/domain/holiday"
	"github.com/markwaveai/markwave-hr/internal/domain/leave"
	"github.com/markwaveai/markwave-hr/internal/pkg/timefmt"
)

const clockLayout = "03:04 PM"

// Transactor runs fn atomically; repository calls made with the ctx it
// passes to fn share one transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type attendanceService struct {
	sessionRepo attendance.SessionRepository
	leaveRepo   leave.RequestRepository
	holidays    holiday.Calendar
	calc        *DayCalculator
	tx          Transactor
}

func NewAttendanceService(
	sessionRepo attendance.SessionRepository,
	leaveRepo leave.RequestRepository,
	holidays holiday.Calendar,
	calc *DayCalculator,
	tx Transactor,
) attendance.Service {
	return &attendanceService{
		sessionRepo: sessionRepo,
		leaveRepo:   leaveRepo,
		holidays:    holidays,
		calc:        calc,
		tx:          tx,
	}
}

func (s *attendanceService) ClockIn(ctx context.Context, employeeID string, now time.Time) (attendance.DayLogResponse, error) {
	today := dateOnly(now)

	// The open-session check and the insert must see the same state, or
	// two concurrent clock-ins could both pass the check.
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.sessionRepo.GetOpen(ctx, employeeID, today)
		if err == nil {
			return attendance.ErrAlreadyClockedIn
		}
		if !errors.Is(err, attendance.ErrSessionNotFound) {
			return fmt.Errorf("failed to check open session: %w", err)
		}

		session := attendance.Session{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			Date:       today,
			ClockIn:    now,
		}
		if _, err := s.sessionRepo.Create(ctx, session); err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.DayLogResponse{}, err
	}

	return s.dayResponse(ctx, employeeID, today, now)
}

func (s *attendanceService) ClockOut(ctx context.Context, employeeID string, now time.Time) (attendance.DayLogResponse, error) {
	today := dateOnly(now)

	open, err := s.sessionRepo.GetOpen(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrSessionNotFound) {
			return attendance.DayLogResponse{}, attendance.ErrNoOpenSession
		}
		return attendance.DayLogResponse{}, fmt.Errorf("failed to check open session: %w", err)
	}

	if err := s.sessionRepo.Close(ctx, open.ID, now); err != nil {
		return attendance.DayLogResponse{}, fmt.Errorf("failed to close session: %w", err)
	}

	return s.dayResponse(ctx, employeeID, today, now)
}

func (s *attendanceService) Logs(ctx context.Context, employeeID string, filter attendance.LogsFilter, now time.Time) ([]attendance.DayLogResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	from, to := filter.Range()
	return s.buildRange(ctx, employeeID, from, to, now)
}

func (s *attendanceService) Summary(ctx context.Context, employeeID string, window attendance.SummaryWindow, now time.Time) (attendance.SummaryResponse, error) {
	logs, err := s.dayLogs(ctx, employeeID, windowStart(window, now), dateOnly(now), now)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	summary := s.calc.Rollup(logs, window, now)
	return attendance.SummaryResponse{
		Window:           window,
		PresentDays:      summary.PresentDays,
		AvgMinutesPerDay: summary.AvgMinutesPerDay,
		AvgFormatted:     timefmt.FormatDuration(summary.AvgMinutesPerDay),
		OnTimePercent:    summary.OnTimePercent,
	}, nil
}

func (s *attendanceService) dayResponse(ctx context.Context, employeeID string, date time.Time, now time.Time) (attendance.DayLogResponse, error) {
	responses, err := s.buildRange(ctx, employeeID, date, date, now)
	if err != nil {
		return attendance.DayLogResponse{}, err
	}
	return responses[0], nil
}

func (s *attendanceService) buildRange(ctx context.Context, employeeID string, from, to time.Time, now time.Time) ([]attendance.DayLogResponse, error) {
	logs, err := s.dayLogs(ctx, employeeID, from, to, now)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.DayLogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, s.mapDayLog(log, now))
	}
	return responses, nil
}

// dayLogs assembles one DayLog per calendar day in [from, to], with
// punch pairs rendered to clock strings and holiday/leave flags
// attached from the calendar snapshot and leave history.
func (s *attendanceService) dayLogs(ctx context.Context, employeeID string, from, to time.Time, now time.Time) ([]attendance.DayLog, error) {
	sessions, err := s.sessionRepo.ListByRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	byDate := make(map[string][]attendance.Session)
	for _, session := range sessions {
		key := session.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], session)
	}

	leaves, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave history: %w", err)
	}

	var logs []attendance.DayLog
	for d := dateOnly(from); !d.After(dateOnly(to)); d = d.AddDate(0, 0, 1) {
		holidayName, isHoliday := s.holidays.NameOn(d)

		log := attendance.DayLog{
			Date:        d,
			Sessions:    punchPairs(byDate[d.Format("2006-01-02")]),
			IsWeekend:   d.Weekday() == time.Sunday,
			IsHoliday:   isHoliday,
			HolidayName: holidayName,
			LeaveType:   approvedLeaveType(leaves, d),
			IsActive:    sameDate(d, now),
		}
		logs = append(logs, log)
	}
	return logs, nil
}

func (s *attendanceService) mapDayLog(log attendance.DayLog, now time.Time) attendance.DayLogResponse {
	stats := s.calc.Derive(log, now)

	checkIn, checkOut := boundaryStrings(log)
	if checkIn == "" {
		checkIn = "-"
	}
	if checkOut == "" {
		checkOut = "-"
	}

	return attendance.DayLogResponse{
		Date:                   log.Date.Format("2006-01-02"),
		CheckIn:                checkIn,
		CheckOut:               checkOut,
		Logs:                   log.Sessions,
		IsHoliday:              log.IsHoliday,
		HolidayName:            log.HolidayName,
		IsWeekend:              log.IsWeekend,
		LeaveType:              log.LeaveType,
		IsActive:               log.IsActive,
		GrossMinutes:           stats.GrossMinutes,
		BreakMinutes:           stats.BreakMinutes,
		EffectiveMinutes:       stats.EffectiveMinutes,
		EffectiveFormatted:     timefmt.FormatDuration(stats.EffectiveMinutes),
		ArrivalStatus:          stats.Arrival,
		FormattedRange:         stats.FormattedRange,
		VisualSegments:         stats.Segments,
		RequiresRegularization: stats.RequiresRegularization,
	}
}

func punchPairs(sessions []attendance.Session) []attendance.PunchPair {
	pairs := make([]attendance.PunchPair, 0, len(sessions))
	for _, s := range sessions {
		pair := attendance.PunchPair{In: s.ClockIn.Format(clockLayout), Out: "-"}
		if s.ClockOut != nil {
			pair.Out = s.ClockOut.Format(clockLayout)
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

func approvedLeaveType(leaves []leave.Request, date time.Time) string {
	for _, l := range leaves {
		if l.Status != leave.StatusApproved {
			continue
		}
		if !date.Before(dateOnly(l.FromDate)) && !date.After(dateOnly(l.ToDate)) {
			return string(l.Type)
		}
	}
	return ""
}
