package http

import (
	"net/http"
	"time"

	"github.com/markwaveai/markwave-hr/internal/domain/attendance"
	"github.com/markwaveai/markwave-hr/internal/domain/auth"
	"github.com/markwaveai/markwave-hr/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Logs(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	log, err := h.attendanceService.ClockIn(r.Context(), employeeID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", log)
}

func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	log, err := h.attendanceService.ClockOut(r.Context(), employeeID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", log)
}

func (h *attendanceHandlerImpl) Logs(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := attendance.LogsFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	logs, err := h.attendanceService.Logs(r.Context(), employeeID, filter, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	window, ok := attendance.ParseSummaryWindow(r.URL.Query().Get("window"))
	if !ok {
		response.BadRequest(w, "Window must be Today, This Week or This Month", nil)
		return
	}

	summary, err := h.attendanceService.Summary(r.Context(), employeeID, window, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
