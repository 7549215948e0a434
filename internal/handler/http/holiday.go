package http

import (
	"net/http"

	"github.com/markwaveai/markwave-hr/internal/domain/holiday"
	"github.com/markwaveai/markwave-hr/internal/handler/http/response"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	calendar holiday.Calendar
}

func NewHolidayHandler(calendar holiday.Calendar) HolidayHandler {
	return &holidayHandlerImpl{calendar: calendar}
}

type holidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// List serves the current calendar snapshot.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	entries := h.calendar.All()

	holidays := make([]holidayResponse, 0, len(entries))
	for _, entry := range entries {
		holidays = append(holidays, holidayResponse{
			Date: entry.Date.Format("2006-01-02"),
			Name: entry.Name,
		})
	}

	response.Success(w, holidays)
}
