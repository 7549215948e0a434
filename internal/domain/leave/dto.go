package leave

import (
	"time"

	"github.com/markwaveai/markwave-hr/internal/pkg/validator"
)

type ApplyRequest struct {
	Type        string   `json:"type"`
	FromDate    string   `json:"fromDate"`
	ToDate      string   `json:"toDate"`
	FromSession string   `json:"fromSession"`
	ToSession   string   `json:"toSession"`
	Reason      string   `json:"reason"`
	NotifyTo    []string `json:"notifyTo"`
}

func (r ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := ParseCode(r.Type); !ok {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "Leave type must be casual, sick or earned"})
	}

	if validator.IsEmpty(r.FromDate) {
		errs = append(errs, validator.ValidationError{Field: "fromDate", Message: "From date is required"})
	} else if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "fromDate", Message: "From date must be YYYY-MM-DD"})
	}

	// To date defaults to from date when omitted.
	if !validator.IsEmpty(r.ToDate) {
		if _, ok := validator.IsValidDate(r.ToDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "toDate", Message: "To date must be YYYY-MM-DD"})
		}
	}

	if _, ok := ParseSessionChoice(r.FromSession); !ok {
		errs = append(errs, validator.ValidationError{Field: "fromSession", Message: "From session must be Full Day, First Half or Second Half"})
	}
	if _, ok := ParseSessionChoice(r.ToSession); !ok {
		errs = append(errs, validator.ValidationError{Field: "toSession", Message: "To session must be Full Day, First Half or Second Half"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the parsed range, defaulting to a single day. Call
// Validate first.
func (r ApplyRequest) Dates() (time.Time, time.Time) {
	from, _ := validator.IsValidDate(r.FromDate)
	to := from
	if !validator.IsEmpty(r.ToDate) {
		to, _ = validator.IsValidDate(r.ToDate)
	}
	return from, to
}

type WFHApplyRequest struct {
	FromDate string   `json:"fromDate"`
	ToDate   string   `json:"toDate"`
	Reason   string   `json:"reason"`
	NotifyTo []string `json:"notifyTo"`
}

func (r WFHApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FromDate) {
		errs = append(errs, validator.ValidationError{Field: "fromDate", Message: "From date is required"})
	} else if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "fromDate", Message: "From date must be YYYY-MM-DD"})
	}

	if !validator.IsEmpty(r.ToDate) {
		if _, ok := validator.IsValidDate(r.ToDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "toDate", Message: "To date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r WFHApplyRequest) Dates() (time.Time, time.Time) {
	from, _ := validator.IsValidDate(r.FromDate)
	to := from
	if !validator.IsEmpty(r.ToDate) {
		to, _ = validator.IsValidDate(r.ToDate)
	}
	return from, to
}

type ActionRequest struct {
	Action string `json:"action"`
	Note   string `json:"note"`
}

func (r ActionRequest) Validate() error {
	if !validator.IsInSlice(r.Action, []string{"approve", "reject"}) {
		return validator.ValidationErrors{{Field: "action", Message: "Action must be approve or reject"}}
	}
	return nil
}

type RequestResponse struct {
	ID           string        `json:"id"`
	Type         Code          `json:"type"`
	FromDate     string        `json:"fromDate"`
	ToDate       string        `json:"toDate"`
	FromSession  SessionChoice `json:"fromSession"`
	ToSession    SessionChoice `json:"toSession"`
	Days         float64       `json:"days"`
	Reason       string        `json:"reason"`
	NotifyTo     []string      `json:"notifyTo"`
	Status       RequestStatus `json:"status"`
	EmployeeName *string       `json:"employeeName,omitempty"`
	ActionNote   *string       `json:"actionNote,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type WFHResponse struct {
	ID        string        `json:"id"`
	FromDate  string        `json:"fromDate"`
	ToDate    string        `json:"toDate"`
	Reason    string        `json:"reason"`
	NotifyTo  []string      `json:"notifyTo"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
