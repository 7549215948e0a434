package leave

import "time"

type RequestStatus string

const (
	StatusPending   RequestStatus = "Pending"
	StatusApproved  RequestStatus = "Approved"
	StatusRejected  RequestStatus = "Rejected"
	StatusCancelled RequestStatus = "Cancelled"
)

// Counted reports whether a request in this status still consumes its
// dates and balance. Rejected and Cancelled requests do not.
func (s RequestStatus) Counted() bool {
	return s != StatusRejected && s != StatusCancelled
}

type SessionChoice string

const (
	SessionFullDay    SessionChoice = "Full Day"
	SessionFirstHalf  SessionChoice = "First Half"
	SessionSecondHalf SessionChoice = "Second Half"
)

func ParseSessionChoice(s string) (SessionChoice, bool) {
	switch SessionChoice(s) {
	case SessionFullDay, SessionFirstHalf, SessionSecondHalf:
		return SessionChoice(s), true
	case "":
		return SessionFullDay, true
	}
	return "", false
}

type Code string

const (
	CodeCasual Code = "casual"
	CodeSick   Code = "sick"
	CodeEarned Code = "earned"
)

// AnnualLimit is the yearly allowance per leave type.
func (c Code) AnnualLimit() float64 {
	switch c {
	case CodeCasual:
		return 6
	case CodeSick:
		return 6
	case CodeEarned:
		return 17
	}
	return 0
}

func ParseCode(s string) (Code, bool) {
	switch Code(s) {
	case CodeCasual, CodeSick, CodeEarned:
		return Code(s), true
	}
	return "", false
}

type Request struct {
	ID          string
	EmployeeID  string
	Type        Code
	FromDate    time.Time
	ToDate      time.Time
	FromSession SessionChoice
	ToSession   SessionChoice
	Days        float64
	Reason      string
	NotifyTo    []string
	Status      RequestStatus
	ActionBy    *string
	ActionAt    *time.Time
	ActionNote  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	EmployeeName *string
}

// WFHRequest mirrors a leave request without a type or balance. It is
// subject to the Sunday and overlap gates only.
type WFHRequest struct {
	ID         string
	EmployeeID string
	FromDate   time.Time
	ToDate     time.Time
	Reason     string
	NotifyTo   []string
	Status     RequestStatus
	ActionBy   *string
	ActionAt   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Balance is the remaining allowance per leave type for one year.
type Balance struct {
	Casual float64 `json:"casual"`
	Sick   float64 `json:"sick"`
	Earned float64 `json:"earned"`
}

func (b Balance) For(code Code) float64 {
	switch code {
	case CodeCasual:
		return b.Casual
	case CodeSick:
		return b.Sick
	case CodeEarned:
		return b.Earned
	}
	return 0
}
