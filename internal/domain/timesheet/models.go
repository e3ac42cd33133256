package timesheet

const (
	StatusSubmitted = "Submitted"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
)

type Timesheet struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Billable   bool    `json:"billable"`
	Project    string  `json:"project,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	Status     string  `json:"status"`
}
