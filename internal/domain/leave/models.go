package leave

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Leave struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	// Days is the inclusive day count between FromDate and ToDate.
	Days      int    `json:"days"`
	Reason    string `json:"reason,omitempty"`
	Status    string `json:"status"`
	AppliedAt string `json:"appliedAt,omitempty"`
}

type Holiday struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}
