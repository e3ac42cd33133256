package performance

type Evaluation struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	// Quarter is e.g. "Q1 2025". One evaluation exists per employee and
	// quarter; re-evaluating replaces it.
	Quarter  string `json:"quarter"`
	Rating   int    `json:"rating"`
	Comments string `json:"comments,omitempty"`
}
