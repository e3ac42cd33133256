package payroll

type Payslip struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	// Month is YYYY-MM.
	Month string `json:"month"`
	// Amount is the net salary for the month.
	Amount      float64 `json:"amount"`
	GeneratedAt string  `json:"generatedAt"`
}

type Breakdown struct {
	Basic      float64 `json:"basic"`
	HRA        float64 `json:"hra"`
	Allowances float64 `json:"allowances"`
	Gross      float64 `json:"gross"`
	Tax        float64 `json:"tax"`
	Net        float64 `json:"net"`
}
