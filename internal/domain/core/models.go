package core

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusOnLeave  = "On Leave"
)

type Salary struct {
	CTC        float64 `json:"ctc"`
	Basic      float64 `json:"basic"`
	HRA        float64 `json:"hra"`
	Allowances float64 `json:"allowances"`
}

type Employee struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employeeId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ContactNo      string `json:"contactNo,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Role           string `json:"role,omitempty"`
	Department     string `json:"department"`
	Designation    string `json:"designation,omitempty"`
	JoiningDate    string `json:"joiningDate,omitempty"`
	WorkLocation   string `json:"workLocation,omitempty"`
	// Manager is a display name, not a record id. A manager rename
	// silently detaches reports; kept as-is to match the stored shape.
	Manager string `json:"manager"`
	Status  string `json:"status"`
	Salary  Salary `json:"salary"`
}

type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Head string `json:"head"`
	// EmployeeCount is a cached derived value, refreshed explicitly. It
	// is not authoritative and drifts when employees move departments.
	EmployeeCount int `json:"employeeCount"`
}

type Team struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Lead       string   `json:"lead"`
	// Members holds employee record ids. Membership is not validated
	// against the employees collection.
	Members []string `json:"members"`
}
