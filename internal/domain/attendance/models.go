package attendance

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

type Record struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	// Date is an ISO day, YYYY-MM-DD. At most one record exists per
	// employee and day.
	Date     string  `json:"date"`
	ClockIn  string  `json:"clockIn,omitempty"`
	ClockOut string  `json:"clockOut,omitempty"`
	Status   string  `json:"status"`
	Hours    float64 `json:"hours"`
}
