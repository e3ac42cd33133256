package identity

const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// User is a login record. Passwords are stored and compared in plain
// text; that is the documented demo design, not an oversight to fix.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId,omitempty"`
}
