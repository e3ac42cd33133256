package identity

import (
	"errors"
	"testing"

	"ems/internal/platform/session"
	"ems/internal/storage"
)

func newService(t *testing.T) *Service {
	t.Helper()
	repo := storage.NewRepository(session.NewMemoryStore())
	users := []User{
		{ID: "admin1", Email: "admin@ems.com", Password: "demo_admin", Role: RoleAdmin, Name: "Admin User"},
		{ID: "emp1", Email: "priya.sharma@ems.com", Password: "demo_emp", Role: RoleEmployee, Name: "Priya Sharma", EmployeeID: "EMP001"},
	}
	if err := repo.WriteCollection(storage.CollectionUsers, users); err != nil {
		t.Fatalf("seed users: %v", err)
	}
	return NewService(repo)
}

func TestLogin(t *testing.T) {
	svc := newService(t)

	user, err := svc.Login("admin@ems.com", "demo_admin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "admin1" || user.Role != RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.Password != "" {
		t.Fatal("password must be stripped from the returned user")
	}

	current, ok, err := svc.CurrentUser()
	if err != nil || !ok {
		t.Fatalf("expected current user, got ok=%v err=%v", ok, err)
	}
	if current.ID != "admin1" {
		t.Fatalf("unexpected current user: %+v", current)
	}
	if current.Password != "" {
		t.Fatal("stored pointer must not carry the password")
	}
}

func TestLoginRejections(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@ems.com", "nope"},
		{"unknown email", "ghost@ems.com", "demo_admin"},
		{"email case differs", "Admin@ems.com", "demo_admin"},
		{"password case differs", "admin@ems.com", "DEMO_ADMIN"},
		{"empty credentials", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Login(tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}

	if _, ok, _ := svc.CurrentUser(); ok {
		t.Fatal("failed login must not set the current user")
	}
}

func TestLoginReplacesCurrentUser(t *testing.T) {
	svc := newService(t)

	if _, err := svc.Login("admin@ems.com", "demo_admin"); err != nil {
		t.Fatalf("first login: %v", err)
	}
	if _, err := svc.Login("priya.sharma@ems.com", "demo_emp"); err != nil {
		t.Fatalf("second login: %v", err)
	}

	current, _, _ := svc.CurrentUser()
	if current.ID != "emp1" {
		t.Fatalf("second login should replace the pointer, got %+v", current)
	}
}

func TestLogout(t *testing.T) {
	svc := newService(t)
	if _, err := svc.Login("admin@ems.com", "demo_admin"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := svc.CurrentUser(); ok {
		t.Fatal("expected no current user after logout")
	}

	// Logout while logged out is a no-op.
	if err := svc.Logout(); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestAuthorize(t *testing.T) {
	admin := User{Role: RoleAdmin}
	employee := User{Role: RoleEmployee}

	if !Authorize(admin, RoleAdmin) {
		t.Fatal("admin should pass the admin gate")
	}
	if Authorize(admin, RoleEmployee) {
		t.Fatal("roles are exact, admin must not pass the employee gate")
	}
	if Authorize(employee, RoleAdmin) {
		t.Fatal("employee must not pass the admin gate")
	}
	if Authorize(User{Role: "admin"}, RoleAdmin) {
		t.Fatal("role comparison is case-sensitive")
	}
}

func TestHomePath(t *testing.T) {
	if got := HomePath(RoleAdmin); got != "/admin/dashboard" {
		t.Fatalf("admin home = %q", got)
	}
	if got := HomePath(RoleEmployee); got != "/employee/dashboard" {
		t.Fatalf("employee home = %q", got)
	}
}
