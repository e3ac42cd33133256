// Package seed populates the demo collections exactly once per session.
// Seeding is a two-state machine, Unseeded -> Seeded, with the sentinel
// key as the persisted state; the only allowed transition is Run from
// Unseeded. Repeated calls after that are no-ops and never clobber data
// the user has entered since.
package seed

import (
	"fmt"
	"time"

	"ems/internal/domain/announcements"
	"ems/internal/domain/core"
	"ems/internal/domain/identity"
	"ems/internal/domain/leave"
	"ems/internal/storage"
)

const sentinelKey = storage.KeyPrefix + "initialized"

type State string

const (
	StateUnseeded State = "unseeded"
	StateSeeded   State = "seeded"
)

type Seeder struct {
	repo             *storage.Repository
	adminEmail       string
	adminPassword    string
	employeePassword string
}

func New(repo *storage.Repository, adminEmail, adminPassword, employeePassword string) *Seeder {
	return &Seeder{
		repo:             repo,
		adminEmail:       adminEmail,
		adminPassword:    adminPassword,
		employeePassword: employeePassword,
	}
}

func (s *Seeder) State() (State, error) {
	_, ok, err := s.repo.Store().Get(sentinelKey)
	if err != nil {
		return StateUnseeded, err
	}
	if ok {
		return StateSeeded, nil
	}
	return StateUnseeded, nil
}

// SeedIfNeeded runs the Unseeded -> Seeded transition: it writes every
// default collection, the empty remainder, and finally the sentinel. From
// Seeded it does nothing.
func (s *Seeder) SeedIfNeeded() error {
	state, err := s.State()
	if err != nil {
		return err
	}
	if state == StateSeeded {
		return nil
	}

	writes := []struct {
		name    string
		records any
	}{
		{storage.CollectionUsers, s.defaultUsers()},
		{storage.CollectionEmployees, defaultEmployees()},
		{storage.CollectionDepartments, defaultDepartments()},
		{storage.CollectionTeams, defaultTeams()},
		{storage.CollectionAnnouncements, defaultAnnouncements()},
		{storage.CollectionHolidays, defaultHolidays()},
		{storage.CollectionAttendance, []any{}},
		{storage.CollectionTimesheets, []any{}},
		{storage.CollectionLeaves, []any{}},
		{storage.CollectionPayslips, []any{}},
		{storage.CollectionPerformance, []any{}},
	}
	for _, write := range writes {
		if err := s.repo.WriteCollection(write.name, write.records); err != nil {
			return fmt.Errorf("seed %s: %w", write.name, err)
		}
	}

	return s.repo.Store().Set(sentinelKey, []byte("true"))
}

func (s *Seeder) defaultUsers() []identity.User {
	return []identity.User{
		{ID: "admin1", Email: s.adminEmail, Password: s.adminPassword, Role: identity.RoleAdmin, Name: "Admin User"},
		{ID: "emp1", Email: "priya.sharma@ems.com", Password: s.employeePassword, Role: identity.RoleEmployee, Name: "Priya Sharma", EmployeeID: "EMP001"},
		{ID: "emp2", Email: "anjali.patel@ems.com", Password: s.employeePassword, Role: identity.RoleEmployee, Name: "Anjali Patel", EmployeeID: "EMP002"},
		{ID: "emp3", Email: "kavya.reddy@ems.com", Password: s.employeePassword, Role: identity.RoleEmployee, Name: "Kavya Reddy", EmployeeID: "EMP003"},
		{ID: "emp4", Email: "meera.singh@ems.com", Password: s.employeePassword, Role: identity.RoleEmployee, Name: "Meera Singh", EmployeeID: "EMP004"},
		{ID: "emp5", Email: "divya.kumar@ems.com", Password: s.employeePassword, Role: identity.RoleEmployee, Name: "Divya Kumar", EmployeeID: "EMP005"},
		{ID: "emp6", Email: "sneha.iyer@ems.com", Password: s.employeePassword, Role: identity.RoleEmployee, Name: "Sneha Iyer", EmployeeID: "EMP006"},
	}
}

func defaultEmployees() []core.Employee {
	return []core.Employee{
		{
			ID: "emp1", EmployeeNumber: "EMP001", Name: "Priya Sharma", Email: "priya@ems.com",
			ContactNo: "+91 9876543210", Gender: "Female", Role: identity.RoleEmployee,
			Department: "Engineering", Designation: "Senior Software Engineer",
			JoiningDate: "2023-01-15", WorkLocation: "Bangalore", Manager: "Rekha Menon",
			Status: core.StatusActive,
			Salary: core.Salary{CTC: 95000, Basic: 47500, HRA: 23750, Allowances: 23750},
		},
		{
			ID: "emp2", EmployeeNumber: "EMP002", Name: "Anjali Patel", Email: "anjali.patel@ems.com",
			ContactNo: "+91 9876543211", Gender: "Female", Role: identity.RoleEmployee,
			Department: "Marketing", Designation: "Marketing Manager",
			JoiningDate: "2022-06-10", WorkLocation: "Mumbai", Manager: "Sunita Desai",
			Status: core.StatusActive,
			Salary: core.Salary{CTC: 105000, Basic: 52500, HRA: 26250, Allowances: 26250},
		},
		{
			ID: "emp3", EmployeeNumber: "EMP003", Name: "Kavya Reddy", Email: "kavya.reddy@ems.com",
			ContactNo: "+91 9876543212", Gender: "Female", Role: identity.RoleEmployee,
			Department: "HR", Designation: "HR Manager",
			JoiningDate: "2022-03-20", WorkLocation: "Hyderabad", Manager: "Lakshmi Nair",
			Status: core.StatusActive,
			Salary: core.Salary{CTC: 88000, Basic: 44000, HRA: 22000, Allowances: 22000},
		},
		{
			ID: "emp4", EmployeeNumber: "EMP004", Name: "Meera Singh", Email: "meera.singh@ems.com",
			ContactNo: "+91 9876543213", Gender: "Female", Role: identity.RoleEmployee,
			Department: "Engineering", Designation: "Frontend Developer",
			JoiningDate: "2023-05-12", WorkLocation: "Pune", Manager: "Rekha Menon",
			Status: core.StatusActive,
			Salary: core.Salary{CTC: 82000, Basic: 41000, HRA: 20500, Allowances: 20500},
		},
		{
			ID: "emp5", EmployeeNumber: "EMP005", Name: "Divya Kumar", Email: "divya.kumar@ems.com",
			ContactNo: "+91 9876543214", Gender: "Female", Role: identity.RoleEmployee,
			Department: "Sales", Designation: "Sales Executive",
			JoiningDate: "2023-08-01", WorkLocation: "Delhi", Manager: "Pooja Gupta",
			Status: core.StatusActive,
			Salary: core.Salary{CTC: 75000, Basic: 37500, HRA: 18750, Allowances: 18750},
		},
		{
			ID: "emp6", EmployeeNumber: "EMP006", Name: "Sneha Iyer", Email: "sneha.iyer@ems.com",
			ContactNo: "+91 9876543215", Gender: "Female", Role: identity.RoleEmployee,
			Department: "Engineering", Designation: "Backend Developer",
			JoiningDate: "2023-02-28", WorkLocation: "Chennai", Manager: "Rekha Menon",
			Status: core.StatusActive,
			Salary: core.Salary{CTC: 90000, Basic: 45000, HRA: 22500, Allowances: 22500},
		},
	}
}

func defaultDepartments() []core.Department {
	return []core.Department{
		{ID: "dept1", Name: "Engineering", Head: "Rekha Menon", EmployeeCount: 3},
		{ID: "dept2", Name: "Marketing", Head: "Sunita Desai", EmployeeCount: 1},
		{ID: "dept3", Name: "HR", Head: "Lakshmi Nair", EmployeeCount: 1},
		{ID: "dept4", Name: "Sales", Head: "Pooja Gupta", EmployeeCount: 1},
	}
}

func defaultTeams() []core.Team {
	return []core.Team{
		{ID: "team1", Name: "Frontend Team", Department: "Engineering", Lead: "Priya Sharma", Members: []string{"emp1", "emp4"}},
		{ID: "team2", Name: "Backend Team", Department: "Engineering", Lead: "Sneha Iyer", Members: []string{"emp6"}},
		{ID: "team3", Name: "Digital Marketing", Department: "Marketing", Lead: "Anjali Patel", Members: []string{"emp2"}},
		{ID: "team4", Name: "HR Team", Department: "HR", Lead: "Kavya Reddy", Members: []string{"emp3"}},
		{ID: "team5", Name: "Sales Team", Department: "Sales", Lead: "Divya Kumar", Members: []string{"emp5"}},
	}
}

func defaultAnnouncements() []announcements.Announcement {
	now := time.Now().UTC().Format(time.RFC3339)
	return []announcements.Announcement{
		{
			ID:        "ann1",
			Title:     "Company Holiday - New Year",
			Content:   "Office will be closed on January 1st for New Year celebration.",
			Type:      announcements.PriorityHigh,
			ValidFrom: "2024-01-01",
			ValidTo:   "2024-01-01",
			CreatedBy: "admin1",
			CreatedAt: now,
		},
		{
			ID:        "ann2",
			Title:     "Team Building Event",
			Content:   "Join us for the annual team building event on January 15th.",
			Type:      announcements.PriorityMedium,
			ValidFrom: "2024-01-10",
			ValidTo:   "2024-01-15",
			CreatedBy: "admin1",
			CreatedAt: now,
		},
	}
}

func defaultHolidays() []leave.Holiday {
	return []leave.Holiday{
		{ID: "hol1", Name: "New Year", Date: "2024-01-01", Type: "National"},
		{ID: "hol2", Name: "Independence Day", Date: "2024-07-04", Type: "National"},
		{ID: "hol3", Name: "Christmas", Date: "2024-12-25", Type: "National"},
	}
}
