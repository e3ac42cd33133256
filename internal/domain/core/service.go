// Package core manages the employees, departments and teams collections.
package core

import (
	"ems/internal/domain/identity"
	"ems/internal/storage"
)

type Service struct {
	repo *storage.Repository
	// employeePassword is the demo password stamped on the login record
	// provisioned alongside a new employee.
	employeePassword string
}

func NewService(repo *storage.Repository, employeePassword string) *Service {
	return &Service{repo: repo, employeePassword: employeePassword}
}

func (s *Service) ListEmployees() ([]Employee, error) {
	var employees []Employee
	if err := s.repo.ReadCollection(storage.CollectionEmployees, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *Service) GetEmployee(id string) (Employee, error) {
	employees, err := s.ListEmployees()
	if err != nil {
		return Employee{}, err
	}
	for _, employee := range employees {
		if employee.ID == id {
			return employee, nil
		}
	}
	return Employee{}, ErrEmployeeNotFound
}

// GetEmployeeByEmail resolves the employee record behind a login, the way
// the employee-facing views look themselves up.
func (s *Service) GetEmployeeByEmail(email string) (Employee, error) {
	employees, err := s.ListEmployees()
	if err != nil {
		return Employee{}, err
	}
	for _, employee := range employees {
		if employee.Email == email {
			return employee, nil
		}
	}
	return Employee{}, ErrEmployeeNotFound
}

// CreateEmployee assigns a fresh record id and the next EMP number, then
// provisions a matching Employee-role login with the demo password. The
// login shares the employee's record id.
func (s *Service) CreateEmployee(employee Employee) (Employee, error) {
	employees, err := s.ListEmployees()
	if err != nil {
		return Employee{}, err
	}

	numbers := make([]string, 0, len(employees))
	for _, existing := range employees {
		numbers = append(numbers, existing.EmployeeNumber)
	}

	employee.ID = storage.NewID("emp")
	employee.EmployeeNumber = storage.NextEmployeeNumber(numbers)
	if employee.Status == "" {
		employee.Status = StatusActive
	}

	if err := s.repo.WriteCollection(storage.CollectionEmployees, append(employees, employee)); err != nil {
		return Employee{}, err
	}

	var users []identity.User
	if err := s.repo.ReadCollection(storage.CollectionUsers, &users); err != nil {
		return Employee{}, err
	}
	users = append(users, identity.User{
		ID:         employee.ID,
		Email:      employee.Email,
		Password:   s.employeePassword,
		Role:       identity.RoleEmployee,
		Name:       employee.Name,
		EmployeeID: employee.EmployeeNumber,
	})
	if err := s.repo.WriteCollection(storage.CollectionUsers, users); err != nil {
		return Employee{}, err
	}

	return employee, nil
}

// UpdateEmployee replaces the record in place, keeping id and EMP number.
func (s *Service) UpdateEmployee(id string, updated Employee) (Employee, error) {
	employees, err := s.ListEmployees()
	if err != nil {
		return Employee{}, err
	}
	for i, employee := range employees {
		if employee.ID != id {
			continue
		}
		updated.ID = employee.ID
		updated.EmployeeNumber = employee.EmployeeNumber
		employees[i] = updated
		if err := s.repo.WriteCollection(storage.CollectionEmployees, employees); err != nil {
			return Employee{}, err
		}
		return updated, nil
	}
	return Employee{}, ErrEmployeeNotFound
}

func (s *Service) DeleteEmployee(id string) error {
	employees, err := s.ListEmployees()
	if err != nil {
		return err
	}
	kept := employees[:0]
	found := false
	for _, employee := range employees {
		if employee.ID == id {
			found = true
			continue
		}
		kept = append(kept, employee)
	}
	if !found {
		return ErrEmployeeNotFound
	}
	return s.repo.WriteCollection(storage.CollectionEmployees, kept)
}

func (s *Service) ListDepartments() ([]Department, error) {
	var departments []Department
	if err := s.repo.ReadCollection(storage.CollectionDepartments, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (s *Service) CreateDepartment(department Department) (Department, error) {
	departments, err := s.ListDepartments()
	if err != nil {
		return Department{}, err
	}
	department.ID = storage.NewID("dept")
	department.EmployeeCount = 0
	if err := s.repo.WriteCollection(storage.CollectionDepartments, append(departments, department)); err != nil {
		return Department{}, err
	}
	return department, nil
}

func (s *Service) UpdateDepartment(id string, updated Department) (Department, error) {
	departments, err := s.ListDepartments()
	if err != nil {
		return Department{}, err
	}
	for i, department := range departments {
		if department.ID != id {
			continue
		}
		updated.ID = department.ID
		departments[i] = updated
		if err := s.repo.WriteCollection(storage.CollectionDepartments, departments); err != nil {
			return Department{}, err
		}
		return updated, nil
	}
	return Department{}, ErrDepartmentNotFound
}

func (s *Service) DeleteDepartment(id string) error {
	departments, err := s.ListDepartments()
	if err != nil {
		return err
	}
	kept := departments[:0]
	found := false
	for _, department := range departments {
		if department.ID == id {
			found = true
			continue
		}
		kept = append(kept, department)
	}
	if !found {
		return ErrDepartmentNotFound
	}
	return s.repo.WriteCollection(storage.CollectionDepartments, kept)
}

// RefreshDepartmentCounts recomputes every cached employeeCount from the
// employees collection. Nothing calls this implicitly; moving an employee
// between departments leaves the caches stale until the next refresh.
func (s *Service) RefreshDepartmentCounts() ([]Department, error) {
	departments, err := s.ListDepartments()
	if err != nil {
		return nil, err
	}
	employees, err := s.ListEmployees()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(departments))
	for _, employee := range employees {
		counts[employee.Department]++
	}
	for i := range departments {
		departments[i].EmployeeCount = counts[departments[i].Name]
	}
	if err := s.repo.WriteCollection(storage.CollectionDepartments, departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (s *Service) ListTeams() ([]Team, error) {
	var teams []Team
	if err := s.repo.ReadCollection(storage.CollectionTeams, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *Service) CreateTeam(team Team) (Team, error) {
	teams, err := s.ListTeams()
	if err != nil {
		return Team{}, err
	}
	team.ID = storage.NewID("team")
	team.Members = []string{}
	if err := s.repo.WriteCollection(storage.CollectionTeams, append(teams, team)); err != nil {
		return Team{}, err
	}
	return team, nil
}

func (s *Service) UpdateTeam(id string, updated Team) (Team, error) {
	teams, err := s.ListTeams()
	if err != nil {
		return Team{}, err
	}
	for i, team := range teams {
		if team.ID != id {
			continue
		}
		updated.ID = team.ID
		if updated.Members == nil {
			updated.Members = []string{}
		}
		teams[i] = updated
		if err := s.repo.WriteCollection(storage.CollectionTeams, teams); err != nil {
			return Team{}, err
		}
		return updated, nil
	}
	return Team{}, ErrTeamNotFound
}

func (s *Service) DeleteTeam(id string) error {
	teams, err := s.ListTeams()
	if err != nil {
		return err
	}
	kept := teams[:0]
	found := false
	for _, team := range teams {
		if team.ID == id {
			found = true
			continue
		}
		kept = append(kept, team)
	}
	if !found {
		return ErrTeamNotFound
	}
	return s.repo.WriteCollection(storage.CollectionTeams, kept)
}
