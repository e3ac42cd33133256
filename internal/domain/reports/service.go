// Package reports covers the admin settings surface: organization info,
// whole-dataset backup and restore, and the employee roster export.
package reports

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/xuri/excelize/v2"

	"ems/internal/domain/core"
	"ems/internal/storage"
)

const orgInfoKey = storage.KeyPrefix + "orgInfo"

type OrgInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// backupCollections mirrors the set the settings screen exports. Users,
// payslips and holidays are deliberately absent from backups.
var backupCollections = []string{
	storage.CollectionEmployees,
	storage.CollectionDepartments,
	storage.CollectionTeams,
	storage.CollectionAttendance,
	storage.CollectionTimesheets,
	storage.CollectionLeaves,
	storage.CollectionAnnouncements,
	storage.CollectionPerformance,
}

type Service struct {
	repo *storage.Repository
	core *core.Service
}

func NewService(repo *storage.Repository, coreSvc *core.Service) *Service {
	return &Service{repo: repo, core: coreSvc}
}

func (s *Service) OrgInfo() (OrgInfo, error) {
	raw, ok, err := s.repo.Store().Get(orgInfoKey)
	if err != nil {
		return OrgInfo{}, err
	}
	if !ok {
		return OrgInfo{
			Name:    "Employee Management System",
			Address: "123 Business Street",
			Phone:   "+1 234 567 8900",
			Email:   "contact@ems.com",
		}, nil
	}
	var info OrgInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return OrgInfo{}, fmt.Errorf("org info: %w: %v", storage.ErrCorrupt, err)
	}
	return info, nil
}

func (s *Service) SaveOrgInfo(info OrgInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return s.repo.Store().Set(orgInfoKey, raw)
}

// ExportBackup bundles every backed-up collection into one JSON document
// keyed by collection name.
func (s *Service) ExportBackup() (map[string]json.RawMessage, error) {
	backup := make(map[string]json.RawMessage, len(backupCollections))
	for _, name := range backupCollections {
		var records []json.RawMessage
		if err := s.repo.ReadCollection(name, &records); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(records)
		if err != nil {
			return nil, err
		}
		backup[name] = raw
	}
	return backup, nil
}

// ImportBackup overwrites each named collection with the provided records,
// matching the restore screen: keys present in the file win wholesale,
// keys absent are left untouched.
func (s *Service) ImportBackup(backup map[string]json.RawMessage) error {
	for name, raw := range backup {
		var records []json.RawMessage
		if err := json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("backup collection %s: %w", name, err)
		}
		if err := s.repo.WriteCollection(name, records); err != nil {
			return err
		}
	}
	return nil
}

// RosterXLSX renders the employee roster as a spreadsheet, one row per
// employee.
func (s *Service) RosterXLSX() ([]byte, error) {
	employees, err := s.core.ListEmployees()
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	const sheet = "Employees"
	index, err := file.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Employee ID", "Name", "Email", "Department", "Designation", "Manager", "Status", "CTC"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, employee := range employees {
		values := []any{
			employee.EmployeeNumber,
			employee.Name,
			employee.Email,
			employee.Department,
			employee.Designation,
			employee.Manager,
			employee.Status,
			employee.Salary.CTC,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
