package models

// EmployeeStatus values mirror the employee status column in Postgres.
//
// Auto transitions move PROBATION to ACTIVE on probation completion and any
// status to INACTIVE on contract end (see lib/employee-status). Manual
// overrides may set any status.
type EmployeeStatus string

const (
	EmployeeStatusProbation EmployeeStatus = "PROBATION"
	EmployeeStatusActive    EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive  EmployeeStatus = "INACTIVE"
)

func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusProbation, EmployeeStatusActive, EmployeeStatusInactive:
		return true
	}
	return false
}

// EmployeeStatusInfo is the metadata attached to each named status. Transition
// rules live in the contract configuration registry, not here.
type EmployeeStatusInfo struct {
	CountsTowardHeadcount bool
	ShowInOrgChart        bool
	Color                 string
}

var employeeStatusInfo = map[EmployeeStatus]EmployeeStatusInfo{
	EmployeeStatusProbation: {
		CountsTowardHeadcount: true,
		ShowInOrgChart:        true,
		Color:                 "#f0ad4e",
	},
	EmployeeStatusActive: {
		CountsTowardHeadcount: true,
		ShowInOrgChart:        true,
		Color:                 "#5cb85c",
	},
	EmployeeStatusInactive: {
		CountsTowardHeadcount: false,
		ShowInOrgChart:        false,
		Color:                 "#d9534f",
	},
}

// GetStatusInfo returns the metadata for a status.
// A missing definition is a recoverable configuration error, callers fall back
// to zero metadata and log a warning.
func GetStatusInfo(status EmployeeStatus) (EmployeeStatusInfo, bool) {
	info, ok := employeeStatusInfo[status]
	return info, ok
}
