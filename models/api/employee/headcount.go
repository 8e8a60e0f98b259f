package employeeapimodels

import (
	"hr-personnel-backend/models"
)

// HeadcountRow is the uniform shape of the combined listing: active employees
// merged with headcount-eligible vacant positions.
type HeadcountRow struct {
	Identifier  string                `json:"identifier"`
	Name        string                `json:"name"`
	JobTitle    string                `json:"job_title"`
	OrgUnitID   string                `json:"org_unit_id,omitempty"`
	OrgUnitName string                `json:"org_unit_name,omitempty"`
	Grade       string                `json:"grade"`
	Status      models.EmployeeStatus `json:"status,omitempty"`
	IsVacancy   bool                  `json:"is_vacancy"`
}
