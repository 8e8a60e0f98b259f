package employeeapimodels

import (
	"hr-personnel-backend/models"
	apimodels "hr-personnel-backend/models/api"
	dbmodels "hr-personnel-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type EmployeeData struct {
	FirstName        string                  `json:"first_name"`
	LastName         string                  `json:"last_name"`
	MiddleName       string                  `json:"middle_name"`
	Email            string                  `json:"email"`
	PhoneNumber      string                  `json:"phone_number"`
	JobTitle         string                  `json:"job_title"`
	Grade            string                  `json:"grade"`
	OrgUnitID        string                  `json:"org_unit_id"`
	ManagerID        string                  `json:"manager_id"`
	ContractCategory models.ContractCategory `json:"contract_category"`
	StartDate        *time.Time              `json:"start_date"`
	ContractEndDate  *time.Time              `json:"contract_end_date"`
	HiredFromID      string                  `json:"hired_from_id"` // vacant position filled by this hire
	Notes            string                  `json:"notes"`
}

func (r EmployeeData) Validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("employee name is not set")
	}
	if r.OrgUnitID == "" {
		return errors.New("org unit is not set")
	}
	if r.ContractCategory == "" {
		return errors.New("contract category is not set")
	}
	return nil
}

type EmployeeView struct {
	ID               string                  `json:"id"`
	EmployeeID       string                  `json:"employee_id"`
	DisplayName      string                  `json:"display_name"`
	Email            string                  `json:"email"`
	PhoneNumber      string                  `json:"phone_number"`
	JobTitle         string                  `json:"job_title"`
	Grade            string                  `json:"grade"`
	OrgUnitID        string                  `json:"org_unit_id,omitempty"`
	OrgUnitName      string                  `json:"org_unit_name,omitempty"`
	ManagerID        string                  `json:"manager_id,omitempty"`
	Status           models.EmployeeStatus   `json:"status"`
	StatusColor      string                  `json:"status_color,omitempty"`
	ContractCategory models.ContractCategory `json:"contract_category"`
	StartDate        *time.Time              `json:"start_date,omitempty"`
	ContractEndDate  *time.Time              `json:"contract_end_date,omitempty"`
	IsDeleted        bool                    `json:"is_deleted"`
	DeletedOn        *time.Time              `json:"deleted_on,omitempty"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		DisplayName:      rec.GetFullName(),
		Email:            rec.Email,
		PhoneNumber:      rec.PhoneNumber,
		JobTitle:         rec.JobTitle,
		Grade:            rec.Grade,
		Status:           rec.Status,
		ContractCategory: rec.ContractCategory,
		StartDate:        rec.StartDate,
		ContractEndDate:  rec.ContractEndDate,
		IsDeleted:        rec.IsDeleted,
		DeletedOn:        rec.DeletedOn,
	}
	if rec.OrgUnitID != nil {
		view.OrgUnitID = *rec.OrgUnitID
	}
	if rec.OrgUnit != nil {
		view.OrgUnitName = rec.OrgUnit.Name
	}
	if rec.ManagerID != nil {
		view.ManagerID = *rec.ManagerID
	}
	if info, ok := models.GetStatusInfo(rec.Status); ok {
		view.StatusColor = info.Color
	}
	return view
}

type EmployeeFilter struct {
	apimodels.Pagination
	Search         string                `json:"search"`
	OrgUnitID      string                `json:"org_unit_id"`
	Statuses       []string              `json:"statuses"`
	IncludeDeleted bool                  `json:"include_deleted"`
	Status         models.EmployeeStatus `json:"status"`
}
