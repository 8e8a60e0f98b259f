package positionapimodels

import (
	apimodels "hr-personnel-backend/models/api"
	dbmodels "hr-personnel-backend/models/db"

	"github.com/pkg/errors"
)

type PositionData struct {
	JobTitle       string `json:"job_title"`
	Grade          string `json:"grade"`
	OrgUnitID      string `json:"org_unit_id"`
	ReportsToID    string `json:"reports_to_id"`
	ShowInOrgChart bool   `json:"show_in_org_chart"`
	Notes          string `json:"notes"`
}

func (r PositionData) Validate() error {
	if r.JobTitle == "" {
		return errors.New("job title is not set")
	}
	if r.OrgUnitID == "" {
		return errors.New("org unit is not set")
	}
	return nil
}

type PositionFill struct {
	EmployeeID string `json:"employee_id"` // internal id of the hired employee
}

func (r PositionFill) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("employee is not set")
	}
	return nil
}

type PositionView struct {
	ID                  string `json:"id"`
	PositionID          string `json:"position_id"`
	JobTitle            string `json:"job_title"`
	Grade               string `json:"grade"`
	OrgUnitID           string `json:"org_unit_id,omitempty"`
	OrgUnitName         string `json:"org_unit_name,omitempty"`
	ReportsToID         string `json:"reports_to_id,omitempty"`
	IsFilled            bool   `json:"is_filled"`
	FilledByID          string `json:"filled_by_id,omitempty"`
	VacatedByEmployeeID string `json:"vacated_by_employee_id,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

func PositionConvert(rec dbmodels.VacantPosition) PositionView {
	view := PositionView{
		ID:         rec.ID,
		PositionID: rec.PositionID,
		JobTitle:   rec.JobTitle,
		Grade:      rec.Grade,
		IsFilled:   rec.IsFilled,
		Notes:      rec.Notes,
	}
	if rec.OrgUnitID != nil {
		view.OrgUnitID = *rec.OrgUnitID
	}
	if rec.OrgUnit != nil {
		view.OrgUnitName = rec.OrgUnit.Name
	}
	if rec.ReportsToID != nil {
		view.ReportsToID = *rec.ReportsToID
	}
	if rec.FilledByID != nil {
		view.FilledByID = *rec.FilledByID
	}
	if rec.VacatedByEmployeeID != nil {
		view.VacatedByEmployeeID = *rec.VacatedByEmployeeID
	}
	return view
}

type PositionFilter struct {
	apimodels.Pagination
	OrgUnitID  string `json:"org_unit_id"`
	OnlyOpen   bool   `json:"only_open"`
	OnlyFilled bool   `json:"only_filled"`
}
