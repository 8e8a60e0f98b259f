package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"hr-personnel-backend/models"
	"time"
)

// EmployeeArchive is an append-only point-in-time snapshot of a removed
// employee. StillExists distinguishes soft deletion (row kept) from hard
// deletion (row purged).
type EmployeeArchive struct {
	BaseModel
	// EmployeeID is the public identifier of the archived employee.
	EmployeeID string `gorm:"type:varchar(20);index"`
	// EmployeeRef is the internal primary key of the archived row.
	EmployeeRef  string              `gorm:"type:varchar(36);index"`
	DeletionType models.DeletionType `gorm:"type:varchar(10)"`
	StillExists  bool                `gorm:"index"`
	Snapshot     ArchiveSnapshot     `gorm:"type:jsonb"`
}

// ArchiveSnapshot is a tagged variant: Quality names which payload field is
// populated, making it structurally explicit what was and wasn't captured.
type ArchiveSnapshot struct {
	Quality  models.ArchiveQuality `json:"quality"`
	Employee *Employee             `json:"employee,omitempty"` // complete and partial
	History  []EmployeeHistory     `json:"history,omitempty"`  // complete only
	Basic    *ArchiveBasicData     `json:"basic,omitempty"`
	Minimal  *ArchiveMinimalData   `json:"minimal,omitempty"`
}

type ArchiveBasicData struct {
	EmployeeID  string     `json:"employee_id"`
	DisplayName string     `json:"display_name"`
	JobTitle    string     `json:"job_title"`
	OrgUnitID   string     `json:"org_unit_id,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type ArchiveMinimalData struct {
	EmployeeID  string `json:"employee_id"`
	EmployeeRef string `json:"employee_ref"`
}

func (j ArchiveSnapshot) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ArchiveSnapshot) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
