package dbmodels

import (
	"fmt"
	"hr-personnel-backend/models"
	"time"
)

type Employee struct {
	BaseModel
	// EmployeeID is the public org-scoped identifier, e.g. "HC7". Unique across
	// employees and vacant positions of the same org code, never reissued.
	EmployeeID  string `gorm:"type:varchar(20);uniqueIndex"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	MiddleName  string `gorm:"type:varchar(150)"`
	DisplayName string `gorm:"type:varchar(255)"`
	Email       string `gorm:"type:varchar(255)"`
	PhoneNumber string `gorm:"type:varchar(15)"`

	JobTitle       string `gorm:"type:varchar(255)"`
	Grade          string `gorm:"type:varchar(50)"`
	OrgUnitID      *string
	OrgUnit        *OrgUnit
	ManagerID      *string
	Manager        *Employee
	ShowInOrgChart bool

	Status           models.EmployeeStatus   `gorm:"type:varchar(20);index"`
	ContractCategory models.ContractCategory `gorm:"type:varchar(50)"`
	StartDate        *time.Time
	ContractEndDate  *time.Time

	// HiredFromPositionID links back to the vacant position the employee was
	// hired into, if any.
	HiredFromPositionID *string

	// Free-text assignment notes; scrubbed of the display name on soft delete.
	Notes string

	IsDeleted bool `gorm:"index"`
	DeletedOn *time.Time
	DeletedBy string `gorm:"type:varchar(255)"`
}

func (r Employee) GetFullName() string {
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

// IdentifierRef is the bracketed reference that replaces the display name in
// free-text fields after soft delete.
func (r Employee) IdentifierRef() string {
	return fmt.Sprintf("[%s]", r.EmployeeID)
}
