package dbmodels

type VacantPosition struct {
	BaseModel
	// PositionID lives in the same identifier namespace as Employee.EmployeeID.
	PositionID     string `gorm:"type:varchar(20);uniqueIndex"`
	JobTitle       string `gorm:"type:varchar(255)"`
	Grade          string `gorm:"type:varchar(50)"`
	OrgUnitID      *string
	OrgUnit        *OrgUnit
	ReportsToID    *string
	ReportsTo      *Employee `gorm:"foreignKey:ReportsToID"`
	ShowInOrgChart bool

	IsFilled   bool `gorm:"index"`
	FilledByID *string

	// VacatedByEmployeeID holds the internal primary key (not the public
	// identifier) of the employee whose soft delete created this position.
	// Restore reconciles through it.
	VacatedByEmployeeID *string `gorm:"index"`

	Notes string
}
