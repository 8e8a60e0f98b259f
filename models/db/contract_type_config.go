package dbmodels

import (
	"hr-personnel-backend/models"
)

// ContractTypeConfig maps a contract category to its probation length and
// auto-transition policy. Seeded at migration, treated as read-only at runtime.
type ContractTypeConfig struct {
	BaseModel
	Category                  models.ContractCategory `gorm:"type:varchar(50);uniqueIndex"`
	ProbationDays             int
	EnableAutoTransitions     bool
	TransitionToInactiveOnEnd bool
	NotifyDaysBeforeEnd       int
}
