package dbmodels

type ActionType string

const (
	HistoryTypeCreate       ActionType = "create"
	HistoryTypeUpdate       ActionType = "update"
	HistoryTypeStatusChange ActionType = "status_change"
	HistoryTypeSoftDelete   ActionType = "soft_delete"
	HistoryTypeHardDelete   ActionType = "hard_delete"
	HistoryTypeRestore      ActionType = "restore"
	HistoryTypeReassign     ActionType = "reassign"
	HistoryTypeProvenance   ActionType = "provenance"
)

// EmployeeHistory is the append-only audit trail; every lifecycle mutation
// appends at least one entry.
type EmployeeHistory struct {
	BaseModel
	// EmployeeRef is the internal primary key of the subject employee.
	EmployeeRef string `gorm:"type:varchar(36);index"`
	// EmployeeID is the public identifier, kept so entries survive hard delete.
	EmployeeID string     `gorm:"type:varchar(20);index"`
	ActionType ActionType `gorm:"type:varchar(30)"`
	ActorID    *string
	ActorName  string        `gorm:"type:varchar(255)"`
	Changes    EntityChanges `gorm:"type:jsonb"`
}
