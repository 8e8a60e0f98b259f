package employeeapimodels

import (
	"hr-personnel-backend/models"

	"github.com/pkg/errors"
)

var errInvalidStatus = errors.New("unknown employee status")

// StatusPreview is the dry-run projection shown before a forced status update.
type StatusPreview struct {
	Current         models.EmployeeStatus `json:"current"`
	WouldBeRequired models.EmployeeStatus `json:"would_be_required"`
	NeedsUpdate     bool                  `json:"needs_update"`
	Reason          string                `json:"reason"`
}

type StatusOverride struct {
	Status models.EmployeeStatus `json:"status"`
}

func (r StatusOverride) Validate() error {
	if !r.Status.IsValid() {
		return errInvalidStatus
	}
	return nil
}
