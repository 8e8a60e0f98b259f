package employeearchive

import (
	"encoding/json"
	"hr-personnel-backend/models"
	dbmodels "hr-personnel-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// BuildSnapshot captures as complete a snapshot as possible, degrading step by
// step on serialization failure instead of skipping the archive: complete
// (employee + history) -> partial (employee only) -> basic (key fields) ->
// minimal (identifiers only). The archive is always produced.
func BuildSnapshot(emp dbmodels.Employee, history []dbmodels.EmployeeHistory) dbmodels.ArchiveSnapshot {
	logger := log.
		WithField("employee_id", emp.EmployeeID).
		WithField("rec_id", emp.ID)

	complete := dbmodels.ArchiveSnapshot{
		Quality:  models.ArchiveQualityComplete,
		Employee: &emp,
		History:  history,
	}
	if _, err := json.Marshal(complete); err == nil {
		return complete
	} else {
		logger.WithError(err).Warn("complete archive snapshot failed, degrading to partial")
	}

	partial := dbmodels.ArchiveSnapshot{
		Quality:  models.ArchiveQualityPartial,
		Employee: &emp,
	}
	if _, err := json.Marshal(partial); err == nil {
		return partial
	} else {
		logger.WithError(err).Warn("partial archive snapshot failed, degrading to basic")
	}

	basic := dbmodels.ArchiveSnapshot{
		Quality: models.ArchiveQualityBasic,
		Basic: &dbmodels.ArchiveBasicData{
			EmployeeID:  emp.EmployeeID,
			DisplayName: emp.GetFullName(),
			JobTitle:    emp.JobTitle,
			StartDate:   emp.StartDate,
			EndDate:     emp.ContractEndDate,
		},
	}
	if emp.OrgUnitID != nil {
		basic.Basic.OrgUnitID = *emp.OrgUnitID
	}
	if _, err := json.Marshal(basic); err == nil {
		return basic
	} else {
		logger.WithError(err).Warn("basic archive snapshot failed, degrading to minimal")
	}

	return dbmodels.ArchiveSnapshot{
		Quality: models.ArchiveQualityMinimal,
		Minimal: &dbmodels.ArchiveMinimalData{
			EmployeeID:  emp.EmployeeID,
			EmployeeRef: emp.ID,
		},
	}
}
