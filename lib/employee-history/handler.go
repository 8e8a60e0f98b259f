package employeehistoryhandler

import (
	"hr-personnel-backend/db"
	employeehistorystore "hr-personnel-backend/lib/employee-history/store"
	"hr-personnel-backend/lib/events"
	initchecker "hr-personnel-backend/lib/utils/init-checker"
	apimodels "hr-personnel-backend/models/api"
	dbmodels "hr-personnel-backend/models/db"

	log "github.com/sirupsen/logrus"
)

const systemActor = "System"

type Provider interface {
	List(employeeRef string, filter apimodels.Pagination) (list []dbmodels.EmployeeHistory, rowCount int64, err error)
	// Save appends an audit entry outside any transaction. Failures are logged
	// and never propagated; the audit sink must not block a state change.
	Save(employeeRef, employeeID, actorName string, action dbmodels.ActionType, changes dbmodels.EntityChanges)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: employeehistorystore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance

	// The history subsystem keeps its own free text consistent with removals:
	// once an employee is removed, descriptions referencing the display name
	// are rewritten to the bracketed identifier reference.
	events.SubscribeEmployeeRemoved(func(e events.EmployeeRemoved) {
		count, err := instance.store.ScrubDescriptions(e.DisplayName, e.Replacement)
		if err != nil {
			log.WithError(err).
				WithField("employee_id", e.Identifier).
				Error("history description scrub failed")
			return
		}
		if count > 0 {
			log.WithField("employee_id", e.Identifier).
				WithField("row_count", count).
				Info("history descriptions scrubbed")
		}
	})
}

type impl struct {
	store employeehistorystore.Provider
}

func (i impl) List(employeeRef string, filter apimodels.Pagination) ([]dbmodels.EmployeeHistory, int64, error) {
	rowCount, err := i.store.ListCount(employeeRef)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(employeeRef, filter)
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Save(employeeRef, employeeID, actorName string, action dbmodels.ActionType, changes dbmodels.EntityChanges) {
	logger := log.WithField("employee_ref", employeeRef).
		WithField("employee_id", employeeID).
		WithField("action", action).
		WithField("description", changes.Description)
	if actorName == "" {
		actorName = systemActor
	}
	rec := dbmodels.EmployeeHistory{
		EmployeeRef: employeeRef,
		EmployeeID:  employeeID,
		ActionType:  action,
		ActorName:   actorName,
		Changes:     changes,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("employee history save failed")
	}
}
