package employeestatus

import (
	"hr-personnel-backend/db"
	contractprovider "hr-personnel-backend/lib/contract"
	employeehistoryhandler "hr-personnel-backend/lib/employee-history"
	employeestore "hr-personnel-backend/lib/employee/store"
	"hr-personnel-backend/lib/notification"
	initchecker "hr-personnel-backend/lib/utils/init-checker"
	"hr-personnel-backend/models"
	employeeapimodels "hr-personnel-backend/models/api/employee"
	dbmodels "hr-personnel-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// InitialStatus is invoked once, at creation time.
	InitialStatus(emp dbmodels.Employee) (status models.EmployeeStatus, reason string)
	// Preview is the dry-run projection for an employee by internal id.
	Preview(employeeRef string) (preview employeeapimodels.StatusPreview, err error)
	// ReconcileTx recomputes the required status and, when different, applies
	// it by updating the status column directly. Writing past the normal
	// employee write path is the guard against recursive re-invocation of the
	// post-write hook. tx may be nil outside a transaction.
	ReconcileTx(tx *gorm.DB, emp dbmodels.Employee, actorName string) (changed bool, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:     employeestore.NewInstance(db.DB),
		contracts: contractprovider.Instance,
		history:   employeehistoryhandler.Instance,
		notifier:  notification.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"contracts", instance.contracts,
		"history", instance.history,
		"notifier", instance.notifier,
	)
	Instance = instance
}

type impl struct {
	store     employeestore.Provider
	contracts contractprovider.Provider
	history   employeehistoryhandler.Provider
	notifier  notification.Provider
}

func (i impl) InitialStatus(emp dbmodels.Employee) (models.EmployeeStatus, string) {
	decision, err := i.decide(emp)
	if err != nil {
		log.WithError(err).
			WithField("employee_id", emp.EmployeeID).
			Warn("contract config lookup failed on initial assignment, using probation")
		return models.EmployeeStatusProbation, "initial assignment (config lookup failed)"
	}
	if decision.Status == "" {
		// Nothing derivable yet (no start date, future start, held category):
		// probation is the conservative initial assignment.
		return models.EmployeeStatusProbation, "initial assignment: " + decision.Reason
	}
	return decision.Status, decision.Reason
}

func (i impl) Preview(employeeRef string) (employeeapimodels.StatusPreview, error) {
	rec, err := i.store.GetByID(employeeRef)
	if err != nil {
		return employeeapimodels.StatusPreview{}, err
	}
	if rec == nil {
		return employeeapimodels.StatusPreview{}, errors.New("employee not found")
	}
	decision, err := i.decide(*rec)
	if err != nil {
		return employeeapimodels.StatusPreview{}, err
	}
	return employeeapimodels.StatusPreview{
		Current:         rec.Status,
		WouldBeRequired: decision.Required(rec.Status),
		NeedsUpdate:     decision.Changed(rec.Status),
		Reason:          decision.Reason,
	}, nil
}

func (i impl) ReconcileTx(tx *gorm.DB, emp dbmodels.Employee, actorName string) (changed bool, err error) {
	decision, err := i.decide(emp)
	if err != nil {
		return false, err
	}
	if !decision.Changed(emp.Status) {
		return false, nil
	}
	store := i.store
	if tx != nil {
		store = i.store.WithTx(tx)
	}
	updMap := map[string]interface{}{
		"status": decision.Status,
	}
	// org chart visibility follows the status, same as manual overrides
	if info, ok := models.GetStatusInfo(decision.Status); ok {
		updMap["show_in_org_chart"] = info.ShowInOrgChart
	}
	if err = store.Update(emp.ID, updMap); err != nil {
		return false, errors.Wrap(err, "status update failed")
	}
	i.history.Save(emp.ID, emp.EmployeeID, actorName, dbmodels.HistoryTypeStatusChange, dbmodels.EntityChanges{
		Description: decision.Reason,
		Data: []dbmodels.FieldChanges{
			{Field: "status", OldValue: emp.Status, NewValue: decision.Status},
		},
	})
	i.notifier.StatusChanged(emp, emp.Status, decision.Status, decision.Reason)
	return true, nil
}

func (i impl) decide(emp dbmodels.Employee) (Decision, error) {
	cfg, err := i.contracts.Get(emp.ContractCategory)
	if err != nil {
		return Decision{}, errors.Wrap(err, "contract config lookup failed")
	}
	decision := RequiredStatus(emp, cfg, time.Now())
	if decision.MissingConfig {
		log.WithField("employee_id", emp.EmployeeID).
			WithField("contract_category", emp.ContractCategory).
			Warn("contract config missing, default status policy applied")
	}
	return decision, nil
}
