package employeehandler

import (
	"context"
	"fmt"
	"hr-personnel-backend/db"
	orgunitprovider "hr-personnel-backend/lib/dicts/orgunit"
	archivestore "hr-personnel-backend/lib/employee-archive/store"
	employeehistorystore "hr-personnel-backend/lib/employee-history/store"
	employeestatus "hr-personnel-backend/lib/employee-status"
	employeestore "hr-personnel-backend/lib/employee/store"
	"hr-personnel-backend/lib/events"
	filestorage "hr-personnel-backend/lib/file-storage"
	"hr-personnel-backend/lib/identifier"
	"hr-personnel-backend/lib/notification"
	initchecker "hr-personnel-backend/lib/utils/init-checker"
	positionstore "hr-personnel-backend/lib/vacant-position/store"
	"hr-personnel-backend/models"
	employeeapimodels "hr-personnel-backend/models/api/employee"
	dbmodels "hr-personnel-backend/models/db"
	"sort"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(ctx context.Context, data employeeapimodels.EmployeeData, actorName string) (id string, err error)
	GetByID(id string) (item employeeapimodels.EmployeeView, err error)
	Update(id string, data employeeapimodels.EmployeeData, actorName string) error
	List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error)
	// OverrideStatus sets the status manually, bypassing the contract rules.
	OverrideStatus(id string, request employeeapimodels.StatusOverride, actorName string) error
	// StatusPreview is a dry run: what the contract rules would set, applied
	// nowhere.
	StatusPreview(id string) (preview employeeapimodels.StatusPreview, err error)
	// ForceStatusUpdate applies the contract rules immediately instead of
	// waiting for the periodic sweep.
	ForceStatusUpdate(id string, actorName string) (changed bool, err error)
	// Headcount merges active employees with open vacant positions into one
	// listing ordered by identifier.
	Headcount() (list []employeeapimodels.HeadcountRow, err error)
	// Archives lists the archive snapshots recorded under a public identifier,
	// newest first. Keyed by identifier so it also answers for hard-deleted
	// employees whose row is gone.
	Archives(employeeID string) (list []dbmodels.EmployeeArchive, err error)
	SoftDelete(ctx context.Context, id string, actorName string) error
	HardDelete(ctx context.Context, id string, actorName string) error
	Restore(ctx context.Context, id string, actorName string) error
}

var Instance Provider

func NewHandler() {
	instance := &impl{
		txRunner:      func(fn func(tx *gorm.DB) error) error { return db.DB.Transaction(fn) },
		store:         employeestore.NewInstance(db.DB),
		positionStore: positionstore.NewInstance(db.DB),
		archiveStore:  archivestore.NewInstance(db.DB),
		historyStore:  employeehistorystore.NewInstance(db.DB),
		orgUnits:      orgunitprovider.Instance,
		allocator:     identifier.Instance,
		status:        employeestatus.Instance,
		notifier:      notification.Instance,
		fileStorage:   filestorage.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"positionStore", instance.positionStore,
		"archiveStore", instance.archiveStore,
		"historyStore", instance.historyStore,
		"orgUnits", instance.orgUnits,
		"allocator", instance.allocator,
		"status", instance.status,
		"notifier", instance.notifier,
		"fileStorage", instance.fileStorage,
	)
	Instance = instance
}

type impl struct {
	txRunner      func(fn func(tx *gorm.DB) error) error
	store         employeestore.Provider
	positionStore positionstore.Provider
	archiveStore  archivestore.Provider
	historyStore  employeehistorystore.Provider
	orgUnits      orgunitprovider.Provider
	allocator     identifier.Provider
	status        employeestatus.Provider
	notifier      notification.Provider
	fileStorage   filestorage.Provider
}

func actorOrSystem(actorName string) string {
	if actorName == "" {
		return "System"
	}
	return actorName
}

func displayName(firstName, lastName string) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", firstName, lastName))
}

func (i impl) Create(ctx context.Context, data employeeapimodels.EmployeeData, actorName string) (string, error) {
	logger := log.WithField("org_unit_id", data.OrgUnitID)
	shortCode, err := i.orgUnits.GetShortCode(data.OrgUnitID)
	if err != nil {
		return "", err
	}
	if data.ManagerID != "" {
		manager, err := i.store.GetByID(data.ManagerID)
		if err != nil {
			return "", err
		}
		if manager == nil {
			return "", errors.New("manager not found")
		}
	}
	recID := ""
	employeeID := ""
	// the namespace lock spans the whole transaction so the allocated
	// identifier is committed before a concurrent allocation re-checks
	err = i.allocator.Locked(ctx, shortCode, func() error {
		return i.txRunner(func(tx *gorm.DB) error {
			es := i.store.WithTx(tx)
			employeeID, err = i.allocator.Allocate(tx, shortCode)
			if err != nil {
				return err
			}
			rec := dbmodels.Employee{
				EmployeeID:       employeeID,
				FirstName:        data.FirstName,
				LastName:         data.LastName,
				MiddleName:       data.MiddleName,
				DisplayName:      displayName(data.FirstName, data.LastName),
				Email:            data.Email,
				PhoneNumber:      data.PhoneNumber,
				JobTitle:         data.JobTitle,
				Grade:            data.Grade,
				OrgUnitID:        &data.OrgUnitID,
				ContractCategory: data.ContractCategory,
				StartDate:        data.StartDate,
				ContractEndDate:  data.ContractEndDate,
				Notes:            data.Notes,
			}
			if data.ManagerID != "" {
				rec.ManagerID = &data.ManagerID
			}
			status, reason := i.status.InitialStatus(rec)
			rec.Status = status
			if info, ok := models.GetStatusInfo(status); ok {
				rec.ShowInOrgChart = info.ShowInOrgChart
			} else {
				logger.WithField("status", status).Warn("status has no definition, employee kept visible in org chart")
				rec.ShowInOrgChart = true
			}
			recID, err = es.Create(rec)
			if err != nil {
				return err
			}
			if data.HiredFromID != "" {
				if err = i.fillSourcePosition(tx, data.HiredFromID, recID); err != nil {
					return err
				}
			}
			_, err = i.historyStore.WithTx(tx).Create(dbmodels.EmployeeHistory{
				EmployeeRef: recID,
				EmployeeID:  employeeID,
				ActionType:  dbmodels.HistoryTypeCreate,
				ActorName:   actorOrSystem(actorName),
				Changes: dbmodels.EntityChanges{
					Description: fmt.Sprintf("employee created, %s", reason),
					Data: []dbmodels.FieldChanges{
						{Field: "status", NewValue: string(status)},
						{Field: "employee_id", NewValue: employeeID},
					},
				},
			})
			return err
		})
	})
	if err != nil {
		return "", err
	}
	if data.HiredFromID != "" {
		events.PublishPositionFilled(events.PositionFilled{
			PositionRef: data.HiredFromID,
			EmployeeRef: recID,
		})
	}
	logger.WithField("rec_id", recID).
		WithField("employee_id", employeeID).
		Info("employee created")
	return recID, nil
}

// fillSourcePosition links a hire to the vacant position it fills.
func (i impl) fillSourcePosition(tx *gorm.DB, positionID, employeeRef string) error {
	ps := i.positionStore.WithTx(tx)
	pos, err := ps.GetByID(positionID)
	if err != nil {
		return err
	}
	if pos == nil {
		return errors.New("hired-from position not found")
	}
	if pos.IsFilled {
		return errors.New("position is already filled")
	}
	err = ps.Update(positionID, map[string]interface{}{
		"is_filled":    true,
		"filled_by_id": employeeRef,
	})
	if err != nil {
		return err
	}
	return i.store.WithTx(tx).Update(employeeRef, map[string]interface{}{
		"hired_from_position_id": positionID,
	})
}

func (i impl) GetByID(id string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, errors.New("employee not found")
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) Update(id string, data employeeapimodels.EmployeeData, actorName string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("employee not found")
	}
	if rec.IsDeleted {
		return errors.New("employee is deleted")
	}
	if data.OrgUnitID != "" && (rec.OrgUnitID == nil || *rec.OrgUnitID != data.OrgUnitID) {
		// org unit move keeps the already assigned identifier
		if _, err = i.orgUnits.GetShortCode(data.OrgUnitID); err != nil {
			return err
		}
	}
	return i.txRunner(func(tx *gorm.DB) error {
		es := i.store.WithTx(tx)
		updMap := map[string]interface{}{
			"first_name":        data.FirstName,
			"last_name":         data.LastName,
			"middle_name":       data.MiddleName,
			"display_name":      displayName(data.FirstName, data.LastName),
			"email":             data.Email,
			"phone_number":      data.PhoneNumber,
			"job_title":         data.JobTitle,
			"grade":             data.Grade,
			"contract_category": data.ContractCategory,
			"start_date":        data.StartDate,
			"contract_end_date": data.ContractEndDate,
			"notes":             data.Notes,
		}
		if data.OrgUnitID != "" {
			updMap["org_unit_id"] = data.OrgUnitID
		}
		if data.ManagerID != "" {
			updMap["manager_id"] = data.ManagerID
		} else {
			updMap["manager_id"] = nil
		}
		if err := es.Update(id, updMap); err != nil {
			return err
		}
		_, err := i.historyStore.WithTx(tx).Create(dbmodels.EmployeeHistory{
			EmployeeRef: rec.ID,
			EmployeeID:  rec.EmployeeID,
			ActionType:  dbmodels.HistoryTypeUpdate,
			ActorName:   actorOrSystem(actorName),
			Changes: dbmodels.EntityChanges{
				Description: "employee record updated",
			},
		})
		if err != nil {
			return err
		}
		// contract fields may have moved, recheck the required status
		fresh, err := es.GetByID(id)
		if err != nil {
			return err
		}
		if fresh == nil {
			return errors.New("employee missing after update")
		}
		_, err = i.status.ReconcileTx(tx, *fresh, actorName)
		return err
	})
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, employeeapimodels.EmployeeConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) OverrideStatus(id string, request employeeapimodels.StatusOverride, actorName string) error {
	if err := request.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("employee not found")
	}
	if rec.IsDeleted {
		return errors.New("employee is deleted")
	}
	if rec.Status == request.Status {
		return nil
	}
	updMap := map[string]interface{}{
		"status": request.Status,
	}
	if info, ok := models.GetStatusInfo(request.Status); ok {
		updMap["show_in_org_chart"] = info.ShowInOrgChart
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	_, err = i.historyStore.Create(dbmodels.EmployeeHistory{
		EmployeeRef: rec.ID,
		EmployeeID:  rec.EmployeeID,
		ActionType:  dbmodels.HistoryTypeStatusChange,
		ActorName:   actorOrSystem(actorName),
		Changes: dbmodels.EntityChanges{
			Description: "status set manually",
			Data: []dbmodels.FieldChanges{
				{Field: "status", OldValue: string(rec.Status), NewValue: string(request.Status)},
			},
		},
	})
	if err != nil {
		log.WithError(err).
			WithField("rec_id", id).
			Error("audit entry for manual status change failed")
	}
	i.notifier.StatusChanged(*rec, rec.Status, request.Status, "set manually")
	return nil
}

func (i impl) StatusPreview(id string) (employeeapimodels.StatusPreview, error) {
	return i.status.Preview(id)
}

func (i impl) ForceStatusUpdate(id string, actorName string) (bool, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, errors.New("employee not found")
	}
	if rec.IsDeleted {
		return false, errors.New("employee is deleted")
	}
	return i.status.ReconcileTx(nil, *rec, actorName)
}

func (i impl) Archives(employeeID string) ([]dbmodels.EmployeeArchive, error) {
	if employeeID == "" {
		return nil, errors.New("employee identifier is not set")
	}
	return i.archiveStore.ListByEmployeeID(employeeID)
}

func (i impl) Headcount() ([]employeeapimodels.HeadcountRow, error) {
	empList, err := i.store.ListActiveHeadcount()
	if err != nil {
		return nil, err
	}
	rows := make([]employeeapimodels.HeadcountRow, 0, len(empList))
	for _, emp := range empList {
		info, ok := models.GetStatusInfo(emp.Status)
		if !ok {
			// unknown status counts, undercounting is the worse failure
			log.WithField("employee_id", emp.EmployeeID).
				WithField("status", emp.Status).
				Warn("status has no definition, employee counted in headcount")
		} else if !info.CountsTowardHeadcount {
			continue
		}
		row := employeeapimodels.HeadcountRow{
			Identifier: emp.EmployeeID,
			Name:       emp.GetFullName(),
			JobTitle:   emp.JobTitle,
			Grade:      emp.Grade,
			Status:     emp.Status,
		}
		if emp.OrgUnitID != nil {
			row.OrgUnitID = *emp.OrgUnitID
		}
		if emp.OrgUnit != nil {
			row.OrgUnitName = emp.OrgUnit.Name
		}
		rows = append(rows, row)
	}
	posList, err := i.positionStore.ListOpenHeadcount()
	if err != nil {
		return nil, err
	}
	for _, pos := range posList {
		row := employeeapimodels.HeadcountRow{
			Identifier: pos.PositionID,
			Name:       "Vacant position",
			JobTitle:   pos.JobTitle,
			Grade:      pos.Grade,
			IsVacancy:  true,
		}
		if pos.OrgUnitID != nil {
			row.OrgUnitID = *pos.OrgUnitID
		}
		if pos.OrgUnit != nil {
			row.OrgUnitName = pos.OrgUnit.Name
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(a, b int) bool {
		prefixA, numberA := identifier.Split(rows[a].Identifier)
		prefixB, numberB := identifier.Split(rows[b].Identifier)
		if prefixA != prefixB {
			return prefixA < prefixB
		}
		return numberA < numberB
	})
	return rows, nil
}
