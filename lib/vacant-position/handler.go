package positionhandler

import (
	"context"
	"hr-personnel-backend/db"
	orgunitprovider "hr-personnel-backend/lib/dicts/orgunit"
	employeestore "hr-personnel-backend/lib/employee/store"
	"hr-personnel-backend/lib/events"
	"hr-personnel-backend/lib/identifier"
	initchecker "hr-personnel-backend/lib/utils/init-checker"
	positionstore "hr-personnel-backend/lib/vacant-position/store"
	positionapimodels "hr-personnel-backend/models/api/position"
	dbmodels "hr-personnel-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(ctx context.Context, data positionapimodels.PositionData) (id string, err error)
	GetByID(id string) (item positionapimodels.PositionView, err error)
	List(filter positionapimodels.PositionFilter) (list []positionapimodels.PositionView, rowCount int64, err error)
	// Fill marks the position filled and links the hired employee, dropping
	// the position from headcount.
	Fill(id string, data positionapimodels.PositionFill) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		txRunner:      func(fn func(tx *gorm.DB) error) error { return db.DB.Transaction(fn) },
		store:         positionstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		orgUnits:      orgunitprovider.Instance,
		allocator:     identifier.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employeeStore", instance.employeeStore,
		"orgUnits", instance.orgUnits,
		"allocator", instance.allocator,
	)
	Instance = instance

	events.SubscribeEmployeeRemoved(func(e events.EmployeeRemoved) {
		count, err := instance.store.ScrubNotes(e.DisplayName, e.Replacement)
		if err != nil {
			log.WithError(err).
				WithField("employee_id", e.Identifier).
				Error("position notes scrub failed")
			return
		}
		if count > 0 {
			log.WithField("employee_id", e.Identifier).
				WithField("row_count", count).
				Info("position notes scrubbed")
		}
	})
}

type impl struct {
	txRunner      func(fn func(tx *gorm.DB) error) error
	store         positionstore.Provider
	employeeStore employeestore.Provider
	orgUnits      orgunitprovider.Provider
	allocator     identifier.Provider
}

func (i impl) Create(ctx context.Context, data positionapimodels.PositionData) (id string, err error) {
	shortCode, err := i.orgUnits.GetShortCode(data.OrgUnitID)
	if err != nil {
		return "", err
	}
	recID := ""
	// allocation and insert commit together under the namespace lock
	err = i.allocator.Locked(ctx, shortCode, func() error {
		return i.txRunner(func(tx *gorm.DB) error {
			positionID, err := i.allocator.Allocate(tx, shortCode)
			if err != nil {
				return err
			}
			rec := dbmodels.VacantPosition{
				PositionID:     positionID,
				JobTitle:       data.JobTitle,
				Grade:          data.Grade,
				OrgUnitID:      &data.OrgUnitID,
				ShowInOrgChart: data.ShowInOrgChart,
				Notes:          data.Notes,
			}
			if data.ReportsToID != "" {
				rec.ReportsToID = &data.ReportsToID
			}
			recID, err = i.store.WithTx(tx).Create(rec)
			return err
		})
	})
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", recID).Info("vacant position created")
	return recID, nil
}

func (i impl) GetByID(id string) (positionapimodels.PositionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return positionapimodels.PositionView{}, err
	}
	if rec == nil {
		return positionapimodels.PositionView{}, errors.New("vacant position not found")
	}
	return positionapimodels.PositionConvert(*rec), nil
}

func (i impl) List(filter positionapimodels.PositionFilter) (list []positionapimodels.PositionView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]positionapimodels.PositionView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, positionapimodels.PositionConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Fill(id string, data positionapimodels.PositionFill) error {
	var filled dbmodels.VacantPosition
	err := i.txRunner(func(tx *gorm.DB) error {
		store := i.store.WithTx(tx)
		rec, err := store.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.New("vacant position not found")
		}
		if rec.IsFilled {
			return errors.New("position is already filled")
		}
		es := i.employeeStore.WithTx(tx)
		emp, err := es.GetByID(data.EmployeeID)
		if err != nil {
			return err
		}
		if emp == nil {
			return errors.New("employee not found")
		}
		err = store.Update(id, map[string]interface{}{
			"is_filled":    true,
			"filled_by_id": data.EmployeeID,
		})
		if err != nil {
			return err
		}
		err = es.Update(data.EmployeeID, map[string]interface{}{
			"hired_from_position_id": id,
		})
		if err != nil {
			return err
		}
		filled = *rec
		return nil
	})
	if err != nil {
		return err
	}
	events.PublishPositionFilled(events.PositionFilled{
		PositionRef: id,
		PositionID:  filled.PositionID,
		EmployeeRef: data.EmployeeID,
	})
	log.WithField("rec_id", id).
		WithField("position_id", filled.PositionID).
		Info("vacant position filled")
	return nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("vacant position not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).
		WithField("position_id", rec.PositionID).
		Info("vacant position deleted")
	return nil
}
