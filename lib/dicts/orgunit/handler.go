package orgunitprovider

import (
	"hr-personnel-backend/db"
	orgunitstore "hr-personnel-backend/lib/dicts/orgunit/store"
	initchecker "hr-personnel-backend/lib/utils/init-checker"
	dictapimodels "hr-personnel-backend/models/api/dict"
	dbmodels "hr-personnel-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(request dictapimodels.OrgUnitData) (id string, err error)
	Update(id string, request dictapimodels.OrgUnitData) error
	Get(id string) (item dictapimodels.OrgUnitView, err error)
	Delete(id string) error
	List() (list []dictapimodels.OrgUnitView, err error)
	// GetShortCode resolves a unit to its identifier namespace prefix.
	// A unit without a short code is a configuration error.
	GetShortCode(id string) (code string, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: orgunitstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store orgunitstore.Provider
}

func (i impl) Create(request dictapimodels.OrgUnitData) (id string, err error) {
	rec := dbmodels.OrgUnit{
		ParentID:  request.ParentID,
		Name:      request.Name,
		ShortCode: request.ShortCode,
	}
	if err = rec.Validate(); err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("org_unit_name", rec.Name).
		WithField("rec_id", id).
		Info("org unit created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.OrgUnitData) error {
	updMap := map[string]interface{}{
		"name":       request.Name,
		"short_code": request.ShortCode,
		"parent_id":  request.ParentID,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("org unit updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.OrgUnitView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.OrgUnitView{}, err
	}
	if rec == nil {
		return dictapimodels.OrgUnitView{}, errors.New("org unit not found")
	}
	return dictapimodels.OrgUnitConvert(*rec), nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("org unit deleted")
	return nil
}

func (i impl) List() (list []dictapimodels.OrgUnitView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.OrgUnitView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.OrgUnitConvert(rec))
	}
	return list, nil
}

func (i impl) GetShortCode(id string) (code string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("org unit not found")
	}
	if rec.ShortCode == "" {
		return "", errors.Errorf("org unit %s has no short code configured", rec.Name)
	}
	return rec.ShortCode, nil
}
