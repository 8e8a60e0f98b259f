package contractprovider

import (
	"hr-personnel-backend/db"
	contractstore "hr-personnel-backend/lib/contract/store"
	initchecker "hr-personnel-backend/lib/utils/init-checker"
	"hr-personnel-backend/models"
	dbmodels "hr-personnel-backend/models/db"
)

// Provider is the read-only contract configuration registry.
// Get returns (nil, nil) for an unknown category; the status engine applies
// its default policy in that case.
type Provider interface {
	Get(category models.ContractCategory) (rec *dbmodels.ContractTypeConfig, err error)
	List() (list []dbmodels.ContractTypeConfig, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: contractstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store contractstore.Provider
}

func (i impl) Get(category models.ContractCategory) (*dbmodels.ContractTypeConfig, error) {
	return i.store.GetByCategory(category)
}

func (i impl) List() ([]dbmodels.ContractTypeConfig, error) {
	return i.store.List()
}
