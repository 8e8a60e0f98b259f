package contractstore

import (
	"hr-personnel-backend/models"
	dbmodels "hr-personnel-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByCategory(category models.ContractCategory) (rec *dbmodels.ContractTypeConfig, err error)
	List() (list []dbmodels.ContractTypeConfig, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByCategory(category models.ContractCategory) (*dbmodels.ContractTypeConfig, error) {
	rec := dbmodels.ContractTypeConfig{}
	err := i.db.
		Model(&dbmodels.ContractTypeConfig{}).
		Where("category = ?", category).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() (list []dbmodels.ContractTypeConfig, err error) {
	list = []dbmodels.ContractTypeConfig{}
	err = i.db.
		Model(dbmodels.ContractTypeConfig{}).
		Order("category").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
