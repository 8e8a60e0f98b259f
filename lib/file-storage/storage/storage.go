package filesdbstorage

import (
	dbmodels "hr-personnel-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	SaveFile(rec dbmodels.EmployeeFile) (id string, err error)
	GetByID(id string) (*dbmodels.EmployeeFile, error)
	ListByEmployee(employeeRef string) (list []dbmodels.EmployeeFile, err error)
	Delete(id string) error
}

type impl struct {
	db *gorm.DB
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

func (i impl) SaveFile(rec dbmodels.EmployeeFile) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.EmployeeFile, error) {
	rec := dbmodels.EmployeeFile{}
	err := i.db.
		Model(&dbmodels.EmployeeFile{}).
		Where("id = ?", id).
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

func (i impl) ListByEmployee(employeeRef string) (list []dbmodels.EmployeeFile, err error) {
	err = i.db.
		Model(&dbmodels.EmployeeFile{}).
		Where("employee_ref = ?", employeeRef).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.EmployeeFile{}).
		Error
}
