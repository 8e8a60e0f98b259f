package archivestore

import (
	dbmodels "hr-personnel-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	WithTx(tx *gorm.DB) Provider
	Create(rec dbmodels.EmployeeArchive) (id string, err error)
	ListByEmployeeID(employeeID string) (list []dbmodels.EmployeeArchive, err error)
	// DeleteSoftByEmployeeID removes soft-delete archives (StillExists=true)
	// for the public identifier. Hard-delete archives are never touched.
	DeleteSoftByEmployeeID(employeeID string) (count int64, err error)
	ListIdentifiersByPrefix(code string) (list []string, err error)
	IdentifierExists(identifier string) (exists bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) WithTx(tx *gorm.DB) Provider {
	return &impl{db: tx}
}

func (i impl) Create(rec dbmodels.EmployeeArchive) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByEmployeeID(employeeID string) (list []dbmodels.EmployeeArchive, err error) {
	list = []dbmodels.EmployeeArchive{}
	err = i.db.
		Model(dbmodels.EmployeeArchive{}).
		Where("employee_id = ?", employeeID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteSoftByEmployeeID(employeeID string) (count int64, err error) {
	tx := i.db.
		Where("employee_id = ?", employeeID).
		Where("still_exists = true").
		Delete(&dbmodels.EmployeeArchive{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) ListIdentifiersByPrefix(code string) (list []string, err error) {
	list = []string{}
	err = i.db.
		Model(dbmodels.EmployeeArchive{}).
		Where("employee_id like ?", code+"%").
		Distinct().
		Pluck("employee_id", &list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) IdentifierExists(identifier string) (exists bool, err error) {
	var rowCount int64
	err = i.db.
		Model(dbmodels.EmployeeArchive{}).
		Where("employee_id = ?", identifier).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}
