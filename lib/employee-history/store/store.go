package employeehistorystore

import (
	apimodels "hr-personnel-backend/models/api"
	dbmodels "hr-personnel-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	WithTx(tx *gorm.DB) Provider
	Create(rec dbmodels.EmployeeHistory) (id string, err error)
	ListCount(employeeRef string) (count int64, err error)
	List(employeeRef string, filter apimodels.Pagination) (list []dbmodels.EmployeeHistory, err error)
	ListAllByEmployeeRef(employeeRef string) (list []dbmodels.EmployeeHistory, err error)
	DeleteByEmployeeRef(employeeRef string) (count int64, err error)
	// ScrubDescriptions replaces a literal name in change descriptions.
	ScrubDescriptions(name, replacement string) (count int64, err error)
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

func (i impl) Create(rec dbmodels.EmployeeHistory) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListCount(employeeRef string) (count int64, err error) {
	var rowCount int64
	err = i.db.
		Model(dbmodels.EmployeeHistory{}).
		Where("employee_ref = ?", employeeRef).
		Count(&rowCount).
		Error
	if err != nil {
		log.WithError(err).Error("employee history count query failed")
		return 0, errors.New("employee history count query failed")
	}
	return rowCount, nil
}

func (i impl) List(employeeRef string, filter apimodels.Pagination) (list []dbmodels.EmployeeHistory, err error) {
	list = []dbmodels.EmployeeHistory{}
	tx := i.db.
		Model(dbmodels.EmployeeHistory{}).
		Where("employee_ref = ?", employeeRef)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
	tx.Order("created_at")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListAllByEmployeeRef(employeeRef string) (list []dbmodels.EmployeeHistory, err error) {
	list = []dbmodels.EmployeeHistory{}
	err = i.db.
		Model(dbmodels.EmployeeHistory{}).
		Where("employee_ref = ?", employeeRef).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteByEmployeeRef(employeeRef string) (count int64, err error) {
	tx := i.db.
		Where("employee_ref = ?", employeeRef).
		Delete(&dbmodels.EmployeeHistory{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) ScrubDescriptions(name, replacement string) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.EmployeeHistory{}).
		Where("changes->>'description' like ?", "%"+name+"%").
		Update("changes", gorm.Expr(
			"jsonb_set(changes, '{description}', to_jsonb(replace(changes->>'description', ?, ?)))",
			name, replacement))
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
