package employeestore

import (
	employeeapimodels "hr-personnel-backend/models/api/employee"
	dbmodels "hr-personnel-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	WithTx(tx *gorm.DB) Provider
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
	GetByEmployeeID(employeeID string) (rec *dbmodels.Employee, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListCount(filter employeeapimodels.EmployeeFilter) (count int64, err error)
	List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error)
	// ListIdentifiersByPrefix returns public identifiers starting with the org
	// code, soft-deleted rows included.
	ListIdentifiersByPrefix(code string) (list []string, err error)
	IdentifierExists(identifier string) (exists bool, err error)
	ListDirectReports(managerRef string) (list []dbmodels.Employee, err error)
	ListForStatusSweep() (list []dbmodels.Employee, err error)
	ListContractsEndingBy(date time.Time) (list []dbmodels.Employee, err error)
	ListActiveHeadcount() (list []dbmodels.Employee, err error)
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

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Preload("OrgUnit").
		Preload("Manager").
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

func (i impl) GetByEmployeeID(employeeID string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Model(&dbmodels.Employee{}).
		Where("employee_id = ?", employeeID).
		Preload("OrgUnit").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("employee not found")
	}
	return nil
}

// Delete purges the row. Used by hard delete only; soft delete is a flag update.
func (i impl) Delete(id string) error {
	rec := dbmodels.Employee{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListCount(filter employeeapimodels.EmployeeFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Employee{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("employee count query failed")
		return 0, errors.New("employee count query failed")
	}
	return rowCount, nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.
		Model(dbmodels.Employee{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	tx.Order("employee_id")
	err = tx.Preload("OrgUnit").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListIdentifiersByPrefix(code string) (list []string, err error) {
	list = []string{}
	err = i.db.
		Model(dbmodels.Employee{}).
		Where("employee_id like ?", code+"%").
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
		Model(dbmodels.Employee{}).
		Where("employee_id = ?", identifier).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}

func (i impl) ListDirectReports(managerRef string) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Model(dbmodels.Employee{}).
		Where("manager_id = ?", managerRef).
		Where("is_deleted = false").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListForStatusSweep() (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Model(dbmodels.Employee{}).
		Where("is_deleted = false").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListContractsEndingBy(date time.Time) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Model(dbmodels.Employee{}).
		Where("is_deleted = false").
		Where("contract_end_date is not null").
		Where("contract_end_date <= ?", date).
		Where("contract_end_date >= now()").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListActiveHeadcount() (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Model(dbmodels.Employee{}).
		Where("is_deleted = false").
		Preload("OrgUnit").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter employeeapimodels.EmployeeFilter) {
	if !filter.IncludeDeleted {
		tx = tx.Where("is_deleted = false")
	}
	if filter.OrgUnitID != "" {
		tx = tx.Where("org_unit_id = ?", filter.OrgUnitID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if len(filter.Statuses) != 0 {
		tx = tx.Where("status in (?)", filter.Statuses)
	}
	if filter.Search != "" {
		tx.Where("LOWER(display_name) like ?", "%"+strings.ToLower(filter.Search)+"%")
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
