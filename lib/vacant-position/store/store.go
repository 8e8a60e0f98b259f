package positionstore

import (
	positionapimodels "hr-personnel-backend/models/api/position"
	dbmodels "hr-personnel-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	WithTx(tx *gorm.DB) Provider
	Create(rec dbmodels.VacantPosition) (id string, err error)
	GetByID(id string) (rec *dbmodels.VacantPosition, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListCount(filter positionapimodels.PositionFilter) (count int64, err error)
	List(filter positionapimodels.PositionFilter) (list []dbmodels.VacantPosition, err error)
	ListIdentifiersByPrefix(code string) (list []string, err error)
	IdentifierExists(identifier string) (exists bool, err error)
	// ListByVacatedBy matches unfilled positions by the stamped back-reference
	// (internal employee pk). Filled positions hold a hire and are never
	// candidates for removal.
	ListByVacatedBy(employeeRef string) (list []dbmodels.VacantPosition, err error)
	// ListUnfilledReferencing matches unfilled positions whose free-text notes
	// contain any of the given fragments. Migration aid for rows predating the
	// stamped back-reference.
	ListUnfilledReferencing(fragments []string) (list []dbmodels.VacantPosition, err error)
	CountReferencing(employeeRef string, fragments []string) (count int64, err error)
	ListOpenHeadcount() (list []dbmodels.VacantPosition, err error)
	// ScrubNotes replaces a literal name in position notes, returning the
	// number of rows touched.
	ScrubNotes(name, replacement string) (count int64, err error)
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

func (i impl) Create(rec dbmodels.VacantPosition) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.VacantPosition, error) {
	rec := dbmodels.VacantPosition{}
	err := i.db.
		Model(&dbmodels.VacantPosition{}).
		Where("id = ?", id).
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
		Model(&dbmodels.VacantPosition{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("vacant position not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.VacantPosition{
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

func (i impl) ListCount(filter positionapimodels.PositionFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.VacantPosition{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("vacant position count query failed")
		return 0, errors.New("vacant position count query failed")
	}
	return rowCount, nil
}

func (i impl) List(filter positionapimodels.PositionFilter) (list []dbmodels.VacantPosition, err error) {
	list = []dbmodels.VacantPosition{}
	tx := i.db.
		Model(dbmodels.VacantPosition{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	tx.Order("position_id")
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
		Model(dbmodels.VacantPosition{}).
		Where("position_id like ?", code+"%").
		Pluck("position_id", &list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) IdentifierExists(identifier string) (exists bool, err error) {
	var rowCount int64
	err = i.db.
		Model(dbmodels.VacantPosition{}).
		Where("position_id = ?", identifier).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}

func (i impl) ListByVacatedBy(employeeRef string) (list []dbmodels.VacantPosition, err error) {
	list = []dbmodels.VacantPosition{}
	err = i.db.
		Model(dbmodels.VacantPosition{}).
		Where("vacated_by_employee_id = ?", employeeRef).
		Where("is_filled = false").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListUnfilledReferencing(fragments []string) (list []dbmodels.VacantPosition, err error) {
	list = []dbmodels.VacantPosition{}
	if len(fragments) == 0 {
		return list, nil
	}
	tx := i.db.
		Model(dbmodels.VacantPosition{}).
		Where("is_filled = false")
	cond := i.db.Where("notes like ?", "%"+fragments[0]+"%")
	for _, fragment := range fragments[1:] {
		cond = cond.Or("notes like ?", "%"+fragment+"%")
	}
	err = tx.Where(cond).Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountReferencing(employeeRef string, fragments []string) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.VacantPosition{})
	cond := i.db.Where("vacated_by_employee_id = ?", employeeRef)
	for _, fragment := range fragments {
		cond = cond.Or("notes like ?", "%"+fragment+"%")
	}
	err = tx.Where("is_filled = false").Where(cond).Count(&rowCount).Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) ListOpenHeadcount() (list []dbmodels.VacantPosition, err error) {
	list = []dbmodels.VacantPosition{}
	err = i.db.
		Model(dbmodels.VacantPosition{}).
		Where("is_filled = false").
		Preload("OrgUnit").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ScrubNotes(name, replacement string) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.VacantPosition{}).
		Where("notes like ?", "%"+name+"%").
		Update("notes", gorm.Expr("replace(notes, ?, ?)", name, replacement))
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) addFilter(tx *gorm.DB, filter positionapimodels.PositionFilter) {
	if filter.OrgUnitID != "" {
		tx = tx.Where("org_unit_id = ?", filter.OrgUnitID)
	}
	if filter.OnlyOpen {
		tx = tx.Where("is_filled = false")
	}
	if filter.OnlyFilled {
		tx = tx.Where("is_filled = true")
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
