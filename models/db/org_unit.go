package dbmodels

import (
	"github.com/pkg/errors"
)

// OrgUnit is a business unit; ShortCode is the identifier namespace prefix
// shared by employees and vacant positions of the unit.
type OrgUnit struct {
	BaseModel
	ParentID  string `gorm:"type:varchar(36);index"`
	Name      string `gorm:"type:varchar(255)"`
	ShortCode string `gorm:"type:varchar(10);index"`
}

func (u *OrgUnit) Validate() error {
	if u.Name == "" {
		return errors.New("org unit name is not set")
	}
	if u.ShortCode == "" {
		return errors.New("org unit short code is not set")
	}
	return nil
}
