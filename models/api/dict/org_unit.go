package dictapimodels

import (
	dbmodels "hr-personnel-backend/models/db"

	"github.com/pkg/errors"
)

type OrgUnitData struct {
	Name      string `json:"name"`
	ShortCode string `json:"short_code"`
	ParentID  string `json:"parent_id"`
}

func (r OrgUnitData) Validate() error {
	if r.Name == "" {
		return errors.New("org unit name is not set")
	}
	if r.ShortCode == "" {
		return errors.New("org unit short code is not set")
	}
	return nil
}

type OrgUnitView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"short_code"`
	ParentID  string `json:"parent_id,omitempty"`
}

func OrgUnitConvert(rec dbmodels.OrgUnit) OrgUnitView {
	return OrgUnitView{
		ID:        rec.ID,
		Name:      rec.Name,
		ShortCode: rec.ShortCode,
		ParentID:  rec.ParentID,
	}
}
