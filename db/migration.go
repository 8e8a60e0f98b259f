package db

import (
	dbmodels "hr-personnel-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.OrgUnit{}); err != nil {
		return errors.Wrap(err, "migration failed for OrgUnit")
	}
	if err := DB.AutoMigrate(&dbmodels.ContractTypeConfig{}); err != nil {
		return errors.Wrap(err, "migration failed for ContractTypeConfig")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "migration failed for Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.VacantPosition{}); err != nil {
		return errors.Wrap(err, "migration failed for VacantPosition")
	}
	if err := DB.AutoMigrate(&dbmodels.EmployeeArchive{}); err != nil {
		return errors.Wrap(err, "migration failed for EmployeeArchive")
	}
	if err := DB.AutoMigrate(&dbmodels.EmployeeHistory{}); err != nil {
		return errors.Wrap(err, "migration failed for EmployeeHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.EmployeeFile{}); err != nil {
		return errors.Wrap(err, "migration failed for EmployeeFile")
	}
	log.Info("migrations finished")
	return nil
}
