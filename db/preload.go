package db

import (
	"hr-personnel-backend/models"
	dbmodels "hr-personnel-backend/models/db"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	fillContractTypeConfigs()
}

// fillContractTypeConfigs seeds the contract configuration registry.
// The registry is treated as read-only at runtime; existing rows are kept.
func fillContractTypeConfigs() {
	seed := []dbmodels.ContractTypeConfig{
		{
			Category:              models.ContractCategoryPermanent,
			ProbationDays:         0,
			EnableAutoTransitions: true,
		},
		{
			Category:                  models.ContractCategoryThreeMonths,
			ProbationDays:             90,
			EnableAutoTransitions:     true,
			TransitionToInactiveOnEnd: true,
			NotifyDaysBeforeEnd:       14,
		},
		{
			Category:                  models.ContractCategorySixMonths,
			ProbationDays:             180,
			EnableAutoTransitions:     true,
			TransitionToInactiveOnEnd: true,
			NotifyDaysBeforeEnd:       14,
		},
		{
			Category:                  models.ContractCategoryOneYear,
			ProbationDays:             365,
			EnableAutoTransitions:     true,
			TransitionToInactiveOnEnd: true,
			NotifyDaysBeforeEnd:       30,
		},
	}
	for _, cfg := range seed {
		var count int64
		err := DB.Model(&dbmodels.ContractTypeConfig{}).
			Where("category = ?", cfg.Category).
			Count(&count).Error
		if err != nil {
			log.WithError(err).Error("contract config preload check failed")
			return
		}
		if count > 0 {
			continue
		}
		cfg.ID = uuid.New().String()
		if err := DB.Create(&cfg).Error; err != nil {
			log.WithError(err).
				WithField("category", cfg.Category).
				Error("contract config preload failed")
			return
		}
		log.WithField("category", cfg.Category).Info("contract config seeded")
	}
}
