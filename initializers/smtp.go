package initializers

import (
	"hr-personnel-backend/config"
	"hr-personnel-backend/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() {
	if config.Conf.Smtp.Host == "" {
		log.Warn("SMTP host is not set, mail notifications disabled")
		return
	}
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
}
