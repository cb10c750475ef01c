package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string, log *logrus.Logger) (*gorm.DB, error) {
	mode := logger.Warn
	if log.IsLevelEnabled(logrus.DebugLevel) {
		mode = logger.Info
	}
	db, err := OpenGormWithDialector(mysql.Open(dsn), mode)
	if err != nil {
		return nil, err
	}
	log.Info("gorm: connected")
	return db, nil
}

// OpenGormWithDialector opens a pooled gorm connection over any dialector;
// tests inject a mocked one.
func OpenGormWithDialector(dial gorm.Dialector, mode logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(mode),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
