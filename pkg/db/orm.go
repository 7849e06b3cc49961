package db

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewORM wraps the open pool into gorm, both share connections and the modernc driver.
func NewORM(conn *sqlx.DB) (*gorm.DB, error) {
	orm, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: driverName,
		Conn:       conn.DB,
	}), &gorm.Config{
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to init orm over sqlite connection")
	}

	return orm, nil
}
