package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

func NewConn() (*sqlx.DB, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return Open(cfg)
}

func Open(cfg *Config) (*sqlx.DB, error) {
	e := cfg.Validate()
	if e.HasErrors() {
		return nil, e
	}

	if dir := filepath.Dir(cfg.File); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrapf(err, "failed to create db directory %q", dir)
		}
	}

	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_time_format=sqlite",
		cfg.File,
		cfg.BusyTimeout.Milliseconds(),
	)

	conn, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db %q", cfg.File)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConn)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "failed to ping sqlite db %q", cfg.File)
	}

	logrus.Infof("opened sqlite db %q", cfg.File)

	return conn, nil
}
