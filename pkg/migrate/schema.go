package migrate

import (
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"medStudyBot/pkg/migrate/files"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	upSuffix        = ".up.sql"
	migrationsTable = "schema_migrations"
)

var versionedRx = regexp.MustCompile(`^\d+_`)

var options = &gormigrate.Options{
	TableName:    migrationsTable,
	IDColumnName: "id",
	IDColumnSize: 255,
	// each migration runs in its own transaction, see migrationsFrom
	UseTransaction: false,
}

func Execute(dbConn *gorm.DB) error {
	return execute(dbConn, files.FS)
}

func execute(dbConn *gorm.DB, fsys fs.FS) error {
	migrations, err := migrationsFrom(fsys)
	if err != nil {
		return err
	}

	if len(migrations) == 0 {
		return nil
	}

	m := gormigrate.New(dbConn, options, migrations)
	if err := m.Migrate(); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// migrationsFrom turns "<version>_<name>.up.sql" files into migrations ordered by name,
// the file name without suffix is the migration id.
func migrationsFrom(fsys fs.FS) ([]*gormigrate.Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migrations")
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, upSuffix) {
			continue
		}
		if !versionedRx.MatchString(name) {
			logrus.Warnf("skipping migration file %q without version prefix", name)
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	res := make([]*gormigrate.Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read migration %s", name)
		}

		res = append(res, sqlMigration(name, string(content)))
	}

	return res, nil
}

func sqlMigration(name, query string) *gormigrate.Migration {
	id := strings.TrimSuffix(name, upSuffix)

	return &gormigrate.Migration{
		ID: id,
		Migrate: func(tx *gorm.DB) error {
			err := tx.Transaction(func(tx *gorm.DB) error {
				return tx.Exec(query).Error
			})
			if err != nil {
				return errors.Wrapf(err, "failed to execute migration %s", name)
			}

			logrus.Infof("applied migration %s", name)

			return nil
		},
	}
}
