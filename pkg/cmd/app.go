package cmd

import (
	"context"

	"medStudyBot/pkg/db"
	"medStudyBot/pkg/document"
	"medStudyBot/pkg/glossary"
	"medStudyBot/pkg/health"
	"medStudyBot/pkg/i18n"
	"medStudyBot/pkg/migrate"
	"medStudyBot/pkg/storage"
	"medStudyBot/pkg/telegraph"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds the shared dependencies of the sub-commands.
type App struct {
	Conn      *sqlx.DB
	ORM       *gorm.DB
	Cache     *storage.RedisClient
	T         *i18n.Translator
	Store     glossary.Store
	Documents *document.Components
	Telegraph *telegraph.Client
}

func BuildApp(ctx context.Context) (app *App, err error) {
	app = &App{}
	defer func() {
		if err != nil {
			app.Close()
		}
	}()

	app.Conn, err = db.NewConn()
	if err != nil {
		return nil, err
	}

	app.ORM, err = db.NewORM(app.Conn)
	if err != nil {
		return nil, err
	}

	err = migrate.Execute(app.ORM)
	if err != nil {
		return nil, err
	}

	app.Cache, err = storage.BuildRedisClient()
	if err != nil {
		return nil, err
	}

	app.T, err = i18n.Build()
	if err != nil {
		return nil, err
	}

	app.Store, err = glossary.BuildStore(ctx, app.Conn, app.Cache)
	if err != nil {
		return nil, err
	}

	app.Documents, err = document.Build(app.T)
	if err != nil {
		return nil, err
	}

	app.Telegraph, err = telegraph.Build()
	if err != nil {
		return nil, err
	}

	return app, nil
}

func (a *App) Checker(telegramToken string) *health.Checker {
	return health.NewChecker(health.DefaultTimeout,
		health.Configured("telegram token", telegramToken),
		health.Check{Name: "wkhtmltopdf", Fn: func(context.Context) error {
			return a.Documents.Engine.Available()
		}},
		health.Check{Name: "redis", Fn: a.Cache.Ping},
		health.Check{Name: "database", Fn: a.Conn.PingContext},
		health.Check{Name: "telegraph", Fn: func(context.Context) error {
			if !a.Telegraph.IsConfigured() {
				return health.ErrMissing
			}
			return nil
		}},
	)
}

func (a *App) Close() {
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			logrus.Warnf("failed to close redis client: %v", err)
		}
	}

	if a.Conn != nil {
		if err := a.Conn.Close(); err != nil {
			logrus.Warnf("failed to close db: %v", err)
		}
	}
}
