package cmd

import (
	"context"

	"medStudyBot/pkg/auth"
	"medStudyBot/pkg/glossary"
	"medStudyBot/pkg/health"
	"medStudyBot/pkg/help"
	"medStudyBot/pkg/metrics"
	"medStudyBot/pkg/msg"
	"medStudyBot/pkg/study"
	"medStudyBot/pkg/telegram"
)

func BuildMessageRouter(app *App, checker *health.Checker) (*msg.Router, error) {
	authMiddleware, err := auth.BuildMiddleware(app.Cache, app.T)
	if err != nil {
		return nil, err
	}

	deps := &study.Deps{
		Store:     app.Store,
		Formatter: app.Documents.Formatter,
		Renderer:  app.Documents.Generator,
		Publisher: app.Telegraph,
		T:         app.T,
	}

	startHandler := &telegram.StartHandler{T: app.T}
	lookupHandler := &glossary.LookupHandler{Store: app.Store, T: app.T}
	detectHandler := &glossary.DetectHandler{Store: app.Store, T: app.T, Limit: glossary.DefaultFindLimit}
	pdfHandler := &study.PDFHandler{Deps: deps}
	studyPDFHandler := &study.StudyPDFHandler{Deps: deps}
	publishHandler := &study.PublishHandler{Deps: deps}
	myIDHandler := &telegram.MyIDHandler{T: app.T}
	healthHandler := &health.Handler{Checker: checker, T: app.T}
	statsHandler := &glossary.StatsHandler{Store: app.Store, T: app.T}
	editHandler := &glossary.EditHandler{Store: app.Store, T: app.T}

	helpHandler := &help.Handler{
		Providers: []help.Provider{
			lookupHandler,
			detectHandler,
			pdfHandler,
			studyPDFHandler,
			publishHandler,
			myIDHandler,
			healthHandler,
			statsHandler,
			editHandler,
		},
		T: app.T,
	}

	r := msg.NewRouter()
	r.Register(msg.CommandStart, startHandler)
	r.Register(msg.CommandHelp, helpHandler)
	r.Register(msg.CommandTerm, lookupHandler)
	r.Register(msg.CommandTerms, detectHandler)
	r.Register(msg.CommandPDF, pdfHandler)
	r.Register(msg.CommandStudyPDF, studyPDFHandler)
	r.Register(msg.CommandPublish, publishHandler)
	r.Register(msg.CommandMyID, myIDHandler)
	r.Register(msg.CommandHealth, healthHandler)
	r.Register(msg.CommandStats, statsHandler)
	r.Register(msg.CommandAddTerm, editHandler)
	r.HandleText(detectHandler)
	r.HandleUnknown(msg.HandlerFunc(unsupportedCommand(app)))

	r.UseMiddleware(authMiddleware)
	r.WithObserver(metrics.CommandObserver{})

	return r, nil
}

func unsupportedCommand(app *App) msg.HandlerFunc {
	return func(_ context.Context, req *msg.Request) (*msg.Response, error) {
		return msg.NewErrorResponse(app.T.T("common.unsupported", req.Message)), nil
	}
}
