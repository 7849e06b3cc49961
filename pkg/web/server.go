package web

import (
	"context"
	"crypto/subtle"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"time"

	"medStudyBot/pkg/auth"
	"medStudyBot/pkg/glossary"
	"medStudyBot/pkg/health"
	"medStudyBot/pkg/hydrate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const exportPageSize = 1000

type RunReader interface {
	Last(ctx context.Context) (*hydrate.Run, error)
}

type Server struct {
	cfg     *Config
	store   glossary.Store
	runs    RunReader
	checker *health.Checker
	srv     *http.Server
}

func NewServer(cfg *Config, store glossary.Store, runs RunReader, checker *health.Checker) *Server {
	s := &Server{
		cfg:     cfg,
		store:   store,
		runs:    runs,
		checker: checker,
	}

	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", s.healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/admin", func(r chi.Router) {
		r.Use(s.basicAuth)
		r.Get("/glossary/stats", s.glossaryStats)
		r.Get("/glossary/export.csv", s.glossaryExport)
	})

	return r
}

// Start blocks until the server is shut down.
func (s *Server) Start() error {
	logrus.Infof("web server listening on %s", s.cfg.Addr)

	err := s.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "failed to serve on %s", s.cfg.Addr)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	return errors.Wrap(s.srv.Shutdown(ctx), "failed to shutdown web server")
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logrus.WithContext(r.Context()).WithFields(logrus.Fields{
			"requestID": middleware.GetReqID(r.Context()),
			"status":    ww.Status(),
			"duration":  time.Since(start).String(),
		}).Debugf("%s %s", r.Method, r.URL.Path)
	})
}

func (s *Server) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || !s.cfg.AdminEnabled() ||
			subtle.ConstantTimeCompare([]byte(user), []byte(s.cfg.AdminUser)) != 1 ||
			!auth.CheckPassword(s.cfg.AdminPasswordHash, pass) {
			w.Header().Set("WWW-Authenticate", `Basic realm="admin", charset="UTF-8"`)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type checkResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	results := s.checker.Run(r.Context())

	body := struct {
		Healthy bool          `json:"healthy"`
		Checks  []checkResult `json:"checks"`
	}{Healthy: health.Healthy(results)}

	for _, res := range results {
		cr := checkResult{Name: res.Name, Status: "ok"}
		switch {
		case res.Missing():
			cr.Status = "missing"
		case !res.OK():
			cr.Status = "failed"
			cr.Error = res.Err.Error()
		}
		body.Checks = append(body.Checks, cr)
	}

	status := http.StatusOK
	if !body.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(r.Context(), w, status, body)
}

func (s *Server) glossaryStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := s.store.Count(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lastRun, err := s.runs.Last(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, struct {
		Entries      int          `json:"entries"`
		LastHydrated *hydrate.Run `json:"last_hydration"`
	}{Entries: count, LastHydrated: lastRun})
}

func (s *Server) glossaryExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	first, err := s.store.List(ctx, 0, exportPageSize)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="glossary.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"term", "translated_term", "definition", "category", "source", "updated_at"})

	page, offset := first, 0
	for len(page) > 0 {
		for _, e := range page {
			_ = cw.Write([]string{
				e.Term,
				e.TranslatedTerm,
				e.Definition,
				e.Category,
				e.Source,
				e.UpdatedAt.UTC().Format(time.RFC3339),
			})
		}
		if len(page) < exportPageSize {
			break
		}

		offset += len(page)
		page, err = s.store.List(ctx, offset, exportPageSize)
		if err != nil {
			// headers are gone already, the client gets a cut file
			logrus.WithContext(ctx).Errorf("glossary export stopped at %d: %v", offset, err)
			break
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		logrus.WithContext(ctx).Warnf("failed to write glossary export: %v", err)
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithContext(ctx).Warnf("failed to write response: %v", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	logrus.WithContext(ctx).Errorf("admin request failed: %v", err)
	writeJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
