// Package server wires the session store, seeder, domain services and
// HTTP surface into a runnable application.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"ems/internal/domain/announcements"
	"ems/internal/domain/attendance"
	"ems/internal/domain/core"
	"ems/internal/domain/identity"
	"ems/internal/domain/leave"
	"ems/internal/domain/payroll"
	"ems/internal/domain/performance"
	"ems/internal/domain/reports"
	"ems/internal/domain/timesheet"
	"ems/internal/platform/config"
	"ems/internal/platform/session"
	"ems/internal/seed"
	"ems/internal/storage"
	announcementshandler "ems/internal/transport/http/handlers/announcements"
	attendancehandler "ems/internal/transport/http/handlers/attendance"
	authhandler "ems/internal/transport/http/handlers/auth"
	corehandler "ems/internal/transport/http/handlers/core"
	leavehandler "ems/internal/transport/http/handlers/leave"
	payrollhandler "ems/internal/transport/http/handlers/payroll"
	performancehandler "ems/internal/transport/http/handlers/performance"
	reportshandler "ems/internal/transport/http/handlers/reports"
	timesheethandler "ems/internal/transport/http/handlers/timesheet"
	"ems/internal/transport/http/middleware"
)

type App struct {
	Config   config.Config
	Store    session.Store
	Repo     *storage.Repository
	Identity *identity.Service
	Router   http.Handler
}

// New builds the full application around one session store. Closing the
// app ends the session and wipes its state.
func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		store session.Store
		err   error
	)
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		store, err = session.OpenSQLite(cfg.SQLiteDSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
	default:
		store = session.NewMemoryStore()
	}

	repo := storage.NewRepository(store)

	if cfg.RunSeed {
		seeder := seed.New(repo, cfg.DemoAdminEmail, cfg.DemoAdminPassword, cfg.DemoEmployeePassword)
		if err := seeder.SeedIfNeeded(); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	identitySvc := identity.NewService(repo)
	coreSvc := core.NewService(repo, cfg.DemoEmployeePassword)
	attendanceSvc := attendance.NewService(repo)
	leaveSvc := leave.NewService(repo)
	timesheetSvc := timesheet.NewService(repo)
	payrollSvc := payroll.NewService(repo, coreSvc)
	performanceSvc := performance.NewService(repo)
	announcementsSvc := announcements.NewService(repo)
	reportsSvc := reports.NewService(repo, coreSvc)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Auth(cfg.JWTSecret, identitySvc))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(identitySvc, cfg.JWTSecret).RegisterRoutes(r)
		corehandler.NewHandler(coreSvc).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceSvc).RegisterRoutes(r)
		leavehandler.NewHandler(leaveSvc).RegisterRoutes(r)
		timesheethandler.NewHandler(timesheetSvc).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollSvc).RegisterRoutes(r)
		performancehandler.NewHandler(performanceSvc).RegisterRoutes(r)
		announcementshandler.NewHandler(announcementsSvc).RegisterRoutes(r)
		reportshandler.NewHandler(reportsSvc).RegisterRoutes(r)
	})

	return &App{
		Config:   cfg,
		Store:    store,
		Repo:     repo,
		Identity: identitySvc,
		Router:   router,
	}, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}

func (a *App) ListenAndServe() error {
	slog.Info("EMS server listening", "addr", a.Config.Addr, "store", a.Config.StoreBackend)
	return http.ListenAndServe(a.Config.Addr, a.Router)
}
