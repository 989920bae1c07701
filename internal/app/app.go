package app

import (
	"net/http"

	"finance-flow/internal/config"
	"finance-flow/internal/db"
	analyticsdomain "finance-flow/internal/domain/analytics"
	expensesdomain "finance-flow/internal/domain/expenses"
	analyticsrepo "finance-flow/internal/repository/analytics"
	expensesrepo "finance-flow/internal/repository/expenses"
	"finance-flow/internal/repository/inmemory"
	"finance-flow/internal/transport/httpserver"
	"finance-flow/internal/transport/httpserver/handler"
	"finance-flow/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database", "driver", cfg.DB.Driver)
	dbConn, err := db.New(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	expensesService := expensesdomain.NewServiceWithCache(
		expensesrepo.NewGorm(dbConn),
		inmemory.NewCategoriesCache(),
		cfg.Analytics.CategoriesCacheTTL,
	)
	analyticsService := analyticsdomain.NewServiceWithConfig(
		analyticsrepo.NewGorm(dbConn),
		analyticsdomain.Config{WindowDays: cfg.Analytics.WindowDays},
	)

	log.Info("app: initializing router")
	handlers := handler.New(expensesService, analyticsService, log)
	router := httpserver.NewRouter(cfg, handlers)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
