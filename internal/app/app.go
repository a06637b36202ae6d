package app

import (
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"

	"school-link-go/internal/config"
	"school-link-go/internal/db"
	"school-link-go/internal/notify"
	"school-link-go/internal/state"
	"school-link-go/internal/store"
	"school-link-go/internal/transport/httpserver"
	"school-link-go/internal/transport/httpserver/handler"
	"school-link-go/pkg/logger"
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

	log.Info("app: opening local store", "path", cfg.DB.Path)
	dbConn, err := db.NewSQLite(cfg.DB)
	if err != nil {
		return nil, err
	}

	blobs, err := store.New(dbConn, log)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ctx := context.Background()
	holder := state.NewHolder(state.Snapshot{
		Users:    blobs.LoadUsers(ctx),
		Groups:   blobs.LoadGroups(ctx),
		Messages: blobs.LoadMessages(ctx, now),
		Tables:   store.SeedTables(),
	}, blobs)

	mailer := notify.NewConsoleMailer(log)
	handlers := handler.New(holder, mailer, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers)
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
