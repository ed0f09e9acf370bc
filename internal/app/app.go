package app

import (
	"context"
	"fmt"
	"log/slog"

	"visitlog/internal/config"
	"visitlog/internal/core"
	"visitlog/internal/modules/status"
	"visitlog/internal/modules/visits"
	"visitlog/internal/storage"
	"visitlog/internal/storage/sqlite"
	"visitlog/internal/transports/common"
	"visitlog/internal/visit"
)

// App агрегирует зависимости журнала посещений.
type App struct {
	Registry   *core.Registry
	Collection *visit.Collection
	Service    *common.Service
	Store      storage.Store
	Config     config.Config
	Log        *slog.Logger
}

// New строит приложение: загружает файл данных, регистрирует модули
// и при необходимости открывает журнал аудита.
func New(ctx context.Context, cfg config.Config, lg *slog.Logger) (*App, error) {
	res, err := visit.Load(cfg.Data.Path)
	if err != nil {
		return nil, fmt.Errorf("load data file: %w", err)
	}
	if res.Created {
		lg.Info("file not found, will be created on save", "path", cfg.Data.Path)
	}
	for _, skip := range res.Skipped {
		lg.Warn("row skipped", "path", cfg.Data.Path, "line", skip.Line, "err", skip.Err)
	}

	r := core.NewRegistry()
	if err := r.Register(ctx, &visits.Module{DataPath: cfg.Data.Path, Collection: res.Collection}); err != nil {
		return nil, fmt.Errorf("register visits module: %w", err)
	}
	if err := r.Register(ctx, &status.Module{DataPath: cfg.Data.Path, Collection: res.Collection}); err != nil {
		return nil, fmt.Errorf("register status module: %w", err)
	}

	var st storage.Store
	var sink common.AuditSink
	if cfg.Audit.Enabled {
		sq, err := sqlite.Open(cfg.Audit.Path)
		if err != nil {
			return nil, fmt.Errorf("open audit storage: %w", err)
		}
		st = sq
		sink = sq
	}

	return &App{
		Registry:   r,
		Collection: res.Collection,
		Service:    &common.Service{Source: "cli", Registry: r, AuditSink: sink},
		Store:      st,
		Config:     cfg,
		Log:        lg,
	}, nil
}

// Close высвобождает ресурсы приложения.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
