// Package bootstrap arma el almacenamiento de clientes según la configuración.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/azimuth-crm/internal/application/usecase"
	"github.com/jhoicas/azimuth-crm/internal/domain/repository"
	"github.com/jhoicas/azimuth-crm/internal/infrastructure/cache"
	"github.com/jhoicas/azimuth-crm/internal/infrastructure/memory"
	"github.com/jhoicas/azimuth-crm/internal/infrastructure/postgres"
	"github.com/jhoicas/azimuth-crm/internal/infrastructure/sqlite"
	"github.com/jhoicas/azimuth-crm/pkg/config"
	"github.com/jhoicas/azimuth-crm/pkg/logger"
)

// Storage repositorio de clientes listo para usar y sus recursos asociados.
type Storage struct {
	Clients repository.ClientRepository
	Tx      usecase.TxRunner
	Ping    func(ctx context.Context) error

	closers []func()
}

// Close libera caché y conexiones en orden inverso de apertura.
func (s *Storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// OpenStorage abre el driver configurado, aplica migraciones si DB_AUTO_MIGRATE
// y envuelve el repositorio con la caché cuando CACHE_ENABLED.
func OpenStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Storage, error) {
	s := &Storage{}

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		s.closers = append(s.closers, pool.Close)
		if cfg.DB.AutoMigrate {
			if err := postgres.ApplyMigrations(pool); err != nil {
				s.Close()
				return nil, fmt.Errorf("migraciones PostgreSQL: %w", err)
			}
		}
		s.Clients = postgres.NewClientRepository(pool)
		s.Tx = postgres.NewTxRunner(pool)
		s.Ping = pool.Ping

	case config.DriverSQLite:
		store, err := sqlite.NewStore(ctx, cfg.DB.SQLitePath)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() {
			if err := store.Close(); err != nil {
				log.Warn().Err(err).Msg("cerrar sqlite")
			}
		})
		if cfg.DB.AutoMigrate {
			if err := store.ApplyMigrations(); err != nil {
				s.Close()
				return nil, fmt.Errorf("migraciones SQLite: %w", err)
			}
		}
		s.Clients = store.Clients()
		s.Tx = store
		s.Ping = store.Ping

	case config.DriverMemory:
		repo := memory.NewClientRepository()
		s.Clients = repo
		s.Tx = repo

	default:
		return nil, fmt.Errorf("DB_DRIVER no soportado: %q", cfg.DB.Driver)
	}

	if cfg.Cache.Enabled {
		cached, err := cache.NewClientRepository(s.Clients, cfg.Cache.MaxItems, cfg.Cache.TTL)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("caché de clientes: %w", err)
		}
		s.closers = append(s.closers, cached.Close)
		s.Clients = cached
	}

	log.Info().
		Str("driver", cfg.DB.Driver).
		Bool("cache", cfg.Cache.Enabled).
		Msg("almacenamiento listo")
	return s, nil
}
