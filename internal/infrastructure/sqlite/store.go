// Package sqlite implementa el almacenamiento de clientes sobre un archivo SQLite
// (driver puro Go modernc.org/sqlite), útil en local y para despliegues de un solo nodo.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/azimuth-crm/internal/application/usecase"
	"github.com/jhoicas/azimuth-crm/internal/domain/repository"
	_ "modernc.org/sqlite"
)

var _ usecase.TxRunner = (*Store)(nil)

// Store agrupa la conexión SQLite y construye repositorios sobre ella.
type Store struct {
	db *sql.DB
}

// NewStore abre (o crea) la base en path.
func NewStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// SQLite serializa escrituras; una conexión evita SQLITE_BUSY entre goroutines.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		`PRAGMA foreign_keys = ON;`,
		`PRAGMA journal_mode = WAL;`,
		`PRAGMA busy_timeout = 5000;`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite %s: %w", pragma, err)
		}
	}
	return &Store{db: db}, nil
}

// Close cierra la base.
func (s *Store) Close() error { return s.db.Close() }

// Ping verifica que la base responde.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Clients devuelve el repositorio de clientes sobre la conexión principal.
func (s *Store) Clients() *ClientRepo {
	return NewClientRepository(s.db)
}

// Run ejecuta fn dentro de una transacción, con Commit si fn no devuelve error.
func (s *Store) Run(ctx context.Context, fn func(clients repository.ClientRepository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewClientRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
