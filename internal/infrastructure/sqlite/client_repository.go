package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/azimuth-crm/internal/domain"
	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
	"github.com/jhoicas/azimuth-crm/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// DBTX es lo común entre *sql.DB y *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const clientColumns = `id, company_name, tax_id, contact_person, phone, email, created_at`

// ClientRepo implementación SQLite de ClientRepository.
type ClientRepo struct {
	db DBTX
}

// NewClientRepository construye el adaptador sobre la base o una transacción.
func NewClientRepository(db DBTX) *ClientRepo {
	return &ClientRepo{db: db}
}

// Create inserta el cliente y asigna el ID autoincremental.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (company_name, tax_id, contact_person, phone, email, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		client.CompanyName, client.TaxID,
		mapStringNull(client.ContactPerson), mapStringNull(client.Phone), mapStringNull(client.Email),
		client.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert client: last id: %w", err)
	}
	client.ID = id
	return nil
}

// GetByID obtiene un cliente por ID; (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List lista clientes por orden de alta con paginación.
func (r *ClientRepo) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
}

// ListAll devuelve todos los clientes.
func (r *ClientRepo) ListAll(ctx context.Context) ([]*entity.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
}

func (r *ClientRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count devuelve el total de clientes.
func (r *ClientRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

// Update reemplaza todos los campos salvo el ID.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET company_name = ?, tax_id = ?, contact_person = ?, phone = ?, email = ?, created_at = ?
		WHERE id = ?`,
		client.CompanyName, client.TaxID,
		mapStringNull(client.ContactPerson), mapStringNull(client.Phone), mapStringNull(client.Email),
		client.CreatedAt.UTC(), client.ID,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return checkAffected(res)
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return checkAffected(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(s scanner) (*entity.Client, error) {
	var (
		c                           entity.Client
		contactPerson, phone, email sql.NullString
	)
	if err := s.Scan(&c.ID, &c.CompanyName, &c.TaxID, &contactPerson, &phone, &email, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.ContactPerson = mapNullString(contactPerson)
	c.Phone = mapNullString(phone)
	c.Email = mapNullString(email)
	return &c, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
