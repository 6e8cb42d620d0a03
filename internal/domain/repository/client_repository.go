package repository

import (
	"context"

	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// El identificador lo asigna el almacenamiento en Create.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	// GetByID devuelve (nil, nil) si el cliente no existe.
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Client, error)
	ListAll(ctx context.Context) ([]*entity.Client, error)
	Count(ctx context.Context) (int, error)
	// Update y Delete devuelven domain.ErrNotFound si no hay fila afectada.
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id int64) error
}
