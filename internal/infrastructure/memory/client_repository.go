// Package memory guarda clientes en memoria del proceso. Sirve para DB_DRIVER=memory
// (demos sin base de datos) y como doble de pruebas de los casos de uso.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/azimuth-crm/internal/domain"
	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
	"github.com/jhoicas/azimuth-crm/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepository)(nil)

// ClientRepository repositorio en memoria con IDs autoincrementales.
type ClientRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]entity.Client
}

// NewClientRepository crea un repositorio vacío.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{rows: make(map[int64]entity.Client)}
}

func (r *ClientRepository) Create(_ context.Context, client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	client.ID = r.nextID
	r.rows[client.ID] = *client
	return nil
}

func (r *ClientRepository) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ClientRepository) List(_ context.Context, limit, offset int) ([]*entity.Client, error) {
	all := r.sorted()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *ClientRepository) ListAll(_ context.Context) ([]*entity.Client, error) {
	return r.sorted(), nil
}

func (r *ClientRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows), nil
}

func (r *ClientRepository) Update(_ context.Context, client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[client.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rows[client.ID] = *client
	return nil
}

func (r *ClientRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// Run ejecuta fn sobre el mismo repositorio; no hay rollback en memoria.
func (r *ClientRepository) Run(_ context.Context, fn func(clients repository.ClientRepository) error) error {
	return fn(r)
}

func (r *ClientRepository) sorted() []*entity.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Client, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
