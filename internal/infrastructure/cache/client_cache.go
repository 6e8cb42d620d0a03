// Package cache implementa una caché L1 en proceso (dgraph-io/ristretto) delante del
// repositorio de clientes.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
	"github.com/jhoicas/azimuth-crm/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepository)(nil)

// ClientRepository decora un repositorio con lectura a través de caché por ID.
// Los valores guardados son copias: mutar un cliente devuelto no altera la caché.
//
// La caché es local al proceso: escrituras de otras réplicas o de cmd/seed no la
// invalidan y solo expiran por TTL.
type ClientRepository struct {
	next  repository.ClientRepository
	cache *ristretto.Cache[int64, entity.Client]
	ttl   time.Duration

	// gen se incrementa en cada Update/Delete. Un GetByID que falló en
	// caché solo guarda lo leído si no hubo escrituras mientras consultaba next.
	mu  sync.Mutex
	gen uint64
}

// NewClientRepository construye la caché. maxItems acota el número de clientes en memoria.
func NewClientRepository(next repository.ClientRepository, maxItems int64, ttl time.Duration) (*ClientRepository, error) {
	if maxItems <= 0 {
		maxItems = 10000
	}
	c, err := ristretto.NewCache(&ristretto.Config[int64, entity.Client]{
		NumCounters: maxItems * 10, // ~10x elementos esperados
		MaxCost:     maxItems,
		BufferItems: 64,
		// El coste es 1 por cliente; sin esto ristretto suma el tamaño interno de cada entrada.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &ClientRepository{next: next, cache: c, ttl: ttl}, nil
}

// Close libera los recursos de la caché.
func (r *ClientRepository) Close() {
	r.cache.Close()
}

// Wait bloquea hasta que las escrituras en buffer son visibles (tests).
func (r *ClientRepository) Wait() {
	r.cache.Wait()
}

func (r *ClientRepository) Create(ctx context.Context, client *entity.Client) error {
	if err := r.next.Create(ctx, client); err != nil {
		return err
	}
	r.store(client)
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	if v, ok := r.cache.Get(id); ok {
		return &v, nil
	}
	r.mu.Lock()
	start := r.gen
	r.mu.Unlock()

	client, err := r.next.GetByID(ctx, id)
	if err != nil || client == nil {
		return client, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen == start {
		r.store(client)
	}
	return client, nil
}

func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	return r.next.List(ctx, limit, offset)
}

func (r *ClientRepository) ListAll(ctx context.Context) ([]*entity.Client, error) {
	return r.next.ListAll(ctx)
}

func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	return r.next.Count(ctx)
}

// Update invalida la entrada; la siguiente lectura la recarga desde next.
func (r *ClientRepository) Update(ctx context.Context, client *entity.Client) error {
	err := r.next.Update(ctx, client)
	r.invalidate(client.ID)
	return err
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	err := r.next.Delete(ctx, id)
	r.invalidate(id)
	return err
}

// invalidate se llama después de escribir en next, también si falló.
func (r *ClientRepository) invalidate(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.cache.Del(id)
}

func (r *ClientRepository) store(client *entity.Client) {
	if !client.HasID() {
		return
	}
	r.cache.SetWithTTL(client.ID, *client, 1, r.ttl)
}
