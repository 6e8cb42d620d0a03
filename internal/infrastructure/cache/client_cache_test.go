package cache_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/azimuth-crm/internal/domain"
	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
	"github.com/jhoicas/azimuth-crm/internal/infrastructure/cache"
	"github.com/jhoicas/azimuth-crm/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// countingRepo cuenta lecturas por ID y permite pausar una lectura ya hecha.
type countingRepo struct {
	*memory.ClientRepository
	calls atomic.Int32

	// afterRead, si no es nil, se ejecuta con el cliente ya leído y antes de devolverlo.
	afterRead func()
}

func (r *countingRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	c, err := r.ClientRepository.GetByID(ctx, id)
	r.calls.Add(1)
	if r.afterRead != nil {
		r.afterRead()
	}
	return c, err
}

func newCached(t *testing.T) (*cache.ClientRepository, *countingRepo) {
	t.Helper()
	inner := &countingRepo{ClientRepository: memory.NewClientRepository()}
	repo, err := cache.NewClientRepository(inner, 100, time.Minute)
	require.NoError(t, err)
	t.Cleanup(repo.Close)
	return repo, inner
}

func TestClientCache_GetByIDLeeDeCache(t *testing.T) {
	repo, inner := newCached(t)
	ctx := context.Background()

	c := entity.NewClientWithTaxID("Азимут Плюс", "123")
	require.NoError(t, repo.Create(ctx, c))
	repo.Wait()

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Азимут Плюс", got.CompanyName)
	assert.Zero(t, inner.calls.Load(), "Create debe precargar la caché")
}

func TestClientCache_CopiaNoAliasada(t *testing.T) {
	repo, _ := newCached(t)
	ctx := context.Background()

	c := entity.NewClientWithTaxID("Original", "1")
	require.NoError(t, repo.Create(ctx, c))
	repo.Wait()

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	got.CompanyName = "Mutado"

	again, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.CompanyName)
}

func TestClientCache_MissConsultaRepositorio(t *testing.T) {
	repo, inner := newCached(t)
	ctx := context.Background()

	c := entity.NewClientWithTaxID("Directo", "2")
	require.NoError(t, inner.Create(ctx, c)) // fuera de la caché

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.EqualValues(t, 1, inner.calls.Load())

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClientCache_UpdateYDeleteInvalidan(t *testing.T) {
	repo, _ := newCached(t)
	ctx := context.Background()

	c := entity.NewClientWithTaxID("Antes", "3")
	require.NoError(t, repo.Create(ctx, c))
	repo.Wait()

	c.CompanyName = "Después"
	require.NoError(t, repo.Update(ctx, c))
	repo.Wait()

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Después", got.CompanyName)

	require.NoError(t, repo.Delete(ctx, c.ID))
	repo.Wait()

	got, err = repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Update(ctx, c), domain.ErrNotFound)
}

// Una lectura que empezó antes de una escritura no debe dejar en caché el valor viejo.
func TestClientCache_LecturaConcurrenteNoDejaValorViejo(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		write func(repo *cache.ClientRepository, c *entity.Client) error
		want  func(t *testing.T, got *entity.Client)
	}{
		{
			name: "update",
			write: func(repo *cache.ClientRepository, c *entity.Client) error {
				c.CompanyName = "Después"
				return repo.Update(ctx, c)
			},
			want: func(t *testing.T, got *entity.Client) {
				require.NotNil(t, got)
				assert.Equal(t, "Después", got.CompanyName)
			},
		},
		{
			name: "delete",
			write: func(repo *cache.ClientRepository, c *entity.Client) error {
				return repo.Delete(ctx, c.ID)
			},
			want: func(t *testing.T, got *entity.Client) {
				assert.Nil(t, got)
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, inner := newCached(t)

			c := entity.NewClientWithTaxID("Antes", "4")
			require.NoError(t, inner.Create(ctx, c)) // fuera de la caché

			read := make(chan struct{})
			release := make(chan struct{})
			inner.afterRead = func() {
				close(read)
				<-release
			}

			done := make(chan *entity.Client)
			go func() {
				got, _ := repo.GetByID(ctx, c.ID)
				done <- got
			}()

			<-read
			stale := *c
			require.NoError(t, tc.write(repo, &stale))
			repo.Wait()
			close(release)

			first := <-done
			require.NotNil(t, first)
			assert.Equal(t, "Antes", first.CompanyName, "la lectura en curso devuelve lo que leyó")
			inner.afterRead = nil
			repo.Wait()

			got, err := repo.GetByID(ctx, c.ID)
			require.NoError(t, err)
			tc.want(t, got)
		})
	}
}
