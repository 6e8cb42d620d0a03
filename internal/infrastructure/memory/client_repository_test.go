package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/azimuth-crm/internal/domain"
	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
	"github.com/jhoicas/azimuth-crm/internal/infrastructure/memory"
)

func TestClientRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClientRepository()

	c := entity.NewClientWithTaxID("Azimut Plus", "7701234567")
	require.NoError(t, repo.Create(ctx, c))
	assert.Equal(t, int64(1), c.ID)

	// Los valores devueltos son copias.
	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	got.CompanyName = "cambiado"
	again, _ := repo.GetByID(ctx, c.ID)
	assert.Equal(t, "Azimut Plus", again.CompanyName)

	c.Email = "office@azimutplus.ru"
	require.NoError(t, repo.Update(ctx, c))
	again, _ = repo.GetByID(ctx, c.ID)
	assert.Equal(t, "office@azimutplus.ru", again.Email)

	require.NoError(t, repo.Delete(ctx, c.ID))
	missing, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.ErrorIs(t, repo.Delete(ctx, c.ID), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, c), domain.ErrNotFound)
}

func TestClientRepository_ListOrdenadoYPaginado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClientRepository()
	for _, name := range []string{"A", "B", "C", "D"} {
		require.NoError(t, repo.Create(ctx, entity.NewClientWithTaxID(name, "")))
	}

	page, err := repo.List(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "B", page[0].CompanyName)
	assert.Equal(t, "C", page[1].CompanyName)

	empty, err := repo.List(ctx, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestClientRepository_CreateConcurrente(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewClientRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, entity.NewClient())
		}()
	}
	wg.Wait()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 50)
	for i, c := range all {
		assert.Equal(t, int64(i+1), c.ID)
	}
}
