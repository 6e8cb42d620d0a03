package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/azimuth-crm/internal/application/usecase"
	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
	"github.com/jhoicas/azimuth-crm/internal/infrastructure/memory"
)

func TestSeedUseCase_InsertaSoloEnBaseVacia(t *testing.T) {
	repo := memory.NewClientRepository()
	uc := usecase.NewSeedUseCase(repo)
	ctx := context.Background()

	n, err := uc.SeedIfEmpty(ctx, usecase.DemoClients())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = uc.SeedIfEmpty(ctx, usecase.DemoClients())
	require.NoError(t, err)
	assert.Zero(t, n, "una base con datos no se vuelve a sembrar")

	total, _ := repo.Count(ctx)
	assert.Equal(t, 3, total)
}

func TestSeedUseCase_NoTocaBaseConDatos(t *testing.T) {
	repo := memory.NewClientRepository()
	require.NoError(t, repo.Create(context.Background(), entity.NewClientWithTaxID("Existente", "1")))

	n, err := usecase.NewSeedUseCase(repo).SeedIfEmpty(context.Background(), usecase.DemoClients())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDemoClients(t *testing.T) {
	clients := usecase.DemoClients()
	require.Len(t, clients, 3)
	for _, c := range clients {
		assert.NotEmpty(t, c.CompanyName)
		assert.NotEmpty(t, c.TaxID)
		assert.NotEmpty(t, c.Email)
		assert.False(t, c.HasID())
	}
}
