package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
	"github.com/jhoicas/azimuth-crm/internal/domain/repository"
)

// SeedUseCase carga clientes de demostración en una base vacía.
type SeedUseCase struct {
	tx TxRunner
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(tx TxRunner) *SeedUseCase {
	return &SeedUseCase{tx: tx}
}

// SeedIfEmpty inserta clients en una única transacción solo si no hay ningún cliente.
// Devuelve cuántos se insertaron.
func (uc *SeedUseCase) SeedIfEmpty(ctx context.Context, clients []*entity.Client) (int, error) {
	inserted := 0
	err := uc.tx.Run(ctx, func(repo repository.ClientRepository) error {
		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		for _, c := range clients {
			if err := repo.Create(ctx, c); err != nil {
				return fmt.Errorf("seed %q: %w", c.CompanyName, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// DemoClients devuelve los clientes de demostración.
func DemoClients() []*entity.Client {
	technoprofi := entity.NewClientWithTaxID(`ООО "ТехноПрофи"`, "7707083893")
	technoprofi.ContactPerson = "ТехноПрофи"
	technoprofi.Phone = "+79991234567"
	technoprofi.Email = "info@technoprofi.ru"

	ivanov := entity.NewClientWithTaxID("ИП Иванов А.С.", "500100732259")
	ivanov.ContactPerson = "Иванов А.С."
	ivanov.Phone = "+79998887766"
	ivanov.Email = "ivanov@mail.ru"

	azimut := entity.NewClientWithTaxID("Азимут Плюс", "7701234567")
	azimut.ContactPerson = "Азимут Плюс"
	azimut.Phone = "+78002005050"
	azimut.Email = "office@azimutplus.ru"

	return []*entity.Client{technoprofi, ivanov, azimut}
}
