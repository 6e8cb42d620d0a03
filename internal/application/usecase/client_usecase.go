package usecase

import (
	"context"

	"github.com/jhoicas/azimuth-crm/internal/application/dto"
	"github.com/jhoicas/azimuth-crm/internal/domain"
	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
	"github.com/jhoicas/azimuth-crm/internal/domain/repository"
)

// ClientUseCase casos de uso del registro de clientes.
// No valida contenido: cualquier combinación de campos es un cliente válido.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create da de alta un cliente. El ID lo asigna la persistencia.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client := entity.NewClientWithTaxID(in.CompanyName, in.TaxID)
	client.ContactPerson = in.ContactPerson
	client.Phone = in.Phone
	client.Email = in.Email
	if in.CreatedAt != nil {
		client.CreatedAt = *in.CreatedAt
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return entityToClientResponse(client), nil
}

// GetByID obtiene un cliente; domain.ErrNotFound si no existe.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToClientResponse(client), nil
}

// List lista clientes con paginación y total.
func (uc *ClientUseCase) List(ctx context.Context, limit, offset int) (*dto.ClientListResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()

	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update reemplaza todos los campos editables. Si CreatedAt es nil se conserva.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	client.CompanyName = in.CompanyName
	client.TaxID = in.TaxID
	client.ContactPerson = in.ContactPerson
	client.Phone = in.Phone
	client.Email = in.Email
	if in.CreatedAt != nil {
		client.CreatedAt = *in.CreatedAt
	}
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return entityToClientResponse(client), nil
}

// Patch aplica solo los campos presentes en la petición.
func (uc *ClientUseCase) Patch(ctx context.Context, id int64, in dto.PatchClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CompanyName != nil {
		client.CompanyName = *in.CompanyName
	}
	if in.TaxID != nil {
		client.TaxID = *in.TaxID
	}
	if in.ContactPerson != nil {
		client.ContactPerson = *in.ContactPerson
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.CreatedAt != nil {
		client.CreatedAt = *in.CreatedAt
	}
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return entityToClientResponse(client), nil
}

// Delete elimina un cliente; domain.ErrNotFound si no existe.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ClientUseCase) get(ctx context.Context, id int64) (*entity.Client, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func entityToClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:            c.ID,
		CompanyName:   c.CompanyName,
		TaxID:         c.TaxID,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		CreatedAt:     c.CreatedAt,
	}
}
