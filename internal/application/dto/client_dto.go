package dto

import "time"

// CreateClientRequest body para POST /api/clients.
// El ID no se acepta: lo asigna la base de datos.
type CreateClientRequest struct {
	CompanyName   string     `json:"company_name"`
	TaxID         string     `json:"tax_id"`
	ContactPerson string     `json:"contact_person,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"` // opcional; por defecto el instante de alta
}

// UpdateClientRequest body para PUT /api/clients/:id (reemplazo completo).
type UpdateClientRequest struct {
	CompanyName   string     `json:"company_name"`
	TaxID         string     `json:"tax_id"`
	ContactPerson string     `json:"contact_person"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	CreatedAt     *time.Time `json:"created_at,omitempty"` // nil conserva el valor actual
}

// PatchClientRequest body para PATCH /api/clients/:id; solo se aplican los campos presentes.
type PatchClientRequest struct {
	CompanyName   *string    `json:"company_name,omitempty"`
	TaxID         *string    `json:"tax_id,omitempty"`
	ContactPerson *string    `json:"contact_person,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Email         *string    `json:"email,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID            int64     `json:"id"`
	CompanyName   string    `json:"company_name"`
	TaxID         string    `json:"tax_id"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ClientListResponse lista paginada de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ExportFile archivo generado por una exportación.
type ExportFile struct {
	Content     []byte
	Filename    string
	ContentType string
}
