package entity

import "time"

// Client representa un cliente del CRM (empresa con su NIT/INN y datos de contacto).
// No aplica validaciones: cualquier campo puede leerse o asignarse en cualquier momento.
type Client struct {
	ID            int64 // asignado por la capa de persistencia; 0 = sin asignar
	CompanyName   string
	TaxID         string // NIT / INN / registro mercantil, formato libre
	ContactPerson string // opcional
	Phone         string // opcional
	Email         string // opcional
	CreatedAt     time.Time
}

// NewClient crea un cliente vacío con la fecha de creación en el instante actual.
func NewClient() *Client {
	return &Client{CreatedAt: time.Now()}
}

// NewClientWithTaxID crea un cliente con razón social y NIT; el resto de campos quedan vacíos.
func NewClientWithTaxID(companyName, taxID string) *Client {
	c := NewClient()
	c.CompanyName = companyName
	c.TaxID = taxID
	return c
}

// HasID indica si la persistencia ya asignó el identificador.
func (c *Client) HasID() bool {
	return c != nil && c.ID != 0
}

// SameIdentity compara por identificador asignado. Dos clientes sin ID nunca son el mismo.
func (c *Client) SameIdentity(other *Client) bool {
	if !c.HasID() || !other.HasID() {
		return false
	}
	return c.ID == other.ID
}
