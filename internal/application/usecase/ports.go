package usecase

import (
	"context"
	"io"

	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
	"github.com/jhoicas/azimuth-crm/internal/domain/repository"
)

// TxRunner ejecuta fn con un repositorio atado a una transacción (Commit si fn devuelve nil).
type TxRunner interface {
	Run(ctx context.Context, fn func(clients repository.ClientRepository) error) error
}

// ClientListPDFGenerator genera el listado de clientes en PDF.
type ClientListPDFGenerator interface {
	GenerateClientListPDF(ctx context.Context, clients []*entity.Client) ([]byte, error)
}

// ClientCSVWriter escribe el listado de clientes como CSV en la codificación indicada.
type ClientCSVWriter interface {
	WriteCSV(w io.Writer, clients []*entity.Client, encoding string) error
}

// ClientXMLWriter escribe el listado de clientes como documento XML.
type ClientXMLWriter interface {
	WriteXML(w io.Writer, clients []*entity.Client) error
}
