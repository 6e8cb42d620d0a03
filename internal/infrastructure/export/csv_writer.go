// Package export serializa el registro de clientes a formatos de intercambio (CSV, XML).
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/azimuth-crm/internal/application/usecase"
	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
)

// TimeLayout formato de fecha en exportaciones tabulares.
const TimeLayout = "2006-01-02 15:04:05"

var _ usecase.ClientCSVWriter = (*CSVWriter)(nil)

var csvHeader = []string{"ID", "Company", "Tax ID", "Contact person", "Phone", "Email", "Created at"}

// CSVWriter escribe clientes como CSV con cabecera.
type CSVWriter struct{}

// NewCSVWriter construye el exportador.
func NewCSVWriter() *CSVWriter { return &CSVWriter{} }

// WriteCSV escribe en w. Con windows-1251 los caracteres sin equivalente se sustituyen.
func (CSVWriter) WriteCSV(w io.Writer, clients []*entity.Client, enc string) error {
	var closer io.Closer
	switch enc {
	case "", usecase.EncodingUTF8:
	case usecase.EncodingWindows1251:
		tw := transform.NewWriter(w, encoding.ReplaceUnsupported(charmap.Windows1251.NewEncoder()))
		w, closer = tw, tw
	default:
		return fmt.Errorf("codificación no soportada: %q", enc)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, c := range clients {
		record := []string{
			strconv.FormatInt(c.ID, 10),
			c.CompanyName,
			c.TaxID,
			c.ContactPerson,
			c.Phone,
			c.Email,
			c.CreatedAt.Format(TimeLayout),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: cliente %d: %w", c.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	if closer != nil {
		return closer.Close()
	}
	return nil
}
