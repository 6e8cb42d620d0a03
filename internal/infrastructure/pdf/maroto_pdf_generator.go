// Package pdf implementa el listado de clientes en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                  │  Fecha + total clientes   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  1. Razón social - email - teléfono                          │
//	│     NIT · Contacto                                           │
//	│  2. ...                          (paginación automática)     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/azimuth-crm/internal/application/usecase"
	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
)

var _ usecase.ClientListPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Options configura el generador. Sin FontPath se usa helvetica (sin cirílico).
type Options struct {
	Title    string
	FontPath string // TTF con soporte UTF-8, p. ej. DejaVuSans.ttf
}

// MarotoPDFGenerator implementa usecase.ClientListPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	opts Options
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(opts Options) *MarotoPDFGenerator {
	if opts.Title == "" {
		opts.Title = "Listado de clientes"
	}
	return &MarotoPDFGenerator{opts: opts}
}

const customFontFamily = "crm-unicode"

// GenerateClientListPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateClientListPDF(_ context.Context, clients []*entity.Client) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithTitle(g.opts.Title, true)

	family := "helvetica"
	if g.opts.FontPath != "" {
		fonts, err := repository.New().
			AddUTF8Font(customFontFamily, fontstyle.Normal, g.opts.FontPath).
			AddUTF8Font(customFontFamily, fontstyle.Bold, g.opts.FontPath).
			Load()
		if err != nil {
			return nil, fmt.Errorf("pdf: cargar fuente %s: %w", g.opts.FontPath, err)
		}
		builder = builder.WithCustomFonts(fonts)
		family = customFontFamily
	}
	builder = builder.WithDefaultFont(&props.Font{Family: family, Size: 11})

	m := maroto.New(builder.Build())

	m.AddRows(headerRow(g.opts.Title, time.Now(), len(clients)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(4))

	if len(clients) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin clientes registrados.", props.Text{Size: 10, Color: colorGray}),
		)))
	}
	for i, c := range clients {
		m.AddRows(clientRows(i+1, c)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de emisión + total (der).
func headerRow(title string, now time.Time, total int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Total: %d", total), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// clientRows: "N. Razón social - email - teléfono" y una segunda línea con NIT y contacto.
func clientRows(n int, c *entity.Client) []core.Row {
	summary := fmt.Sprintf("%d. %s - %s - %s",
		n,
		nonEmpty(c.CompanyName, "s/d"),
		nonEmpty(c.Email, "s/d"),
		nonEmpty(c.Phone, "s/d"),
	)

	var details []string
	if c.TaxID != "" {
		details = append(details, "NIT: "+c.TaxID)
	}
	if c.ContactPerson != "" {
		details = append(details, "Contacto: "+c.ContactPerson)
	}

	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New(summary, props.Text{Size: 11}))),
	}
	if len(details) > 0 {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(strings.Join(details, "   ·   "), props.Text{Size: 8, Left: 5, Color: colorGray}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
