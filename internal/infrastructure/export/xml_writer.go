package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/azimuth-crm/internal/application/usecase"
	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
)

var _ usecase.ClientXMLWriter = (*XMLWriter)(nil)

// XMLWriter escribe clientes como documento <clients>.
//
//	<clients count="1">
//	  <client id="7">
//	    <company_name>…</company_name>
//	    <tax_id>…</tax_id>
//	    <created_at>2025-12-15T10:30:00Z</created_at>
//	  </client>
//	</clients>
//
// Los campos opcionales vacíos se omiten.
type XMLWriter struct{}

// NewXMLWriter construye el exportador.
func NewXMLWriter() *XMLWriter { return &XMLWriter{} }

// WriteXML escribe el documento indentado en w.
func (XMLWriter) WriteXML(w io.Writer, clients []*entity.Client) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("clients")
	root.CreateAttr("count", strconv.Itoa(len(clients)))

	for _, c := range clients {
		el := root.CreateElement("client")
		el.CreateAttr("id", strconv.FormatInt(c.ID, 10))
		el.CreateElement("company_name").SetText(c.CompanyName)
		el.CreateElement("tax_id").SetText(c.TaxID)
		optional(el, "contact_person", c.ContactPerson)
		optional(el, "phone", c.Phone)
		optional(el, "email", c.Email)
		el.CreateElement("created_at").SetText(c.CreatedAt.Format(time.RFC3339))
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("xml: escribir documento: %w", err)
	}
	return nil
}

func optional(parent *etree.Element, tag, value string) {
	if value != "" {
		parent.CreateElement(tag).SetText(value)
	}
}
