package export_test

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/azimuth-crm/internal/infrastructure/export"
)

func TestXMLWriter_Documento(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.NewXMLWriter().WriteXML(&buf, sampleClients()))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.SelectElement("clients")
	require.NotNil(t, root)
	assert.Equal(t, "2", root.SelectAttrValue("count", ""))

	clients := root.SelectElements("client")
	require.Len(t, clients, 2)

	first := clients[0]
	assert.Equal(t, "1", first.SelectAttrValue("id", ""))
	assert.Equal(t, `ООО "ТехноПрофи"`, first.SelectElement("company_name").Text())
	assert.Equal(t, "2025-12-15T10:30:00Z", first.SelectElement("created_at").Text())
	assert.Nil(t, first.SelectElement("contact_person"), "los opcionales vacíos se omiten")

	second := clients[1]
	assert.Equal(t, "Ana", second.SelectElement("contact_person").Text())
	assert.Nil(t, second.SelectElement("email"))
}

func TestXMLWriter_SinClientes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.NewXMLWriter().WriteXML(&buf, nil))
	assert.Contains(t, buf.String(), `<clients count="0"/>`)
}
