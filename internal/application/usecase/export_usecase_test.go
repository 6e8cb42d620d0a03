package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/azimuth-crm/internal/application/usecase"
	"github.com/jhoicas/azimuth-crm/internal/domain"
	"github.com/jhoicas/azimuth-crm/internal/domain/entity"
	"github.com/jhoicas/azimuth-crm/internal/infrastructure/memory"
)

// stubExporter registra lo que recibe y escribe una salida fija.
type stubExporter struct {
	got      []*entity.Client
	encoding string
	err      error
}

func (s *stubExporter) GenerateClientListPDF(_ context.Context, clients []*entity.Client) ([]byte, error) {
	s.got = clients
	return []byte("%PDF-stub"), s.err
}

func (s *stubExporter) WriteCSV(w io.Writer, clients []*entity.Client, encoding string) error {
	s.got, s.encoding = clients, encoding
	_, _ = fmt.Fprintf(w, "rows=%d", len(clients))
	return s.err
}

func (s *stubExporter) WriteXML(w io.Writer, clients []*entity.Client) error {
	s.got = clients
	_, _ = io.WriteString(w, "<clients/>")
	return s.err
}

func newExportUC(t *testing.T, n int) (*usecase.ExportUseCase, *stubExporter) {
	t.Helper()
	repo := memory.NewClientRepository()
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Create(context.Background(), entity.NewClientWithTaxID(fmt.Sprintf("C%d", i), "")))
	}
	stub := &stubExporter{}
	return usecase.NewExportUseCase(repo, stub, stub, stub), stub
}

func TestExportUseCase_PDF(t *testing.T) {
	uc, stub := newExportUC(t, 3)

	file, err := uc.PDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "clients_export.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, []byte("%PDF-stub"), file.Content)
	assert.Len(t, stub.got, 3)
}

func TestExportUseCase_CSVCodificaciones(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", usecase.EncodingUTF8},
		{"UTF-8", usecase.EncodingUTF8},
		{"cp1251", usecase.EncodingWindows1251},
		{"windows-1251", usecase.EncodingWindows1251},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			uc, stub := newExportUC(t, 2)
			file, err := uc.CSV(context.Background(), tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, stub.encoding)
			assert.Equal(t, "clients_export.csv", file.Filename)
			assert.Equal(t, "text/csv; charset="+tc.want, file.ContentType)
			assert.Equal(t, "rows=2", string(file.Content))
		})
	}
}

func TestExportUseCase_CSVCodificacionDesconocida(t *testing.T) {
	uc, _ := newExportUC(t, 1)

	_, err := uc.CSV(context.Background(), "koi8-r")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportUseCase_XMLPropagaError(t *testing.T) {
	uc, stub := newExportUC(t, 1)
	stub.err = errors.New("disco lleno")

	_, err := uc.XML(context.Background())
	assert.ErrorIs(t, err, stub.err)
}
