package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/azimuth-crm/internal/application/dto"
	"github.com/jhoicas/azimuth-crm/internal/domain"
	"github.com/jhoicas/azimuth-crm/internal/domain/repository"
)

// Codificaciones admitidas en la exportación CSV.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1251 = "windows-1251" // hojas de cálculo heredadas en cirílico
)

// ExportUseCase exporta el registro completo de clientes a PDF, CSV o XML.
type ExportUseCase struct {
	repo repository.ClientRepository
	pdf  ClientListPDFGenerator
	csv  ClientCSVWriter
	xml  ClientXMLWriter
}

// NewExportUseCase construye el caso de uso inyectando los generadores.
func NewExportUseCase(
	repo repository.ClientRepository,
	pdf ClientListPDFGenerator,
	csv ClientCSVWriter,
	xml ClientXMLWriter,
) *ExportUseCase {
	return &ExportUseCase{repo: repo, pdf: pdf, csv: csv, xml: xml}
}

// PDF genera el listado numerado de clientes.
func (uc *ExportUseCase) PDF(ctx context.Context) (*dto.ExportFile, error) {
	clients, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export pdf: listar clientes: %w", err)
	}
	content, err := uc.pdf.GenerateClientListPDF(ctx, clients)
	if err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	return &dto.ExportFile{
		Content:     content,
		Filename:    "clients_export.pdf",
		ContentType: "application/pdf",
	}, nil
}

// CSV exporta con cabecera; encoding vacío equivale a UTF-8.
// Una codificación desconocida devuelve domain.ErrInvalidInput.
func (uc *ExportUseCase) CSV(ctx context.Context, encoding string) (*dto.ExportFile, error) {
	enc, err := normalizeEncoding(encoding)
	if err != nil {
		return nil, err
	}
	clients, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export csv: listar clientes: %w", err)
	}
	var buf bytes.Buffer
	if err := uc.csv.WriteCSV(&buf, clients, enc); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return &dto.ExportFile{
		Content:     buf.Bytes(),
		Filename:    "clients_export.csv",
		ContentType: "text/csv; charset=" + enc,
	}, nil
}

// XML exporta un documento <clients>.
func (uc *ExportUseCase) XML(ctx context.Context) (*dto.ExportFile, error) {
	clients, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export xml: listar clientes: %w", err)
	}
	var buf bytes.Buffer
	if err := uc.xml.WriteXML(&buf, clients); err != nil {
		return nil, fmt.Errorf("export xml: %w", err)
	}
	return &dto.ExportFile{
		Content:     buf.Bytes(),
		Filename:    "clients_export.xml",
		ContentType: "application/xml",
	}, nil
}

func normalizeEncoding(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf8", EncodingUTF8:
		return EncodingUTF8, nil
	case "cp1251", "windows1251", EncodingWindows1251:
		return EncodingWindows1251, nil
	default:
		return "", fmt.Errorf("%w: codificación %q no soportada", domain.ErrInvalidInput, s)
	}
}
