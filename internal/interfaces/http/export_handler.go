package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/azimuth-crm/internal/application/dto"
	"github.com/jhoicas/azimuth-crm/internal/application/usecase"
)

// ExportHandler descarga el registro de clientes como archivo adjunto.
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// PDF godoc
// @Summary      Exportar clientes a PDF
// @Tags         export
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/clients/export/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	file, err := h.uc.PDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, file)
}

// CSV godoc
// @Summary      Exportar clientes a CSV
// @Tags         export
// @Produce      text/csv
// @Param        encoding  query  string  false  "utf-8 | windows-1251"  default(utf-8)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/clients/export/csv [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	file, err := h.uc.CSV(c.UserContext(), c.Query("encoding"))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, file)
}

// XML godoc
// @Summary      Exportar clientes a XML
// @Tags         export
// @Produce      application/xml
// @Success      200  {file}  binary
// @Router       /api/clients/export/xml [get]
func (h *ExportHandler) XML(c *fiber.Ctx) error {
	file, err := h.uc.XML(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, file)
}

func sendAttachment(c *fiber.Ctx, file *dto.ExportFile) error {
	c.Attachment(file.Filename)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Content)
}
