package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/lucasmgo/frota-gr-api/internal/application/dto"
	"github.com/lucasmgo/frota-gr-api/internal/application/report"
	"github.com/lucasmgo/frota-gr-api/internal/application/usecase"
)

// maxPhotoBytes limite por arquivo de foto no multipart.
const maxPhotoBytes = 8 << 20 // 8 MiB

// RepairOrderHandler trata as guias de remessa (protegido).
type RepairOrderHandler struct {
	uc    *usecase.RepairOrderUseCase
	pdfUC *report.PDFUseCase
}

// NewRepairOrderHandler constrói o handler.
func NewRepairOrderHandler(uc *usecase.RepairOrderUseCase, pdfUC *report.PDFUseCase) *RepairOrderHandler {
	return &RepairOrderHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Criar guia de remessa
// @Description  Multipart form-data: campos do cabeçalho + "services" como
// @Description  string JSON + arquivos "photos[i]" (foto do serviço na posição
// @Description  i, convertida para data URI). Tudo persiste em uma transação.
// @Tags         repair-orders
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        gcaf          formData  string  true   "Número GCAF"
// @Param        base_id       formData  string  true   "ID da base"
// @Param        plate         formData  string  true   "Placa (até 7 caracteres)"
// @Param        kilometers    formData  int     false  "Quilometragem"
// @Param        discount      formData  string  false  "Desconto da guia"
// @Param        observations  formData  string  false  "Observações"
// @Param        user_ids      formData  string  false  "IDs de usuários (JSON array)"
// @Param        services      formData  string  true   "Serviços (JSON array)"
// @Success      201  {object}  dto.RepairOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/repair-orders [post]
func (h *RepairOrderHandler) Create(c *fiber.Ctx) error {
	in, err := parseCreateOrderForm(c)
	if err != nil {
		return badRequest(c, "INVALID_FORM", err.Error())
	}
	out, err := h.uc.Create(c.Context(), *in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter guia por ID
// @Description  Inclui serviços ativos (soft-deletados ficam de fora) e os
// @Description  totais agregados.
// @Tags         repair-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da guia"
// @Success      200  {object}  dto.RepairOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/repair-orders/{id} [get]
func (h *RepairOrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "guia não encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar guias
// @Tags         repair-orders
// @Security     Bearer
// @Produce      json
// @Param        plate   query  string  false  "Filtro por placa (substring, case-insensitive)"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.RepairOrderListResponse
// @Router       /api/v1/repair-orders [get]
func (h *RepairOrderHandler) List(c *fiber.Ctx) error {
	plate := c.Query("plate")
	limit, offset := pageParams(c)
	out, err := h.uc.List(plate, limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar guia
// @Description  Atualização parcial do cabeçalho + upsert aninhado de serviços
// @Description  (com id atualiza, sem id cria). Uma transação para tudo.
// @Tags         repair-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da guia"
// @Param        body  body  dto.UpdateRepairOrderRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.RepairOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/repair-orders/{id} [patch]
func (h *RepairOrderHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	var in dto.UpdateRepairOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "guia não encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover guia
// @Description  Remove a guia e todos os seus serviços (cascata, uma transação).
// @Tags         repair-orders
// @Security     Bearer
// @Param        id  path  string  true  "ID da guia"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/repair-orders/{id} [delete]
func (h *RepairOrderHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF godoc
// @Summary      Baixar guia em PDF
// @Tags         repair-orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID da guia"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/repair-orders/{id}/pdf [get]
func (h *RepairOrderHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	pdfBytes, filename, err := h.pdfUC.DownloadRepairOrderPDF(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// ── multipart ─────────────────────────────────────────────────────────────────

// parseCreateOrderForm monta o CreateRepairOrderRequest a partir do multipart:
// campos simples do form, "services" como JSON e "photos[i]" anexada ao serviço
// da posição i como data URI.
func parseCreateOrderForm(c *fiber.Ctx) (*dto.CreateRepairOrderRequest, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("multipart form-data esperado")
	}

	in := dto.CreateRepairOrderRequest{
		GCAF:         formValue(form, "gcaf"),
		BaseID:       formValue(form, "base_id"),
		Plate:        formValue(form, "plate"),
		Observations: formValue(form, "observations"),
	}
	if in.GCAF == "" || in.BaseID == "" || in.Plate == "" {
		return nil, fmt.Errorf("gcaf, base_id e plate são obrigatórios")
	}

	if v := formValue(form, "kilometers"); v != "" {
		km, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("kilometers inválido")
		}
		in.Kilometers = km
	}
	if v := formValue(form, "discount"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("discount inválido")
		}
		in.Discount = d
	}
	if v := formValue(form, "user_ids"); v != "" {
		if err := json.Unmarshal([]byte(v), &in.UserIDs); err != nil {
			return nil, fmt.Errorf("user_ids deve ser um array JSON")
		}
	}

	servicesJSON := formValue(form, "services")
	if servicesJSON == "" {
		return nil, fmt.Errorf("services é obrigatório")
	}
	if err := json.Unmarshal([]byte(servicesJSON), &in.Services); err != nil {
		return nil, fmt.Errorf("services deve ser um array JSON válido")
	}

	for i := range in.Services {
		files := form.File[fmt.Sprintf("photos[%d]", i)]
		if len(files) == 0 {
			continue
		}
		uri, err := fileToDataURI(files[0])
		if err != nil {
			return nil, fmt.Errorf("photos[%d]: %v", i, err)
		}
		in.Services[i].Photo = uri
	}
	return &in, nil
}

func formValue(form *multipart.Form, key string) string {
	vs := form.Value[key]
	if len(vs) == 0 {
		return ""
	}
	return strings.TrimSpace(vs[0])
}

// fileToDataURI lê o upload e devolve "data:<mime>;base64,<payload>".
func fileToDataURI(fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxPhotoBytes {
		return "", fmt.Errorf("arquivo excede %d bytes", maxPhotoBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("abrir arquivo: %v", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes+1))
	if err != nil {
		return "", fmt.Errorf("ler arquivo: %v", err)
	}
	if int64(len(raw)) > maxPhotoBytes {
		return "", fmt.Errorf("arquivo excede %d bytes", maxPhotoBytes)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(raw)
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
