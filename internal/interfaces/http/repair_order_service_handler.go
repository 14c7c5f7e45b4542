package http

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lucasmgo/frota-gr-api/internal/application/dto"
	"github.com/lucasmgo/frota-gr-api/internal/application/usecase"
)

// RepairOrderServiceHandler operações avulsas sobre serviços de guia
// (protegido). A criação em lote acontece no POST da própria guia.
type RepairOrderServiceHandler struct {
	uc *usecase.RepairOrderServiceUseCase
}

// NewRepairOrderServiceHandler constrói o handler.
func NewRepairOrderServiceHandler(uc *usecase.RepairOrderServiceUseCase) *RepairOrderServiceHandler {
	return &RepairOrderServiceHandler{uc: uc}
}

// Create godoc
// @Summary      Lançar serviço em guia existente
// @Description  JSON com photo em data URI, ou multipart com campo "service"
// @Description  (JSON) + arquivo "photo". Foto é obrigatória.
// @Tags         repair-order-services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRepairOrderServiceRequest  true  "Dados do serviço"
// @Success      201   {object}  dto.RepairOrderServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/repair-order-services [post]
func (h *RepairOrderServiceHandler) Create(c *fiber.Ctx) error {
	in, err := parseCreateServiceBody(c)
	if err != nil {
		return badRequest(c, "INVALID_BODY", err.Error())
	}
	out, err := h.uc.Create(*in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar serviços de uma guia
// @Description  Exclui serviços soft-deletados.
// @Tags         repair-order-services
// @Security     Bearer
// @Produce      json
// @Param        repairOrderId  query  string  true  "ID da guia"
// @Success      200  {object}  dto.RepairOrderServiceListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/repair-order-services [get]
func (h *RepairOrderServiceHandler) List(c *fiber.Ctx) error {
	repairOrderID := c.Query("repairOrderId")
	if repairOrderID == "" {
		return badRequest(c, "VALIDATION", "repairOrderId é obrigatório")
	}
	out, err := h.uc.ListByOrder(repairOrderID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter serviço por ID
// @Tags         repair-order-services
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do serviço"
// @Success      200  {object}  dto.RepairOrderServiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/repair-order-services/{id} [get]
func (h *RepairOrderServiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "serviço não encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar serviço
// @Description  JSON direto, ou multipart com campo "service" (JSON) e/ou
// @Description  arquivo "photo" para substituir a foto.
// @Tags         repair-order-services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do serviço"
// @Param        body  body  dto.UpdateRepairOrderServiceRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.RepairOrderServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/repair-order-services/{id} [patch]
func (h *RepairOrderServiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	in, err := parseUpdateServiceBody(c)
	if err != nil {
		return badRequest(c, "INVALID_BODY", err.Error())
	}
	out, err := h.uc.Update(id, *in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "serviço não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover serviço (soft delete)
// @Description  Marca deletedAt; o serviço sai das listagens e dos totais.
// @Tags         repair-order-services
// @Security     Bearer
// @Param        id  path  string  true  "ID do serviço"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/repair-order-services/{id} [delete]
func (h *RepairOrderServiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseCreateServiceBody aceita JSON direto ou multipart ("service" JSON +
// arquivo "photo" convertido em data URI).
func parseCreateServiceBody(c *fiber.Ctx) (*dto.CreateRepairOrderServiceRequest, error) {
	contentType := c.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		var in dto.CreateRepairOrderServiceRequest
		if err := c.BodyParser(&in); err != nil {
			return nil, fmt.Errorf("corpo inválido")
		}
		return &in, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("multipart form-data inválido")
	}
	raw := formValue(form, "service")
	if raw == "" {
		return nil, fmt.Errorf("campo service é obrigatório")
	}
	var in dto.CreateRepairOrderServiceRequest
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return nil, fmt.Errorf("service deve ser JSON válido")
	}
	if files := form.File["photo"]; len(files) > 0 {
		uri, err := fileToDataURI(files[0])
		if err != nil {
			return nil, fmt.Errorf("photo: %v", err)
		}
		in.Photo = uri
	}
	return &in, nil
}

// parseUpdateServiceBody aceita JSON direto ou multipart: campo "service"
// (JSON, opcional) e/ou arquivo "photo" que substitui a foto existente.
func parseUpdateServiceBody(c *fiber.Ctx) (*dto.UpdateRepairOrderServiceRequest, error) {
	contentType := c.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		var in dto.UpdateRepairOrderServiceRequest
		if err := c.BodyParser(&in); err != nil {
			return nil, fmt.Errorf("corpo inválido")
		}
		return &in, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("multipart form-data inválido")
	}
	var in dto.UpdateRepairOrderServiceRequest
	if raw := formValue(form, "service"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in); err != nil {
			return nil, fmt.Errorf("service deve ser JSON válido")
		}
	}
	if files := form.File["photo"]; len(files) > 0 {
		uri, err := fileToDataURI(files[0])
		if err != nil {
			return nil, fmt.Errorf("photo: %v", err)
		}
		in.Photo = &uri
	}
	return &in, nil
}
