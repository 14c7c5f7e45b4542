package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucasmgo/frota-gr-api/internal/application/dto"
	"github.com/lucasmgo/frota-gr-api/internal/application/usecase"
)

// ServiceItemHandler catálogo de itens de serviço (protegido).
type ServiceItemHandler struct {
	uc *usecase.ServiceItemUseCase
}

// NewServiceItemHandler constrói o handler.
func NewServiceItemHandler(uc *usecase.ServiceItemUseCase) *ServiceItemHandler {
	return &ServiceItemHandler{uc: uc}
}

// Create godoc
// @Summary      Criar item de serviço
// @Tags         service-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceItemRequest  true  "Dados do item"
// @Success      201   {object}  dto.ServiceItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/repair-order-service-items [post]
func (h *ServiceItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "VALIDATION", "name é obrigatório")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter item de serviço por ID
// @Tags         service-items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do item"
// @Success      200  {object}  dto.ServiceItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/repair-order-service-items/{id} [get]
func (h *ServiceItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "item não encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar itens de serviço
// @Description  Exclui itens soft-deletados; filtro opcional por base.
// @Tags         service-items
// @Security     Bearer
// @Produce      json
// @Param        baseId  query  string  false  "Filtrar por base"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ServiceItemListResponse
// @Router       /api/v1/repair-order-service-items [get]
func (h *ServiceItemHandler) List(c *fiber.Ctx) error {
	baseID := c.Query("baseId")
	limit, offset := pageParams(c)
	out, err := h.uc.List(baseID, limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar item de serviço
// @Tags         service-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do item"
// @Param        body  body  dto.UpdateServiceItemRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ServiceItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/repair-order-service-items/{id} [patch]
func (h *ServiceItemHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	var in dto.UpdateServiceItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "item não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover item de serviço (soft delete)
// @Description  Marca deletedAt; o item some das listagens mas os serviços
// @Description  já lançados continuam referenciando o registro.
// @Tags         service-items
// @Security     Bearer
// @Param        id  path  string  true  "ID do item"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/repair-order-service-items/{id} [delete]
func (h *ServiceItemHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
