package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucasmgo/frota-gr-api/internal/application/dto"
	"github.com/lucasmgo/frota-gr-api/internal/application/usecase"
)

// BaseHandler trata as requisições HTTP de bases operacionais (protegido).
type BaseHandler struct {
	uc *usecase.BaseUseCase
}

// NewBaseHandler constrói o handler.
func NewBaseHandler(uc *usecase.BaseUseCase) *BaseHandler {
	return &BaseHandler{uc: uc}
}

// Create godoc
// @Summary      Criar base operacional
// @Tags         bases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBaseRequest  true  "Dados da base + endereço"
// @Success      201   {object}  dto.BaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/bases [post]
func (h *BaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBaseRequest
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
// @Summary      Obter base por ID
// @Tags         bases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da base"
// @Success      200  {object}  dto.BaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/bases/{id} [get]
func (h *BaseHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "base não encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar bases
// @Tags         bases
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.BaseListResponse
// @Router       /api/v1/bases [get]
func (h *BaseHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar base
// @Tags         bases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da base"
// @Param        body  body  dto.UpdateBaseRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.BaseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/bases/{id} [patch]
func (h *BaseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	var in dto.UpdateBaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "base não encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover base
// @Description  Bloqueado com 409 enquanto existirem guias vinculadas à base.
// @Tags         bases
// @Security     Bearer
// @Param        id  path  string  true  "ID da base"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/bases/{id} [delete]
func (h *BaseHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id é obrigatório")
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
