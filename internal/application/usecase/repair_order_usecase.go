package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmgo/frota-gr-api/internal/application/dto"
	"github.com/lucasmgo/frota-gr-api/internal/domain"
	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repairorder"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repository"
)

// RepairOrderUseCase casos de uso da guia de remessa: criação com serviços,
// leitura com agregação financeira, atualização parcial com upsert aninhado e
// remoção em cascata. As escritas multi-passo rodam em transação.
type RepairOrderUseCase struct {
	txRunner  OrderTxRunner
	orderRepo repository.RepairOrderRepository
	svcRepo   repository.RepairOrderServiceRepository
	baseRepo  repository.BaseRepository
	itemRepo  repository.ServiceItemRepository
}

// NewRepairOrderUseCase constrói o caso de uso.
func NewRepairOrderUseCase(
	txRunner OrderTxRunner,
	orderRepo repository.RepairOrderRepository,
	svcRepo repository.RepairOrderServiceRepository,
	baseRepo repository.BaseRepository,
	itemRepo repository.ServiceItemRepository,
) *RepairOrderUseCase {
	return &RepairOrderUseCase{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		svcRepo:   svcRepo,
		baseRepo:  baseRepo,
		itemRepo:  itemRepo,
	}
}

// Create cria a guia com status PENDING e persiste cabeçalho + serviços em uma
// única transação: se qualquer serviço falhar, nada é gravado.
func (uc *RepairOrderUseCase) Create(ctx context.Context, in dto.CreateRepairOrderRequest) (*dto.RepairOrderResponse, error) {
	gcaf, err := parseGCAF(in.GCAF)
	if err != nil {
		return nil, err
	}
	plate, err := normalizePlate(in.Plate)
	if err != nil {
		return nil, err
	}
	if in.Kilometers < 0 {
		return nil, fmt.Errorf("%w: kilometers deve ser >= 0", domain.ErrInvalidInput)
	}
	if in.Discount.IsNegative() {
		return nil, fmt.Errorf("%w: discount deve ser >= 0", domain.ErrInvalidInput)
	}

	base, err := uc.baseRepo.GetByID(in.BaseID)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, fmt.Errorf("%w: base %s", domain.ErrNotFound, in.BaseID)
	}

	now := time.Now()
	order := &entity.RepairOrder{
		ID:           uuid.New().String(),
		GCAF:         gcaf,
		BaseID:       in.BaseID,
		Plate:        plate,
		Kilometers:   in.Kilometers,
		Status:       entity.OrderStatusPending,
		Observations: in.Observations,
		Discount:     in.Discount,
		UserIDs:      in.UserIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	services := make([]*entity.RepairOrderService, 0, len(in.Services))
	for i, svcIn := range in.Services {
		svc, err := uc.buildService(order.ID, svcIn, now)
		if err != nil {
			return nil, fmt.Errorf("serviço %d: %w", i, err)
		}
		services = append(services, svc)
	}

	err = uc.txRunner.Run(ctx, func(orders repository.RepairOrderRepository, svcs repository.RepairOrderServiceRepository) error {
		if err := orders.Create(order); err != nil {
			return err
		}
		for _, svc := range services {
			if err := svcs.Create(svc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRepairOrderResponse(order, services), nil
}

// GetByID devolve a guia com os serviços ativos e os totais canônicos.
func (uc *RepairOrderUseCase) GetByID(id string) (*dto.RepairOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	services, err := uc.svcRepo.ListByOrder(id)
	if err != nil {
		return nil, err
	}
	return toRepairOrderResponse(order, services), nil
}

// List lista guias, filtrando por substring da placa quando informada, sempre
// com serviços ativos e totais agregados.
func (uc *RepairOrderUseCase) List(plate string, limit, offset int) (*dto.RepairOrderListResponse, error) {
	orders, err := uc.orderRepo.List(strings.ToUpper(strings.TrimSpace(plate)), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RepairOrderResponse, 0, len(orders))
	for _, order := range orders {
		services, err := uc.svcRepo.ListByOrder(order.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toRepairOrderResponse(order, services))
	}
	return &dto.RepairOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica a atualização parcial do cabeçalho e o upsert aninhado dos
// serviços em uma transação. Status é validado contra o enum fechado antes de
// persistir; fora isso não há guarda de transição.
func (uc *RepairOrderUseCase) Update(ctx context.Context, id string, in dto.UpdateRepairOrderRequest) (*dto.RepairOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	if in.GCAF != nil {
		gcaf, err := parseGCAF(*in.GCAF)
		if err != nil {
			return nil, err
		}
		order.GCAF = gcaf
	}
	if in.BaseID != nil && *in.BaseID != order.BaseID {
		base, err := uc.baseRepo.GetByID(*in.BaseID)
		if err != nil {
			return nil, err
		}
		if base == nil {
			return nil, fmt.Errorf("%w: base %s", domain.ErrNotFound, *in.BaseID)
		}
		order.BaseID = *in.BaseID
	}
	if in.Plate != nil {
		plate, err := normalizePlate(*in.Plate)
		if err != nil {
			return nil, err
		}
		order.Plate = plate
	}
	if in.Kilometers != nil {
		if *in.Kilometers < 0 {
			return nil, fmt.Errorf("%w: kilometers deve ser >= 0", domain.ErrInvalidInput)
		}
		order.Kilometers = *in.Kilometers
	}
	if in.Status != nil {
		status, err := repairorder.ParseOrderStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		order.Status = status
	}
	if in.Observations != nil {
		order.Observations = *in.Observations
	}
	if in.Discount != nil {
		if in.Discount.IsNegative() {
			return nil, fmt.Errorf("%w: discount deve ser >= 0", domain.ErrInvalidInput)
		}
		order.Discount = *in.Discount
	}
	if in.UserIDs != nil {
		order.UserIDs = *in.UserIDs
	}
	order.UpdatedAt = time.Now()

	// Prepara o upsert fora da transação (validações e leituras).
	toCreate, toUpdate, err := uc.prepareServiceUpserts(order, in.Services)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(orders repository.RepairOrderRepository, svcs repository.RepairOrderServiceRepository) error {
		if err := orders.Update(order); err != nil {
			return err
		}
		for _, svc := range toCreate {
			if err := svcs.Create(svc); err != nil {
				return err
			}
		}
		for _, svc := range toUpdate {
			if err := svcs.Update(svc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	services, err := uc.svcRepo.ListByOrder(id)
	if err != nil {
		return nil, err
	}
	return toRepairOrderResponse(order, services), nil
}

// Delete remove a guia e todos os serviços em cascata, na mesma transação.
func (uc *RepairOrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(orders repository.RepairOrderRepository, svcs repository.RepairOrderServiceRepository) error {
		if err := svcs.DeleteByOrder(id); err != nil {
			return err
		}
		return orders.Delete(id)
	})
}

// buildService valida e monta um serviço novo. A foto é obrigatória aqui, na
// borda de criação; a persistência aceita o campo vazio em registros antigos.
func (uc *RepairOrderUseCase) buildService(orderID string, in dto.CreateRepairOrderServiceInput, now time.Time) (*entity.RepairOrderService, error) {
	if in.Photo == "" {
		return nil, domain.ErrPhotoRequired
	}
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity deve ser >= 1", domain.ErrInvalidInput)
	}
	if !entity.ValidServiceCategory(in.Category) {
		return nil, fmt.Errorf("%w: categoria %q", domain.ErrInvalidInput, in.Category)
	}
	if !entity.ValidServiceType(in.Type) {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, in.Type)
	}
	if in.Value.IsNegative() {
		return nil, fmt.Errorf("%w: value deve ser >= 0", domain.ErrInvalidInput)
	}
	if in.Discount.IsNegative() {
		return nil, fmt.Errorf("%w: discount deve ser >= 0", domain.ErrInvalidInput)
	}
	if in.FinishedAt.Before(in.StartedAt) {
		return nil, fmt.Errorf("%w: finished_at deve ser >= started_at", domain.ErrInvalidInput)
	}
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %s", domain.ErrNotFound, in.ItemID)
	}
	return &entity.RepairOrderService{
		ID:            uuid.New().String(),
		RepairOrderID: orderID,
		ItemID:        in.ItemID,
		Quantity:      in.Quantity,
		Category:      in.Category,
		Type:          in.Type,
		Labor:         in.Labor,
		Value:         in.Value,
		Discount:      in.Discount,
		StartedAt:     in.StartedAt,
		FinishedAt:    in.FinishedAt,
		Status:        entity.ServiceStatusPending,
		Photo:         in.Photo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// prepareServiceUpserts separa o upsert aninhado do PATCH em criações e
// atualizações já validadas.
func (uc *RepairOrderUseCase) prepareServiceUpserts(order *entity.RepairOrder, inputs []dto.UpsertRepairOrderServiceInput) (toCreate, toUpdate []*entity.RepairOrderService, err error) {
	now := time.Now()
	for i, in := range inputs {
		if in.ID == nil {
			svc, err := uc.buildService(order.ID, upsertToCreateInput(in), now)
			if err != nil {
				return nil, nil, fmt.Errorf("serviço %d: %w", i, err)
			}
			toCreate = append(toCreate, svc)
			continue
		}
		existing, err := uc.svcRepo.GetByID(*in.ID)
		if err != nil {
			return nil, nil, err
		}
		if existing == nil || existing.RepairOrderID != order.ID {
			return nil, nil, fmt.Errorf("%w: serviço %s", domain.ErrNotFound, *in.ID)
		}
		if err := applyServicePatch(existing, servicePatch(in)); err != nil {
			return nil, nil, fmt.Errorf("serviço %d: %w", i, err)
		}
		existing.UpdatedAt = now
		toUpdate = append(toUpdate, existing)
	}
	return toCreate, toUpdate, nil
}

// upsertToCreateInput converte o input de upsert sem ID em input de criação,
// com zero values para os ponteiros ausentes (as validações apontam o campo).
func upsertToCreateInput(in dto.UpsertRepairOrderServiceInput) dto.CreateRepairOrderServiceInput {
	out := dto.CreateRepairOrderServiceInput{}
	if in.ItemID != nil {
		out.ItemID = *in.ItemID
	}
	if in.Quantity != nil {
		out.Quantity = *in.Quantity
	}
	if in.Category != nil {
		out.Category = *in.Category
	}
	if in.Type != nil {
		out.Type = *in.Type
	}
	if in.Labor != nil {
		out.Labor = *in.Labor
	}
	if in.Value != nil {
		out.Value = *in.Value
	}
	if in.Discount != nil {
		out.Discount = *in.Discount
	}
	if in.StartedAt != nil {
		out.StartedAt = *in.StartedAt
	}
	if in.FinishedAt != nil {
		out.FinishedAt = *in.FinishedAt
	}
	if in.Photo != nil {
		out.Photo = *in.Photo
	}
	return out
}

func servicePatch(in dto.UpsertRepairOrderServiceInput) dto.UpdateRepairOrderServiceRequest {
	return dto.UpdateRepairOrderServiceRequest{
		Quantity:   in.Quantity,
		Category:   in.Category,
		Type:       in.Type,
		Labor:      in.Labor,
		Value:      in.Value,
		Discount:   in.Discount,
		StartedAt:  in.StartedAt,
		FinishedAt: in.FinishedAt,
		Status:     in.Status,
		Photo:      in.Photo,
	}
}

// applyServicePatch aplica campos parciais sobre um serviço existente,
// validando enums, faixas e a ordem do intervalo trabalhado.
func applyServicePatch(svc *entity.RepairOrderService, in dto.UpdateRepairOrderServiceRequest) error {
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return fmt.Errorf("%w: quantity deve ser >= 1", domain.ErrInvalidInput)
		}
		svc.Quantity = *in.Quantity
	}
	if in.Category != nil {
		if !entity.ValidServiceCategory(*in.Category) {
			return fmt.Errorf("%w: categoria %q", domain.ErrInvalidInput, *in.Category)
		}
		svc.Category = *in.Category
	}
	if in.Type != nil {
		if !entity.ValidServiceType(*in.Type) {
			return fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, *in.Type)
		}
		svc.Type = *in.Type
	}
	if in.Labor != nil {
		svc.Labor = *in.Labor
	}
	if in.Value != nil {
		if in.Value.IsNegative() {
			return fmt.Errorf("%w: value deve ser >= 0", domain.ErrInvalidInput)
		}
		svc.Value = *in.Value
	}
	if in.Discount != nil {
		if in.Discount.IsNegative() {
			return fmt.Errorf("%w: discount deve ser >= 0", domain.ErrInvalidInput)
		}
		svc.Discount = *in.Discount
	}
	if in.StartedAt != nil {
		svc.StartedAt = *in.StartedAt
	}
	if in.FinishedAt != nil {
		svc.FinishedAt = *in.FinishedAt
	}
	if svc.FinishedAt.Before(svc.StartedAt) {
		return fmt.Errorf("%w: finished_at deve ser >= started_at", domain.ErrInvalidInput)
	}
	if in.Status != nil {
		status, err := repairorder.ParseServiceStatus(*in.Status)
		if err != nil {
			return err
		}
		svc.Status = status
	}
	if in.Photo != nil && *in.Photo != "" {
		svc.Photo = *in.Photo
	}
	return nil
}

func parseGCAF(s string) (int64, error) {
	gcaf, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: gcaf deve ser numérico", domain.ErrInvalidInput)
	}
	return gcaf, nil
}

func normalizePlate(plate string) (string, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" || len(plate) > 7 {
		return "", fmt.Errorf("%w: placa deve ter entre 1 e 7 caracteres", domain.ErrInvalidInput)
	}
	return plate, nil
}

func toRepairOrderResponse(order *entity.RepairOrder, services []*entity.RepairOrderService) *dto.RepairOrderResponse {
	if order == nil {
		return nil
	}
	totals := repairorder.Compute(services, order.Discount)
	items := make([]dto.RepairOrderServiceResponse, 0, len(services))
	for _, s := range services {
		items = append(items, *toServiceResponse(s))
	}
	userIDs := order.UserIDs
	if userIDs == nil {
		userIDs = []string{}
	}
	return &dto.RepairOrderResponse{
		ID:           order.ID,
		GCAF:         strconv.FormatInt(order.GCAF, 10),
		BaseID:       order.BaseID,
		Plate:        order.Plate,
		Kilometers:   order.Kilometers,
		Status:       order.Status,
		Observations: order.Observations,
		Discount:     order.Discount,
		UserIDs:      userIDs,
		Services:     items,
		Totals: dto.RepairOrderTotalsResponse{
			Subtotal:      totals.Subtotal,
			TotalDiscount: totals.TotalDiscount,
			Total:         totals.Total,
		},
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func toServiceResponse(s *entity.RepairOrderService) *dto.RepairOrderServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.RepairOrderServiceResponse{
		ID:            s.ID,
		RepairOrderID: s.RepairOrderID,
		ItemID:        s.ItemID,
		Quantity:      s.Quantity,
		Category:      s.Category,
		Type:          s.Type,
		Labor:         s.Labor,
		Value:         s.Value,
		Discount:      s.Discount,
		StartedAt:     s.StartedAt,
		FinishedAt:    s.FinishedAt,
		Duration:      strconv.FormatInt(s.DurationMillis(), 10),
		Status:        s.Status,
		Photo:         s.Photo,
		LineTotal:     repairorder.LineTotal(s),
		DeletedAt:     s.DeletedAt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
