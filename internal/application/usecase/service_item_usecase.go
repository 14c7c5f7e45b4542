package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmgo/frota-gr-api/internal/application/dto"
	"github.com/lucasmgo/frota-gr-api/internal/domain"
	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repository"
)

// ServiceItemUseCase casos de uso CRUD para o catálogo de itens faturáveis.
// A remoção é lógica: o item sai das listagens mas permanece referenciável
// pelas guias antigas.
type ServiceItemUseCase struct {
	itemRepo repository.ServiceItemRepository
	baseRepo repository.BaseRepository
}

// NewServiceItemUseCase constrói o caso de uso.
func NewServiceItemUseCase(itemRepo repository.ServiceItemRepository, baseRepo repository.BaseRepository) *ServiceItemUseCase {
	return &ServiceItemUseCase{itemRepo: itemRepo, baseRepo: baseRepo}
}

// Create cria um item de catálogo vinculado a uma base existente.
func (uc *ServiceItemUseCase) Create(in dto.CreateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	if in.Value.IsNegative() {
		return nil, fmt.Errorf("%w: value deve ser >= 0", domain.ErrInvalidInput)
	}
	base, err := uc.baseRepo.GetByID(in.BaseID)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	item := &entity.ServiceItem{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Value:     in.Value,
		BaseID:    in.BaseID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toServiceItemResponse(item), nil
}

// GetByID obtém um item por ID (devolve mesmo os removidos logicamente).
func (uc *ServiceItemUseCase) GetByID(id string) (*dto.ServiceItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toServiceItemResponse(item), nil
}

// Update atualiza nome e/ou valor do item.
func (uc *ServiceItemUseCase) Update(id string, in dto.UpdateServiceItemRequest) (*dto.ServiceItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Value != nil {
		if in.Value.IsNegative() {
			return nil, fmt.Errorf("%w: value deve ser >= 0", domain.ErrInvalidInput)
		}
		item.Value = *in.Value
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toServiceItemResponse(item), nil
}

// List lista itens ativos, opcionalmente filtrados por base.
func (uc *ServiceItemUseCase) List(baseID string, limit, offset int) (*dto.ServiceItemListResponse, error) {
	list, err := uc.itemRepo.List(baseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toServiceItemResponse(it))
	}
	return &dto.ServiceItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove logicamente um item (marca DeletedAt).
func (uc *ServiceItemUseCase) Delete(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.Deleted() {
		return nil // idempotente
	}
	return uc.itemRepo.SoftDelete(id, time.Now())
}

func toServiceItemResponse(it *entity.ServiceItem) *dto.ServiceItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ServiceItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Value:     it.Value,
		BaseID:    it.BaseID,
		DeletedAt: it.DeletedAt,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}
