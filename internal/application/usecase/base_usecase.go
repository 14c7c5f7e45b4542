package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucasmgo/frota-gr-api/internal/application/dto"
	"github.com/lucasmgo/frota-gr-api/internal/domain"
	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repository"
)

// BaseUseCase casos de uso CRUD para bases operacionais.
type BaseUseCase struct {
	baseRepo  repository.BaseRepository
	orderRepo repository.RepairOrderRepository
}

// NewBaseUseCase constrói o caso de uso.
func NewBaseUseCase(baseRepo repository.BaseRepository, orderRepo repository.RepairOrderRepository) *BaseUseCase {
	return &BaseUseCase{baseRepo: baseRepo, orderRepo: orderRepo}
}

// Create cria uma base com endereço aninhado. Nome duplicado retorna ErrDuplicate.
func (uc *BaseUseCase) Create(in dto.CreateBaseRequest) (*dto.BaseResponse, error) {
	if existing, _ := uc.baseRepo.GetByName(in.Name); existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	base := &entity.Base{
		ID:    uuid.New().String(),
		Name:  in.Name,
		Phone: in.Phone,
		Address: entity.Address{
			Street:       in.Address.Street,
			Number:       in.Address.Number,
			Complement:   in.Address.Complement,
			Neighborhood: in.Address.Neighborhood,
			City:         in.Address.City,
			State:        in.Address.State,
			ZipCode:      in.Address.ZipCode,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.baseRepo.Create(base); err != nil {
		return nil, err
	}
	return toBaseResponse(base), nil
}

// GetByID obtém uma base por ID.
func (uc *BaseUseCase) GetByID(id string) (*dto.BaseResponse, error) {
	base, err := uc.baseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, nil
	}
	return toBaseResponse(base), nil
}

// Update atualiza uma base parcialmente. A troca de nome respeita a unicidade.
func (uc *BaseUseCase) Update(id string, in dto.UpdateBaseRequest) (*dto.BaseResponse, error) {
	base, err := uc.baseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != base.Name {
		if existing, _ := uc.baseRepo.GetByName(*in.Name); existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		base.Name = *in.Name
	}
	if in.Phone != nil {
		base.Phone = *in.Phone
	}
	if in.Address != nil {
		base.Address = entity.Address{
			Street:       in.Address.Street,
			Number:       in.Address.Number,
			Complement:   in.Address.Complement,
			Neighborhood: in.Address.Neighborhood,
			City:         in.Address.City,
			State:        in.Address.State,
			ZipCode:      in.Address.ZipCode,
		}
	}
	base.UpdatedAt = time.Now()
	if err := uc.baseRepo.Update(base); err != nil {
		return nil, err
	}
	return toBaseResponse(base), nil
}

// List lista bases com paginação.
func (uc *BaseUseCase) List(limit, offset int) (*dto.BaseListResponse, error) {
	list, err := uc.baseRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BaseResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBaseResponse(b))
	}
	return &dto.BaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove uma base. Bloqueado com ErrBaseInUse enquanto houver guias
// de remessa vinculadas (verificação explícita antes do DELETE).
func (uc *BaseUseCase) Delete(id string) error {
	base, err := uc.baseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if base == nil {
		return domain.ErrNotFound
	}
	count, err := uc.orderRepo.CountByBase(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrBaseInUse
	}
	return uc.baseRepo.Delete(id)
}

func toBaseResponse(b *entity.Base) *dto.BaseResponse {
	if b == nil {
		return nil
	}
	return &dto.BaseResponse{
		ID:    b.ID,
		Name:  b.Name,
		Phone: b.Phone,
		Address: dto.AddressResponse{
			Street:       b.Address.Street,
			Number:       b.Address.Number,
			Complement:   b.Address.Complement,
			Neighborhood: b.Address.Neighborhood,
			City:         b.Address.City,
			State:        b.Address.State,
			ZipCode:      b.Address.ZipCode,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
