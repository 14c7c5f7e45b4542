package usecase

import (
	"fmt"
	"time"

	"github.com/lucasmgo/frota-gr-api/internal/application/dto"
	"github.com/lucasmgo/frota-gr-api/internal/domain"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repository"
)

// RepairOrderServiceUseCase operações avulsas sobre serviços de guia: POST em
// guia existente, PATCH individual (inclusive troca de foto) e remoção lógica.
type RepairOrderServiceUseCase struct {
	orderUC   *RepairOrderUseCase
	orderRepo repository.RepairOrderRepository
	svcRepo   repository.RepairOrderServiceRepository
}

// NewRepairOrderServiceUseCase constrói o caso de uso.
func NewRepairOrderServiceUseCase(
	orderUC *RepairOrderUseCase,
	orderRepo repository.RepairOrderRepository,
	svcRepo repository.RepairOrderServiceRepository,
) *RepairOrderServiceUseCase {
	return &RepairOrderServiceUseCase{orderUC: orderUC, orderRepo: orderRepo, svcRepo: svcRepo}
}

// Create lança um serviço em uma guia existente. Mesmas regras da criação via
// guia: foto obrigatória, enums validados, intervalo consistente.
func (uc *RepairOrderServiceUseCase) Create(in dto.CreateRepairOrderServiceRequest) (*dto.RepairOrderServiceResponse, error) {
	order, err := uc.orderRepo.GetByID(in.RepairOrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: guia %s", domain.ErrNotFound, in.RepairOrderID)
	}
	svc, err := uc.orderUC.buildService(order.ID, in.CreateRepairOrderServiceInput, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.svcRepo.Create(svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// GetByID devolve o serviço mesmo quando removido logicamente (o detalhe
// direto não filtra; apenas as listagens filtram).
func (uc *RepairOrderServiceUseCase) GetByID(id string) (*dto.RepairOrderServiceResponse, error) {
	svc, err := uc.svcRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, nil
	}
	return toServiceResponse(svc), nil
}

// ListByOrder lista os serviços ativos de uma guia (exclui removidos).
func (uc *RepairOrderServiceUseCase) ListByOrder(repairOrderID string) (*dto.RepairOrderServiceListResponse, error) {
	list, err := uc.svcRepo.ListByOrder(repairOrderID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RepairOrderServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServiceResponse(s))
	}
	return &dto.RepairOrderServiceListResponse{Items: items}, nil
}

// Update aplica o PATCH parcial de um serviço.
func (uc *RepairOrderServiceUseCase) Update(id string, in dto.UpdateRepairOrderServiceRequest) (*dto.RepairOrderServiceResponse, error) {
	svc, err := uc.svcRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, nil
	}
	if err := applyServicePatch(svc, in); err != nil {
		return nil, err
	}
	svc.UpdatedAt = time.Now()
	if err := uc.svcRepo.Update(svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// Delete remove logicamente um serviço (marca DeletedAt).
func (uc *RepairOrderServiceUseCase) Delete(id string) error {
	svc, err := uc.svcRepo.GetByID(id)
	if err != nil {
		return err
	}
	if svc == nil {
		return domain.ErrNotFound
	}
	if svc.Deleted() {
		return nil // idempotente
	}
	return uc.svcRepo.SoftDelete(id, time.Now())
}
