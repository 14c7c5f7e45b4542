package repository

import (
	"time"

	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
)

// RepairOrderServiceRepository define a porta de persistência para os serviços
// de uma guia. ListByOrder exclui removidos logicamente; GetByID devolve o
// registro mesmo removido.
type RepairOrderServiceRepository interface {
	Create(service *entity.RepairOrderService) error
	GetByID(id string) (*entity.RepairOrderService, error)
	Update(service *entity.RepairOrderService) error
	ListByOrder(repairOrderID string) ([]*entity.RepairOrderService, error)
	SoftDelete(id string, at time.Time) error
	// DeleteByOrder remove fisicamente os serviços de uma guia (cascata do DELETE da guia).
	DeleteByOrder(repairOrderID string) error
}
