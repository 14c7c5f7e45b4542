package repository

import (
	"time"

	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
)

// ServiceItemRepository define a porta de persistência para ServiceItem.
// Listagens excluem itens removidos logicamente; GetByID devolve o registro
// mesmo removido (comportamento por endpoint documentado).
type ServiceItemRepository interface {
	Create(item *entity.ServiceItem) error
	GetByID(id string) (*entity.ServiceItem, error)
	Update(item *entity.ServiceItem) error
	List(baseID string, limit, offset int) ([]*entity.ServiceItem, error)
	SoftDelete(id string, at time.Time) error
}
