package repository

import "github.com/lucasmgo/frota-gr-api/internal/domain/entity"

// RepairOrderRepository define a porta de persistência para a guia de remessa
// (cabeçalho + vínculo N:N com usuários). Os serviços são persistidos pela
// RepairOrderServiceRepository; Create/Update sincronizam apenas UserIDs.
type RepairOrderRepository interface {
	Create(order *entity.RepairOrder) error
	GetByID(id string) (*entity.RepairOrder, error)
	Update(order *entity.RepairOrder) error
	// List filtra por substring da placa quando plate != "" (case-insensitive).
	List(plate string, limit, offset int) ([]*entity.RepairOrder, error)
	Delete(id string) error
	// CountByBase conta guias vinculadas a uma base (trava de remoção da base).
	CountByBase(baseID string) (int, error)
}
