package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repository"
)

var _ repository.ServiceItemRepository = (*ServiceItemRepo)(nil)

// ServiceItemRepo implementação da porta ServiceItemRepository sobre PostgreSQL.
// Listagens filtram deleted_at IS NULL; GetByID não filtra.
type ServiceItemRepo struct {
	q Querier
}

// NewServiceItemRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewServiceItemRepository(q Querier) *ServiceItemRepo {
	return &ServiceItemRepo{q: q}
}

const serviceItemColumns = `id, name, value, base_id, deleted_at, created_at, updated_at`

// Create persiste um novo item de catálogo.
func (r *ServiceItemRepo) Create(item *entity.ServiceItem) error {
	query := `
		INSERT INTO service_items (` + serviceItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Value, item.BaseID, item.DeletedAt,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID, inclusive removidos logicamente.
func (r *ServiceItemRepo) GetByID(id string) (*entity.ServiceItem, error) {
	query := `SELECT ` + serviceItemColumns + ` FROM service_items WHERE id = $1`
	var it entity.ServiceItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.Value, &it.BaseID, &it.DeletedAt, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service item: %w", err)
	}
	return &it, nil
}

// Update atualiza um item existente.
func (r *ServiceItemRepo) Update(item *entity.ServiceItem) error {
	query := `UPDATE service_items SET name = $2, value = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Value, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service item: %w", err)
	}
	return nil
}

// List lista itens ativos, opcionalmente filtrados por base.
func (r *ServiceItemRepo) List(baseID string, limit, offset int) ([]*entity.ServiceItem, error) {
	query := `
		SELECT ` + serviceItemColumns + `
		FROM service_items
		WHERE deleted_at IS NULL AND ($1 = '' OR base_id = $1)
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, baseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list service items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceItem
	for rows.Next() {
		var it entity.ServiceItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Value, &it.BaseID, &it.DeletedAt, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// SoftDelete marca o item como removido (deleted_at).
func (r *ServiceItemRepo) SoftDelete(id string, at time.Time) error {
	query := `UPDATE service_items SET deleted_at = $2, updated_at = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, at)
	if err != nil {
		return fmt.Errorf("soft delete service item: %w", err)
	}
	return nil
}
