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

var _ repository.RepairOrderServiceRepository = (*RepairOrderServiceRepo)(nil)

// RepairOrderServiceRepo implementação da porta RepairOrderServiceRepository
// sobre PostgreSQL. ListByOrder filtra deleted_at IS NULL; GetByID não filtra.
type RepairOrderServiceRepo struct {
	q Querier
}

// NewRepairOrderServiceRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewRepairOrderServiceRepository(q Querier) *RepairOrderServiceRepo {
	return &RepairOrderServiceRepo{q: q}
}

const orderServiceColumns = `id, repair_order_id, item_id, quantity, category, type, labor,
	value, discount, started_at, finished_at, status, photo, deleted_at, created_at, updated_at`

// Create persiste um novo serviço de guia.
func (r *RepairOrderServiceRepo) Create(service *entity.RepairOrderService) error {
	query := `
		INSERT INTO repair_order_services (` + orderServiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.RepairOrderID, service.ItemID, service.Quantity,
		service.Category, service.Type, service.Labor,
		service.Value, service.Discount, service.StartedAt, service.FinishedAt,
		service.Status, service.Photo, service.DeletedAt,
		service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert repair order service: %w", err)
	}
	return nil
}

// GetByID obtém um serviço por ID, inclusive removidos logicamente.
func (r *RepairOrderServiceRepo) GetByID(id string) (*entity.RepairOrderService, error) {
	query := `SELECT ` + orderServiceColumns + ` FROM repair_order_services WHERE id = $1`
	s, err := scanOrderService(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair order service: %w", err)
	}
	return s, nil
}

// Update atualiza um serviço existente.
func (r *RepairOrderServiceRepo) Update(service *entity.RepairOrderService) error {
	query := `
		UPDATE repair_order_services SET item_id = $2, quantity = $3, category = $4, type = $5,
			labor = $6, value = $7, discount = $8, started_at = $9, finished_at = $10,
			status = $11, photo = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.ItemID, service.Quantity, service.Category, service.Type,
		service.Labor, service.Value, service.Discount, service.StartedAt, service.FinishedAt,
		service.Status, service.Photo, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update repair order service: %w", err)
	}
	return nil
}

// ListByOrder lista os serviços ativos de uma guia (deleted_at IS NULL).
func (r *RepairOrderServiceRepo) ListByOrder(repairOrderID string) ([]*entity.RepairOrderService, error) {
	query := `
		SELECT ` + orderServiceColumns + `
		FROM repair_order_services
		WHERE repair_order_id = $1 AND deleted_at IS NULL
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, repairOrderID)
	if err != nil {
		return nil, fmt.Errorf("list repair order services: %w", err)
	}
	defer rows.Close()
	var list []*entity.RepairOrderService
	for rows.Next() {
		s, err := scanOrderService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan repair order service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// SoftDelete marca o serviço como removido (deleted_at).
func (r *RepairOrderServiceRepo) SoftDelete(id string, at time.Time) error {
	query := `UPDATE repair_order_services SET deleted_at = $2, updated_at = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, at)
	if err != nil {
		return fmt.Errorf("soft delete repair order service: %w", err)
	}
	return nil
}

// DeleteByOrder remove fisicamente todos os serviços de uma guia (cascata do
// DELETE da guia, na mesma transação).
func (r *RepairOrderServiceRepo) DeleteByOrder(repairOrderID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM repair_order_services WHERE repair_order_id = $1`, repairOrderID)
	if err != nil {
		return fmt.Errorf("delete repair order services: %w", err)
	}
	return nil
}

func scanOrderService(row pgx.Row) (*entity.RepairOrderService, error) {
	var s entity.RepairOrderService
	err := row.Scan(
		&s.ID, &s.RepairOrderID, &s.ItemID, &s.Quantity,
		&s.Category, &s.Type, &s.Labor,
		&s.Value, &s.Discount, &s.StartedAt, &s.FinishedAt,
		&s.Status, &s.Photo, &s.DeletedAt,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
