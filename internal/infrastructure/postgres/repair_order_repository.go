package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lucasmgo/frota-gr-api/internal/domain"
	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repository"
)

var _ repository.RepairOrderRepository = (*RepairOrderRepo)(nil)

// RepairOrderRepo implementação da porta RepairOrderRepository sobre
// PostgreSQL: tabela repair_orders mais o vínculo N:N repair_order_users,
// sincronizado em Create/Update a partir de order.UserIDs.
type RepairOrderRepo struct {
	q Querier
}

// NewRepairOrderRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewRepairOrderRepository(q Querier) *RepairOrderRepo {
	return &RepairOrderRepo{q: q}
}

const orderColumns = `id, gcaf, base_id, plate, kilometers, status, observations, discount, created_at, updated_at`

// Create persiste o cabeçalho da guia e o vínculo com os usuários.
func (r *RepairOrderRepo) Create(order *entity.RepairOrder) error {
	query := `
		INSERT INTO repair_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.GCAF, order.BaseID, order.Plate, order.Kilometers,
		order.Status, order.Observations, order.Discount,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // gcaf duplicado
		}
		return fmt.Errorf("insert repair order: %w", err)
	}
	return r.replaceUsers(order.ID, order.UserIDs)
}

// GetByID obtém o cabeçalho da guia e os IDs dos usuários designados.
func (r *RepairOrderRepo) GetByID(id string) (*entity.RepairOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM repair_orders WHERE id = $1`
	order, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair order: %w", err)
	}
	order.UserIDs, err = r.loadUserIDs(order.ID)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Update atualiza o cabeçalho e refaz o vínculo de usuários.
func (r *RepairOrderRepo) Update(order *entity.RepairOrder) error {
	query := `
		UPDATE repair_orders SET gcaf = $2, base_id = $3, plate = $4, kilometers = $5,
			status = $6, observations = $7, discount = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.GCAF, order.BaseID, order.Plate, order.Kilometers,
		order.Status, order.Observations, order.Discount, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update repair order: %w", err)
	}
	return r.replaceUsers(order.ID, order.UserIDs)
}

// List lista guias; plate != "" filtra por substring da placa (case-insensitive
// via ILIKE, a placa já chega em maiúsculas do use case).
func (r *RepairOrderRepo) List(plate string, limit, offset int) ([]*entity.RepairOrder, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM repair_orders
		WHERE ($1 = '' OR plate ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, plate, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list repair orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.RepairOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan repair order: %w", err)
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, order := range list {
		if order.UserIDs, err = r.loadUserIDs(order.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Delete remove a guia e o vínculo de usuários. Os serviços são removidos pelo
// RepairOrderServiceRepository dentro da mesma transação.
func (r *RepairOrderRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM repair_order_users WHERE repair_order_id = $1`, id); err != nil {
		return fmt.Errorf("delete repair order users: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM repair_orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete repair order: %w", err)
	}
	return nil
}

// CountByBase conta guias vinculadas a uma base (trava de remoção).
func (r *RepairOrderRepo) CountByBase(baseID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM repair_orders WHERE base_id = $1`, baseID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count repair orders by base: %w", err)
	}
	return count, nil
}

// replaceUsers refaz o vínculo N:N guia-usuário.
func (r *RepairOrderRepo) replaceUsers(orderID string, userIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM repair_order_users WHERE repair_order_id = $1`, orderID); err != nil {
		return fmt.Errorf("clear repair order users: %w", err)
	}
	for _, userID := range userIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO repair_order_users (repair_order_id, user_id) VALUES ($1, $2)`,
			orderID, userID,
		)
		if err != nil {
			return fmt.Errorf("link repair order user %s: %w", userID, err)
		}
	}
	return nil
}

func (r *RepairOrderRepo) loadUserIDs(orderID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT user_id FROM repair_order_users WHERE repair_order_id = $1 ORDER BY user_id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load repair order users: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan repair order user: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.RepairOrder, error) {
	var o entity.RepairOrder
	err := row.Scan(
		&o.ID, &o.GCAF, &o.BaseID, &o.Plate, &o.Kilometers,
		&o.Status, &o.Observations, &o.Discount,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
