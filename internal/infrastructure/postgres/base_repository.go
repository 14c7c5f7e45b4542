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

var _ repository.BaseRepository = (*BaseRepo)(nil)

// BaseRepo implementação da porta BaseRepository sobre PostgreSQL.
// O endereço aninhado é achatado em colunas da própria tabela.
type BaseRepo struct {
	q Querier
}

// NewBaseRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewBaseRepository(q Querier) *BaseRepo {
	return &BaseRepo{q: q}
}

const baseColumns = `id, name, phone, street, number, complement, neighborhood, city, state, zip_code, created_at, updated_at`

// Create persiste uma nova base.
func (r *BaseRepo) Create(base *entity.Base) error {
	query := `
		INSERT INTO bases (` + baseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		base.ID, base.Name, base.Phone,
		base.Address.Street, base.Address.Number, base.Address.Complement,
		base.Address.Neighborhood, base.Address.City, base.Address.State, base.Address.ZipCode,
		base.CreatedAt, base.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert base: %w", err)
	}
	return nil
}

// GetByID obtém uma base por ID.
func (r *BaseRepo) GetByID(id string) (*entity.Base, error) {
	query := `SELECT ` + baseColumns + ` FROM bases WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get base")
}

// GetByName obtém uma base pelo nome (único).
func (r *BaseRepo) GetByName(name string) (*entity.Base, error) {
	query := `SELECT ` + baseColumns + ` FROM bases WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get base by name")
}

// Update atualiza uma base existente.
func (r *BaseRepo) Update(base *entity.Base) error {
	query := `
		UPDATE bases SET name = $2, phone = $3, street = $4, number = $5, complement = $6,
			neighborhood = $7, city = $8, state = $9, zip_code = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		base.ID, base.Name, base.Phone,
		base.Address.Street, base.Address.Number, base.Address.Complement,
		base.Address.Neighborhood, base.Address.City, base.Address.State, base.Address.ZipCode,
		base.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update base: %w", err)
	}
	return nil
}

// List lista bases com paginação.
func (r *BaseRepo) List(limit, offset int) ([]*entity.Base, error) {
	query := `SELECT ` + baseColumns + ` FROM bases ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Base
	for rows.Next() {
		b, err := scanBase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan base: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Delete remove uma base por ID. A trava de guias vinculadas é verificada no
// use case; a FK fica como rede de segurança.
func (r *BaseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM bases WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrBaseInUse
		}
		return fmt.Errorf("delete base: %w", err)
	}
	return nil
}

func (r *BaseRepo) scanOne(row pgx.Row, op string) (*entity.Base, error) {
	b, err := scanBase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func scanBase(row pgx.Row) (*entity.Base, error) {
	var b entity.Base
	err := row.Scan(
		&b.ID, &b.Name, &b.Phone,
		&b.Address.Street, &b.Address.Number, &b.Address.Complement,
		&b.Address.Neighborhood, &b.Address.City, &b.Address.State, &b.Address.ZipCode,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
