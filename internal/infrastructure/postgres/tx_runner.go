package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lucasmgo/frota-gr-api/internal/application/usecase"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repository"
)

var _ usecase.OrderTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL, com os
// repositórios de guia e de serviços amarrados à mesma tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repos presos à tx e faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orders repository.RepairOrderRepository,
	services repository.RepairOrderServiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewRepairOrderRepository(tx)
	svcRepo := NewRepairOrderServiceRepository(tx)

	if err := fn(orderRepo, svcRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
