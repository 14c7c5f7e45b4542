package usecase

import (
	"context"

	"github.com/lucasmgo/frota-gr-api/internal/domain/repository"
)

// OrderTxRunner executa um callback com os repositórios de guia e de serviços
// amarrados à mesma transação. Criação e upsert de guia + serviços são
// tudo-ou-nada: falha em qualquer serviço desfaz o cabeçalho.
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(
		orders repository.RepairOrderRepository,
		services repository.RepairOrderServiceRepository,
	) error) error
}
