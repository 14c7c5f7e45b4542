package repairorder

import (
	"fmt"

	"github.com/lucasmgo/frota-gr-api/internal/domain"
	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
)

// ParseOrderStatus valida que o valor pertence ao enum da guia e o devolve.
// Não há grafo de transições: o fluxo de revisão pode atribuir qualquer membro
// sobre qualquer outro (inclusive sair de CANCELLED), desde que seja um dos
// seis valores.
func ParseOrderStatus(s string) (string, error) {
	if !entity.ValidOrderStatus(s) {
		return "", fmt.Errorf("%w: status de guia %q", domain.ErrInvalidStatus, s)
	}
	return s, nil
}

// ParseServiceStatus valida que o valor pertence ao enum do serviço.
func ParseServiceStatus(s string) (string, error) {
	if !entity.ValidServiceStatus(s) {
		return "", fmt.Errorf("%w: status de serviço %q", domain.ErrInvalidStatus, s)
	}
	return s, nil
}

// OrderStatuses lista os valores válidos do enum da guia, na ordem do fluxo.
func OrderStatuses() []string {
	return []string{
		entity.OrderStatusPending,
		entity.OrderStatusRevision,
		entity.OrderStatusApproved,
		entity.OrderStatusPartiallyApproved,
		entity.OrderStatusInvoiceApproved,
		entity.OrderStatusCancelled,
	}
}
