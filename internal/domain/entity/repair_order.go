package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status da guia de remessa (GR). Enum fechado: qualquer valor fora da lista é
// rejeitado na borda. Não há grafo de transições imposto: qualquer membro pode
// ser atribuído sobre qualquer outro pelo fluxo de revisão.
const (
	OrderStatusPending           = "PENDING"            // estado inicial de toda guia
	OrderStatusRevision          = "REVISION"           // devolvida para correção
	OrderStatusApproved          = "APPROVED"           // aprovada integralmente
	OrderStatusPartiallyApproved = "PARTIALLY_APPROVED" // parte dos serviços aprovada
	OrderStatusInvoiceApproved   = "INVOICE_APPROVED"   // liberada para faturamento
	OrderStatusCancelled         = "CANCELLED"          // anulada
)

// RepairOrder é a guia de remessa: cabeçalho da ordem de manutenção de um
// veículo, com os serviços lançados e o pessoal designado (N:N com User).
// O status da guia e o status de cada serviço são enums independentes, sem
// derivação automática entre eles.
type RepairOrder struct {
	ID           string
	GCAF         int64 // número de referência externo, único
	BaseID       string
	Plate        string // placa do veículo, <= 7 caracteres, sempre maiúscula
	Kilometers   int64  // odômetro, >= 0
	Status       string
	Observations string
	Discount     decimal.Decimal // desconto extra da guia, >= 0
	UserIDs      []string
	Services     []*RepairOrderService
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidOrderStatus informa se o status pertence ao enum da guia.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusRevision, OrderStatusApproved,
		OrderStatusPartiallyApproved, OrderStatusInvoiceApproved, OrderStatusCancelled:
		return true
	}
	return false
}
