package report

import (
	"context"

	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repairorder"
)

// ServiceForPDF linha do relatório: o serviço enriquecido com o nome do item
// de catálogo.
type ServiceForPDF struct {
	entity.RepairOrderService
	ItemName string
}

// RepairOrderPDFGenerator porta de geração do PDF da guia de remessa.
type RepairOrderPDFGenerator interface {
	GenerateRepairOrderPDF(
		ctx context.Context,
		order *entity.RepairOrder,
		base *entity.Base,
		users []*entity.User,
		services []ServiceForPDF,
		totals repairorder.Totals,
	) ([]byte, error)
}
