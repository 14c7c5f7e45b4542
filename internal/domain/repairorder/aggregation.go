// Package repairorder concentra as regras de negócio da guia de remessa:
// validação do ciclo de vida (status) e a agregação financeira canônica.
//
// Fórmula canônica (ciente de quantidade, aplicada em todas as visões —
// dashboard, detalhe e PDF):
//
//	lineTotal(s)  = (s.Value − s.Discount) × s.Quantity
//	subtotal      = Σ s.Value × s.Quantity
//	totalDiscount = Σ s.Discount × s.Quantity + guia.Discount
//	total         = subtotal − totalDiscount
//
// Serviços removidos logicamente ficam fora da soma. O status do serviço
// (PENDING/APPROVED/CANCELLED) não afeta os totais.
package repairorder

import (
	"github.com/shopspring/decimal"

	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
)

// Totals resultado da agregação financeira de uma guia.
type Totals struct {
	Subtotal      decimal.Decimal // Σ value × quantity, antes de descontos
	TotalDiscount decimal.Decimal // Σ discount × quantity + desconto da guia
	Total         decimal.Decimal // Subtotal − TotalDiscount
}

// LineTotal calcula o total de uma linha: (value − discount) × quantity.
func LineTotal(s *entity.RepairOrderService) decimal.Decimal {
	qty := decimal.NewFromInt(s.Quantity)
	return s.Value.Sub(s.Discount).Mul(qty)
}

// Compute agrega os serviços de uma guia com o desconto extra do cabeçalho.
// É uma função pura: duas chamadas sobre os mesmos dados produzem o mesmo
// resultado, e Total == Subtotal − TotalDiscount vale exatamente.
func Compute(services []*entity.RepairOrderService, orderDiscount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	servicesDiscount := decimal.Zero
	for _, s := range services {
		if s.Deleted() {
			continue
		}
		qty := decimal.NewFromInt(s.Quantity)
		subtotal = subtotal.Add(s.Value.Mul(qty))
		servicesDiscount = servicesDiscount.Add(s.Discount.Mul(qty))
	}
	totalDiscount := servicesDiscount.Add(orderDiscount)
	return Totals{
		Subtotal:      subtotal,
		TotalDiscount: totalDiscount,
		Total:         subtotal.Sub(totalDiscount),
	}
}

// DisplayTotal devolve o total para exibição: valores negativos (entrada
// malformada, desconto maior que o valor) aparecem como zero, mas o valor
// calculado segue intacto em Totals.Total.
func (t Totals) DisplayTotal() decimal.Decimal {
	if t.Total.IsNegative() {
		return decimal.Zero
	}
	return t.Total
}
