package repairorder_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/internal/domain/repairorder"
)

func svc(value, discount float64, qty int64) *entity.RepairOrderService {
	return &entity.RepairOrderService{
		ID:       "s-" + decimal.NewFromFloat(value).String(),
		Quantity: qty,
		Value:    decimal.NewFromFloat(value),
		Discount: decimal.NewFromFloat(discount),
		Status:   entity.ServiceStatusPending,
	}
}

// Cenário de referência: serviço de 100 com desconto 10 e quantidade 2,
// desconto extra de 20 na guia → linha 180, total 160.
func TestCompute_CenarioReferencia(t *testing.T) {
	s := svc(100, 10, 2)
	assert.True(t, repairorder.LineTotal(s).Equal(decimal.NewFromInt(180)),
		"lineTotal = (100-10)*2 = 180")

	totals := repairorder.Compute([]*entity.RepairOrderService{s}, decimal.NewFromInt(20))
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(200)), "subtotal = 100*2")
	assert.True(t, totals.TotalDiscount.Equal(decimal.NewFromInt(40)), "descontos = 10*2 + 20")
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(160)), "total = 200 - 40")
}

func TestCompute_VariasLinhas(t *testing.T) {
	services := []*entity.RepairOrderService{
		svc(50, 0, 1),    // 50
		svc(30.50, 5, 2), // 61 - 10
		svc(10, 2.50, 4), // 40 - 10
	}
	totals := repairorder.Compute(services, decimal.Zero)

	require.True(t, totals.Subtotal.Equal(decimal.NewFromFloat(151)), "subtotal: got %s", totals.Subtotal)
	require.True(t, totals.TotalDiscount.Equal(decimal.NewFromInt(20)), "descontos: got %s", totals.TotalDiscount)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(131)))
}

// Idempotência: duas agregações sobre a mesma guia produzem o mesmo resultado,
// e a identidade total = subtotal − totalDiscount vale exatamente.
func TestCompute_Idempotente(t *testing.T) {
	services := []*entity.RepairOrderService{svc(99.99, 9.99, 3), svc(1.01, 0, 7)}
	discount := decimal.NewFromFloat(15.75)

	first := repairorder.Compute(services, discount)
	second := repairorder.Compute(services, discount)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.TotalDiscount.Equal(second.TotalDiscount))
	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Total.Equal(first.Subtotal.Sub(first.TotalDiscount)),
		"total deve ser exatamente subtotal - totalDiscount")
}

// Serviços removidos logicamente ficam fora da soma.
func TestCompute_ExcluiRemovidosLogicamente(t *testing.T) {
	deleted := svc(500, 0, 1)
	now := time.Now()
	deleted.DeletedAt = &now

	totals := repairorder.Compute([]*entity.RepairOrderService{svc(100, 0, 1), deleted}, decimal.Zero)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(100)))
}

// O status do serviço (inclusive CANCELLED) não altera os totais.
func TestCompute_StatusDoServicoNaoAfetaTotais(t *testing.T) {
	cancelled := svc(40, 0, 1)
	cancelled.Status = entity.ServiceStatusCancelled

	totals := repairorder.Compute([]*entity.RepairOrderService{svc(60, 0, 1), cancelled}, decimal.Zero)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(100)))
}

func TestCompute_GuiaSemServicos(t *testing.T) {
	totals := repairorder.Compute(nil, decimal.NewFromInt(10))
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(-10)),
		"o valor calculado é preservado mesmo negativo")
	assert.True(t, totals.DisplayTotal().IsZero(),
		"a exibição trava em zero para totais negativos")
}
