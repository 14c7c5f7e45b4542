package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmgo/frota-gr-api/internal/application/dto"
	"github.com/lucasmgo/frota-gr-api/internal/application/usecase"
	"github.com/lucasmgo/frota-gr-api/internal/domain"
	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
)

const testPhoto = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="

type orderFixture struct {
	orderUC   *usecase.RepairOrderUseCase
	svcUC     *usecase.RepairOrderServiceUseCase
	baseRepo  *memBaseRepo
	itemRepo  *memItemRepo
	orderRepo *memOrderRepo
	svcRepo   *memServiceRepo
	baseID    string
	itemID    string
}

// newOrderFixture monta o cenário padrão: uma base e um item de catálogo.
func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	baseRepo := newMemBaseRepo()
	itemRepo := newMemItemRepo()
	orderRepo := newMemOrderRepo()
	svcRepo := newMemServiceRepo()
	tx := &fakeTxRunner{orders: orderRepo, svcs: svcRepo}

	now := time.Now()
	base := &entity.Base{ID: "base-1", Name: "Boituva", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, baseRepo.Create(base))
	item := &entity.ServiceItem{
		ID: "item-1", Name: "Troca de óleo", Value: decimal.NewFromInt(100),
		BaseID: base.ID, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, itemRepo.Create(item))

	orderUC := usecase.NewRepairOrderUseCase(tx, orderRepo, svcRepo, baseRepo, itemRepo)
	svcUC := usecase.NewRepairOrderServiceUseCase(orderUC, orderRepo, svcRepo)
	return &orderFixture{
		orderUC: orderUC, svcUC: svcUC,
		baseRepo: baseRepo, itemRepo: itemRepo,
		orderRepo: orderRepo, svcRepo: svcRepo,
		baseID: base.ID, itemID: item.ID,
	}
}

func (f *orderFixture) serviceInput() dto.CreateRepairOrderServiceInput {
	started := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	return dto.CreateRepairOrderServiceInput{
		ItemID:     f.itemID,
		Quantity:   2,
		Category:   entity.ServiceCategoryLabor,
		Type:       entity.ServiceTypeCorrective,
		Value:      decimal.NewFromInt(100),
		Discount:   decimal.NewFromInt(10),
		StartedAt:  started,
		FinishedAt: started.Add(90 * time.Minute),
		Photo:      testPhoto,
	}
}

func (f *orderFixture) createOrder(t *testing.T) *dto.RepairOrderResponse {
	t.Helper()
	out, err := f.orderUC.Create(context.Background(), dto.CreateRepairOrderRequest{
		GCAF:       "123456789012345",
		BaseID:     f.baseID,
		Plate:      "abc1d23",
		Kilometers: 80_000,
		Discount:   decimal.NewFromInt(20),
		Services:   []dto.CreateRepairOrderServiceInput{f.serviceInput()},
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// Cenário de referência: serviço de 100 com desconto 10 e quantidade 2, mais
// desconto 20 da guia → linha 180, subtotal 200, descontos 40, total 160.
func TestRepairOrderCreate_TotaisCanonicos(t *testing.T) {
	f := newOrderFixture(t)
	out := f.createOrder(t)

	assert.Equal(t, entity.OrderStatusPending, out.Status, "guia nasce PENDING")
	assert.Equal(t, "123456789012345", out.GCAF, "gcaf serializado como string")
	assert.Equal(t, "ABC1D23", out.Plate, "placa normalizada em maiúsculas")

	require.Len(t, out.Services, 1)
	svc := out.Services[0]
	assert.Equal(t, entity.ServiceStatusPending, svc.Status)
	assert.True(t, svc.LineTotal.Equal(decimal.NewFromInt(180)),
		"linha = (100-10)*2, obtido %s", svc.LineTotal)
	assert.Equal(t, "5400000", svc.Duration, "90min em milissegundos, como string")

	assert.True(t, out.Totals.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, out.Totals.TotalDiscount.Equal(decimal.NewFromInt(40)))
	assert.True(t, out.Totals.Total.Equal(decimal.NewFromInt(160)))
}

func TestRepairOrderCreate_FotoObrigatoria(t *testing.T) {
	f := newOrderFixture(t)
	in := f.serviceInput()
	in.Photo = ""

	_, err := f.orderUC.Create(context.Background(), dto.CreateRepairOrderRequest{
		GCAF: "42", BaseID: f.baseID, Plate: "ABC1D23",
		Services: []dto.CreateRepairOrderServiceInput{in},
	})
	assert.ErrorIs(t, err, domain.ErrPhotoRequired)

	// nada foi persistido
	orders, _ := f.orderRepo.List("", 100, 0)
	assert.Empty(t, orders)
}

func TestRepairOrderCreate_EntradasInvalidas(t *testing.T) {
	f := newOrderFixture(t)

	cases := []struct {
		name   string
		mutate func(*dto.CreateRepairOrderRequest)
	}{
		{"gcaf não numérico", func(r *dto.CreateRepairOrderRequest) { r.GCAF = "ABC" }},
		{"placa longa demais", func(r *dto.CreateRepairOrderRequest) { r.Plate = "ABCD1234" }},
		{"km negativo", func(r *dto.CreateRepairOrderRequest) { r.Kilometers = -1 }},
		{"desconto negativo", func(r *dto.CreateRepairOrderRequest) { r.Discount = decimal.NewFromInt(-5) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := dto.CreateRepairOrderRequest{
				GCAF: "42", BaseID: f.baseID, Plate: "ABC1D23",
				Services: []dto.CreateRepairOrderServiceInput{f.serviceInput()},
			}
			tc.mutate(&req)
			_, err := f.orderUC.Create(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRepairOrderCreate_BaseInexistente(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.orderUC.Create(context.Background(), dto.CreateRepairOrderRequest{
		GCAF: "42", BaseID: "base-fantasma", Plate: "ABC1D23",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepairOrderCreate_IntervaloInvertido(t *testing.T) {
	f := newOrderFixture(t)
	in := f.serviceInput()
	in.FinishedAt = in.StartedAt.Add(-time.Hour)

	_, err := f.orderUC.Create(context.Background(), dto.CreateRepairOrderRequest{
		GCAF: "42", BaseID: f.baseID, Plate: "ABC1D23",
		Services: []dto.CreateRepairOrderServiceInput{in},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Serviço soft-deletado sai das listagens e da agregação da guia.
func TestRepairOrder_SoftDeleteForaDosTotais(t *testing.T) {
	f := newOrderFixture(t)
	order := f.createOrder(t)

	extra, err := f.svcUC.Create(dto.CreateRepairOrderServiceRequest{
		RepairOrderID:                 order.ID,
		CreateRepairOrderServiceInput: f.serviceInput(),
	})
	require.NoError(t, err)

	got, err := f.orderUC.GetByID(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Services, 2)
	assert.True(t, got.Totals.Total.Equal(decimal.NewFromInt(340)), "dois serviços: 360-20")

	require.NoError(t, f.svcUC.Delete(extra.ID))
	require.NoError(t, f.svcUC.Delete(extra.ID), "delete é idempotente")

	got, err = f.orderUC.GetByID(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Services, 1)
	assert.True(t, got.Totals.Total.Equal(decimal.NewFromInt(160)))

	// o detalhe direto ainda devolve o registro removido
	svc, err := f.svcUC.GetByID(extra.ID)
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.NotNil(t, svc.DeletedAt)
}

// Mudar o status de um serviço não muda os totais da guia.
func TestRepairOrder_StatusDoServicoNaoAfetaTotais(t *testing.T) {
	f := newOrderFixture(t)
	order := f.createOrder(t)

	cancelled := entity.ServiceStatusCancelled
	_, err := f.svcUC.Update(order.Services[0].ID, dto.UpdateRepairOrderServiceRequest{
		Status: &cancelled,
	})
	require.NoError(t, err)

	got, err := f.orderUC.GetByID(order.ID)
	require.NoError(t, err)
	assert.True(t, got.Totals.Total.Equal(decimal.NewFromInt(160)))
}

// PATCH da guia: cabeçalho parcial + upsert aninhado (com id atualiza, sem id cria).
func TestRepairOrderUpdate_UpsertAninhado(t *testing.T) {
	f := newOrderFixture(t)
	order := f.createOrder(t)

	newDiscount := decimal.NewFromInt(0)
	status := entity.OrderStatusRevision
	novoIn := f.serviceInput()
	got, err := f.orderUC.Update(context.Background(), order.ID, dto.UpdateRepairOrderRequest{
		Status:   &status,
		Discount: &newDiscount,
		Services: []dto.UpsertRepairOrderServiceInput{
			{ID: &order.Services[0].ID, Discount: decimalPtr(decimal.NewFromInt(50))},
			{
				ItemID: &novoIn.ItemID, Quantity: &novoIn.Quantity,
				Category: &novoIn.Category, Type: &novoIn.Type,
				Value: &novoIn.Value, Discount: &novoIn.Discount,
				StartedAt: &novoIn.StartedAt, FinishedAt: &novoIn.FinishedAt,
				Photo: &novoIn.Photo,
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusRevision, got.Status)
	require.Len(t, got.Services, 2)

	// serviço 1: (100-50)*2 = 100; serviço novo: (100-10)*2 = 180; guia sem desconto
	assert.True(t, got.Totals.Subtotal.Equal(decimal.NewFromInt(400)))
	assert.True(t, got.Totals.TotalDiscount.Equal(decimal.NewFromInt(120)))
	assert.True(t, got.Totals.Total.Equal(decimal.NewFromInt(280)))
}

func TestRepairOrderUpdate_StatusForaDoEnum(t *testing.T) {
	f := newOrderFixture(t)
	order := f.createOrder(t)

	invalid := "FINALIZADA"
	_, err := f.orderUC.Update(context.Background(), order.ID, dto.UpdateRepairOrderRequest{
		Status: &invalid,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestRepairOrderUpdate_UpsertDeServicoDeOutraGuia(t *testing.T) {
	f := newOrderFixture(t)
	orderA := f.createOrder(t)

	outB, err := f.orderUC.Create(context.Background(), dto.CreateRepairOrderRequest{
		GCAF: "99", BaseID: f.baseID, Plate: "XYZ9A88",
		Services: []dto.CreateRepairOrderServiceInput{f.serviceInput()},
	})
	require.NoError(t, err)

	// tentar atualizar o serviço da guia B via PATCH da guia A
	_, err = f.orderUC.Update(context.Background(), orderA.ID, dto.UpdateRepairOrderRequest{
		Services: []dto.UpsertRepairOrderServiceInput{
			{ID: &outB.Services[0].ID, Discount: decimalPtr(decimal.Zero)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepairOrderDelete_CascataDeServicos(t *testing.T) {
	f := newOrderFixture(t)
	order := f.createOrder(t)

	require.NoError(t, f.orderUC.Delete(context.Background(), order.ID))

	got, err := f.orderUC.GetByID(order.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, f.svcRepo.services, "serviços removidos em cascata")

	assert.ErrorIs(t, f.orderUC.Delete(context.Background(), order.ID), domain.ErrNotFound)
}

func TestRepairOrderList_FiltroPorPlaca(t *testing.T) {
	f := newOrderFixture(t)
	f.createOrder(t) // ABC1D23

	_, err := f.orderUC.Create(context.Background(), dto.CreateRepairOrderRequest{
		GCAF: "77", BaseID: f.baseID, Plate: "XYZ9A88",
		Services: []dto.CreateRepairOrderServiceInput{f.serviceInput()},
	})
	require.NoError(t, err)

	out, err := f.orderUC.List("abc", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "ABC1D23", out.Items[0].Plate)

	all, err := f.orderUC.List("", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
