package usecase_test

import (
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

func newItemFixture(t *testing.T) (*usecase.ServiceItemUseCase, *memItemRepo, string) {
	t.Helper()
	itemRepo := newMemItemRepo()
	baseRepo := newMemBaseRepo()
	now := time.Now()
	require.NoError(t, baseRepo.Create(&entity.Base{
		ID: "base-1", Name: "Boituva", CreatedAt: now, UpdatedAt: now,
	}))
	return usecase.NewServiceItemUseCase(itemRepo, baseRepo), itemRepo, "base-1"
}

func TestServiceItemCreate(t *testing.T) {
	uc, _, baseID := newItemFixture(t)

	out, err := uc.Create(dto.CreateServiceItemRequest{
		Name: "Troca de óleo", Value: decimal.NewFromFloat(189.90), BaseID: baseID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Value.Equal(decimal.NewFromFloat(189.90)))
}

func TestServiceItemCreate_ValorNegativo(t *testing.T) {
	uc, _, baseID := newItemFixture(t)
	_, err := uc.Create(dto.CreateServiceItemRequest{
		Name: "Item", Value: decimal.NewFromInt(-1), BaseID: baseID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServiceItemCreate_BaseInexistente(t *testing.T) {
	uc, _, _ := newItemFixture(t)
	_, err := uc.Create(dto.CreateServiceItemRequest{
		Name: "Item", Value: decimal.NewFromInt(10), BaseID: "base-fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Soft delete: o item sai das listagens mas o GetByID ainda o devolve.
func TestServiceItemDelete_SomeDasListas(t *testing.T) {
	uc, _, baseID := newItemFixture(t)

	a, err := uc.Create(dto.CreateServiceItemRequest{Name: "A", Value: decimal.NewFromInt(10), BaseID: baseID})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateServiceItemRequest{Name: "B", Value: decimal.NewFromInt(20), BaseID: baseID})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(a.ID))
	require.NoError(t, uc.Delete(a.ID), "delete é idempotente")

	list, err := uc.List(baseID, 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "B", list.Items[0].Name)

	got, err := uc.GetByID(a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotNil(t, got.DeletedAt)
}

func TestServiceItemDelete_Inexistente(t *testing.T) {
	uc, _, _ := newItemFixture(t)
	assert.ErrorIs(t, uc.Delete("nao-existe"), domain.ErrNotFound)
}
