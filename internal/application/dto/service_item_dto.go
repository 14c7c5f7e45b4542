package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceItemRequest entrada para criar um item de catálogo.
type CreateServiceItemRequest struct {
	Name   string          `json:"name" validate:"required,min=1,max=200"`
	Value  decimal.Decimal `json:"value" validate:"required"`
	BaseID string          `json:"base_id" validate:"required,uuid"`
}

// UpdateServiceItemRequest atualização parcial do item.
type UpdateServiceItemRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Value *decimal.Decimal `json:"value"`
}

// ServiceItemResponse saída de um item de catálogo.
type ServiceItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
	BaseID    string          `json:"base_id"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ServiceItemListResponse lista paginada de itens.
type ServiceItemListResponse struct {
	Items []ServiceItemResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
