package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRepairOrderServiceInput serviço lançado na criação da guia. No POST
// multipart este payload chega como string JSON no campo "services" e a foto
// de cada posição i chega no arquivo "photos[i]".
type CreateRepairOrderServiceInput struct {
	ItemID     string          `json:"item_id" validate:"required,uuid"`
	Quantity   int64           `json:"quantity" validate:"required,min=1"`
	Category   string          `json:"category" validate:"required,oneof=LABOR MATERIAL"`
	Type       string          `json:"type" validate:"required,oneof=PREVENTIVE CORRECTIVE HELP"`
	Labor      string          `json:"labor"`
	Value      decimal.Decimal `json:"value" validate:"required"`
	Discount   decimal.Decimal `json:"discount"`
	StartedAt  time.Time       `json:"started_at" validate:"required"`
	FinishedAt time.Time       `json:"finished_at" validate:"required"`
	Photo      string          `json:"photo"` // URL ou data URI; obrigatória após anexar o upload
}

// CreateRepairOrderRequest entrada para criar uma guia de remessa.
// GCAF viaja como string para não perder precisão no JSON.
type CreateRepairOrderRequest struct {
	GCAF         string                          `json:"gcaf" validate:"required,numeric"`
	BaseID       string                          `json:"base_id" validate:"required,uuid"`
	Plate        string                          `json:"plate" validate:"required,max=7"`
	Kilometers   int64                           `json:"kilometers" validate:"min=0"`
	Observations string                          `json:"observations"`
	Discount     decimal.Decimal                 `json:"discount"`
	UserIDs      []string                        `json:"user_ids"`
	Services     []CreateRepairOrderServiceInput `json:"services"`
}

// UpsertRepairOrderServiceInput upsert aninhado no PATCH da guia: com ID
// atualiza o serviço existente, sem ID cria um novo.
type UpsertRepairOrderServiceInput struct {
	ID         *string          `json:"id"`
	ItemID     *string          `json:"item_id"`
	Quantity   *int64           `json:"quantity"`
	Category   *string          `json:"category"`
	Type       *string          `json:"type"`
	Labor      *string          `json:"labor"`
	Value      *decimal.Decimal `json:"value"`
	Discount   *decimal.Decimal `json:"discount"`
	StartedAt  *time.Time       `json:"started_at"`
	FinishedAt *time.Time       `json:"finished_at"`
	Status     *string          `json:"status"`
	Photo      *string          `json:"photo"`
}

// UpdateRepairOrderRequest atualização parcial do cabeçalho + upsert de serviços.
type UpdateRepairOrderRequest struct {
	GCAF         *string                         `json:"gcaf"`
	BaseID       *string                         `json:"base_id"`
	Plate        *string                         `json:"plate" validate:"omitempty,max=7"`
	Kilometers   *int64                          `json:"kilometers"`
	Status       *string                         `json:"status"`
	Observations *string                         `json:"observations"`
	Discount     *decimal.Decimal                `json:"discount"`
	UserIDs      *[]string                       `json:"user_ids"`
	Services     []UpsertRepairOrderServiceInput `json:"services"`
}

// UpdateRepairOrderServiceRequest PATCH direto de um serviço da guia.
type UpdateRepairOrderServiceRequest struct {
	Quantity   *int64           `json:"quantity"`
	Category   *string          `json:"category"`
	Type       *string          `json:"type"`
	Labor      *string          `json:"labor"`
	Value      *decimal.Decimal `json:"value"`
	Discount   *decimal.Decimal `json:"discount"`
	StartedAt  *time.Time       `json:"started_at"`
	FinishedAt *time.Time       `json:"finished_at"`
	Status     *string          `json:"status"`
	Photo      *string          `json:"photo"`
}

// CreateRepairOrderServiceRequest POST avulso de serviço em guia existente.
type CreateRepairOrderServiceRequest struct {
	RepairOrderID string `json:"repair_order_id" validate:"required,uuid"`
	CreateRepairOrderServiceInput
}

// RepairOrderServiceResponse saída de um serviço. Duration em milissegundos,
// serializada como string para não perder precisão.
type RepairOrderServiceResponse struct {
	ID            string          `json:"id"`
	RepairOrderID string          `json:"repair_order_id"`
	ItemID        string          `json:"item_id"`
	Quantity      int64           `json:"quantity"`
	Category      string          `json:"category"`
	Type          string          `json:"type"`
	Labor         string          `json:"labor,omitempty"`
	Value         decimal.Decimal `json:"value"`
	Discount      decimal.Decimal `json:"discount"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    time.Time       `json:"finished_at"`
	Duration      string          `json:"duration"`
	Status        string          `json:"status"`
	Photo         string          `json:"photo,omitempty"`
	LineTotal     decimal.Decimal `json:"line_total"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RepairOrderTotalsResponse agregação financeira canônica da guia.
type RepairOrderTotalsResponse struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	Total         decimal.Decimal `json:"total"`
}

// RepairOrderResponse saída completa da guia: cabeçalho, serviços ativos e totais.
type RepairOrderResponse struct {
	ID           string                       `json:"id"`
	GCAF         string                       `json:"gcaf"`
	BaseID       string                       `json:"base_id"`
	Plate        string                       `json:"plate"`
	Kilometers   int64                        `json:"kilometers"`
	Status       string                       `json:"status"`
	Observations string                       `json:"observations,omitempty"`
	Discount     decimal.Decimal              `json:"discount"`
	UserIDs      []string                     `json:"user_ids"`
	Services     []RepairOrderServiceResponse `json:"services"`
	Totals       RepairOrderTotalsResponse    `json:"totals"`
	CreatedAt    time.Time                    `json:"created_at"`
	UpdatedAt    time.Time                    `json:"updated_at"`
}

// RepairOrderListResponse lista paginada de guias.
type RepairOrderListResponse struct {
	Items []RepairOrderResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// RepairOrderServiceListResponse lista de serviços de uma guia.
type RepairOrderServiceListResponse struct {
	Items []RepairOrderServiceResponse `json:"items"`
}
