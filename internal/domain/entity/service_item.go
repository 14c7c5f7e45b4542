package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceItem item de catálogo faturável (serviço ou peça) com preço padrão,
// pertencente a uma base. Remoção é lógica (DeletedAt).
type ServiceItem struct {
	ID        string
	Name      string
	Value     decimal.Decimal // preço unitário padrão, >= 0
	BaseID    string
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Deleted informa se o item foi removido logicamente.
func (s *ServiceItem) Deleted() bool {
	return s.DeletedAt != nil
}
