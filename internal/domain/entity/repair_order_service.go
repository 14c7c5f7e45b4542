package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categoria do serviço lançado na guia.
const (
	ServiceCategoryLabor    = "LABOR"
	ServiceCategoryMaterial = "MATERIAL"
)

// Tipo de manutenção.
const (
	ServiceTypePreventive = "PREVENTIVE"
	ServiceTypeCorrective = "CORRECTIVE"
	ServiceTypeHelp       = "HELP"
)

// Status do serviço, independente do status da guia.
const (
	ServiceStatusPending   = "PENDING"
	ServiceStatusApproved  = "APPROVED"
	ServiceStatusCancelled = "CANCELLED"
)

// RepairOrderService é um serviço lançado em uma guia de remessa: referencia um
// item de catálogo mas carrega preço próprio (Value), desconto e o intervalo
// trabalhado. A foto é evidência obrigatória no momento do lançamento (regra de
// borda, não de persistência). Remoção é lógica (DeletedAt).
type RepairOrderService struct {
	ID            string
	RepairOrderID string
	ItemID        string
	Quantity      int64  // >= 1
	Category      string // LABOR | MATERIAL
	Type          string // PREVENTIVE | CORRECTIVE | HELP
	Labor         string // descrição livre do trabalho
	Value         decimal.Decimal // preço do serviço, independente do preço de catálogo
	Discount      decimal.Decimal // >= 0
	StartedAt     time.Time
	FinishedAt    time.Time // >= StartedAt
	Status        string    // PENDING | APPROVED | CANCELLED
	Photo         string    // URL ou data URI base64
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DurationMillis devolve a duração do trabalho em milissegundos.
func (s *RepairOrderService) DurationMillis() int64 {
	return s.FinishedAt.Sub(s.StartedAt).Milliseconds()
}

// Deleted informa se o serviço foi removido logicamente.
func (s *RepairOrderService) Deleted() bool {
	return s.DeletedAt != nil
}

// ValidServiceCategory informa se a categoria pertence ao enum.
func ValidServiceCategory(c string) bool {
	return c == ServiceCategoryLabor || c == ServiceCategoryMaterial
}

// ValidServiceType informa se o tipo pertence ao enum.
func ValidServiceType(t string) bool {
	return t == ServiceTypePreventive || t == ServiceTypeCorrective || t == ServiceTypeHelp
}

// ValidServiceStatus informa se o status pertence ao enum do serviço.
func ValidServiceStatus(s string) bool {
	return s == ServiceStatusPending || s == ServiceStatusApproved || s == ServiceStatusCancelled
}
