package entity

import "time"

// Tipos válidos de usuário.
const (
	UserTypeMechanic  = "MECHANIC"  // pessoal de campo, lança guias pela tela simplificada
	UserTypeBudgetist = "BUDGETIST" // orçamentista, acesso ao dashboard e aprovações
)

// Status de aprovação do cadastro. Todo auto-cadastro nasce PENDING e só um
// aprovador o move para APPROVED ou REPROVED.
const (
	UserStatusPending  = "PENDING"
	UserStatusApproved = "APPROVED"
	UserStatusReproved = "REPROVED"
)

// User representa um usuário do sistema (mecânico ou orçamentista).
// CPF e Email são únicos entre todos os usuários.
type User struct {
	ID           string
	Name         string
	CPF          string // 11 dígitos, validado por dígito verificador
	Email        string
	PasswordHash string // hash bcrypt, nunca texto plano no domínio após persistir
	Type         string // MECHANIC | BUDGETIST
	Status       string // PENDING | APPROVED | REPROVED
	BirthDate    time.Time
	Assistant    bool
	Observations string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidUserType informa se o tipo pertence ao enum.
func ValidUserType(t string) bool {
	return t == UserTypeMechanic || t == UserTypeBudgetist
}

// ValidUserStatus informa se o status pertence ao enum.
func ValidUserStatus(s string) bool {
	return s == UserStatusPending || s == UserStatusApproved || s == UserStatusReproved
}
