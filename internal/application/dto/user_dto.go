package dto

import "time"

// RegisterRequest entrada do auto-cadastro (password em texto, vira hash no use case).
// O status do usuário é sempre forçado para PENDING, independentemente do payload.
type RegisterRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	CPF          string `json:"cpf" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Type         string `json:"type" validate:"required,oneof=MECHANIC BUDGETIST"`
	BirthDate    string `json:"birth_date" validate:"required"` // formato 2006-01-02
	Assistant    bool   `json:"assistant"`
	Observations string `json:"observations" validate:"omitempty,max=1000"`
}

// UpdateUserRequest atualização parcial; Status só é aceito aqui (ação de
// aprovação), nunca no cadastro.
type UpdateUserRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Password     *string `json:"password" validate:"omitempty,min=8"`
	Type         *string `json:"type" validate:"omitempty,oneof=MECHANIC BUDGETIST"`
	Status       *string `json:"status" validate:"omitempty,oneof=PENDING APPROVED REPROVED"`
	BirthDate    *string `json:"birth_date"`
	Assistant    *bool   `json:"assistant"`
	Observations *string `json:"observations" validate:"omitempty,max=1000"`
}

// UserResponse saída de um usuário (sem password).
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CPF          string    `json:"cpf"`
	Email        string    `json:"email"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	BirthDate    string    `json:"birth_date"`
	Assistant    bool      `json:"assistant"`
	Observations string    `json:"observations,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de usuários.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest entrada do login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída com token JWT e o perfil autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
