package dto

import "time"

// AddressRequest endereço aninhado da base.
type AddressRequest struct {
	Street       string `json:"street" validate:"required"`
	Number       string `json:"number" validate:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required,len=2"`
	ZipCode      string `json:"zip_code" validate:"required"`
}

// CreateBaseRequest entrada para criar uma base com endereço aninhado.
type CreateBaseRequest struct {
	Name    string         `json:"name" validate:"required,min=1,max=200"`
	Phone   string         `json:"phone"`
	Address AddressRequest `json:"address" validate:"required"`
}

// UpdateBaseRequest atualização parcial da base.
type UpdateBaseRequest struct {
	Name    *string         `json:"name" validate:"omitempty,min=1,max=200"`
	Phone   *string         `json:"phone"`
	Address *AddressRequest `json:"address"`
}

// AddressResponse endereço na saída.
type AddressResponse struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// BaseResponse saída de uma base.
type BaseResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	Address   AddressResponse `json:"address"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BaseListResponse lista paginada de bases.
type BaseListResponse struct {
	Items []BaseResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
