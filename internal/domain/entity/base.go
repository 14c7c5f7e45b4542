package entity

import "time"

// Address endereço de uma base operacional.
type Address struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string // UF, 2 letras
	ZipCode      string
}

// Base representa uma base operacional (pátio/filial) onde as guias são abertas.
// O nome é único; a base não pode ser removida enquanto houver guias vinculadas.
type Base struct {
	ID        string
	Name      string
	Phone     string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}
