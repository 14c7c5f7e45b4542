package repository

import "github.com/lucasmgo/frota-gr-api/internal/domain/entity"

// BaseRepository define a porta de persistência para Base.
type BaseRepository interface {
	Create(base *entity.Base) error
	GetByID(id string) (*entity.Base, error)
	GetByName(name string) (*entity.Base, error)
	Update(base *entity.Base) error
	List(limit, offset int) ([]*entity.Base, error)
	Delete(id string) error
}
