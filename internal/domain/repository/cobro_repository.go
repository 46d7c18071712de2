package repository

import "github.com/tu-usuario/fox-gestion/internal/domain/entity"

// CobroRepository define el puerto de persistencia para Cobro (DIP).
// GetByID devuelve (nil, nil) cuando no existe; Delete es idempotente y
// reporta si hubo eliminación.
type CobroRepository interface {
	GetAll() ([]entity.Cobro, error)
	GetByID(id string) (*entity.Cobro, error)
	Create(cobro *entity.Cobro) error
	Update(cobro *entity.Cobro) (bool, error)
	Delete(id string) (bool, error)
}
