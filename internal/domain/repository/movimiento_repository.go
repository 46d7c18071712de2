package repository

import "github.com/tu-usuario/fox-gestion/internal/domain/entity"

// MovimientoRepository define el puerto de persistencia para Movimiento.
type MovimientoRepository interface {
	GetAll() ([]entity.Movimiento, error)
	GetByID(id string) (*entity.Movimiento, error)
	Create(mov *entity.Movimiento) error
	Update(mov *entity.Movimiento) (bool, error)
	Delete(id string) (bool, error)
}
