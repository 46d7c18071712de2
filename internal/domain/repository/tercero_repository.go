package repository

import "github.com/tu-usuario/fox-gestion/internal/domain/entity"

// TerceroRepository define el puerto de persistencia para Tercero.
// GetByDNI permite verificar la unicidad del DNI antes de escribir.
type TerceroRepository interface {
	GetAll() ([]entity.Tercero, error)
	GetByID(id string) (*entity.Tercero, error)
	GetByDNI(dni string) (*entity.Tercero, error)
	Create(tercero *entity.Tercero) error
	Update(tercero *entity.Tercero) (bool, error)
	Delete(id string) (bool, error)
}
