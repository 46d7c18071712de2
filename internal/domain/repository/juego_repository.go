package repository

import "github.com/tu-usuario/fox-gestion/internal/domain/entity"

// JuegoRepository define el puerto de persistencia para Juego.
type JuegoRepository interface {
	GetAll() ([]entity.Juego, error)
	GetByID(id string) (*entity.Juego, error)
	Create(juego *entity.Juego) error
	Update(juego *entity.Juego) (bool, error)
	Delete(id string) (bool, error)
}
