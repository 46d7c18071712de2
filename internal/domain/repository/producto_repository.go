package repository

import "github.com/tu-usuario/fox-gestion/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	GetAll() ([]entity.Producto, error)
	GetByID(id string) (*entity.Producto, error)
	Create(producto *entity.Producto) error
	Update(producto *entity.Producto) (bool, error)
	Delete(id string) (bool, error)
}
