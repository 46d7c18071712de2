package jsonstore

import (
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/domain/repository"
	"github.com/tu-usuario/fox-gestion/internal/domain/schema"
	"github.com/tu-usuario/fox-gestion/pkg/logger"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre un archivo JSON.
type ProductoRepo struct {
	col *Collection[entity.Producto]
}

// NewProductoRepository construye el adaptador respaldado por el archivo en path.
func NewProductoRepository(path string, log *logger.Logger) *ProductoRepo {
	return &ProductoRepo{col: NewCollection[entity.Producto](path, schema.NormalizeProducto, log)}
}

func (r *ProductoRepo) GetAll() ([]entity.Producto, error) {
	return r.col.All()
}

func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.col.Get(id)
}

func (r *ProductoRepo) Create(producto *entity.Producto) error {
	return r.col.Append(*producto)
}

func (r *ProductoRepo) Update(producto *entity.Producto) (bool, error) {
	return r.col.Replace(producto.ID, *producto)
}

func (r *ProductoRepo) Delete(id string) (bool, error) {
	return r.col.Remove(id)
}
