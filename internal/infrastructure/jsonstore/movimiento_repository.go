package jsonstore

import (
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/domain/repository"
	"github.com/tu-usuario/fox-gestion/internal/domain/schema"
	"github.com/tu-usuario/fox-gestion/pkg/logger"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre un archivo JSON.
type MovimientoRepo struct {
	col *Collection[entity.Movimiento]
}

// NewMovimientoRepository construye el adaptador respaldado por el archivo en path.
func NewMovimientoRepository(path string, log *logger.Logger) *MovimientoRepo {
	return &MovimientoRepo{col: NewCollection[entity.Movimiento](path, schema.NormalizeMovimiento, log)}
}

func (r *MovimientoRepo) GetAll() ([]entity.Movimiento, error) {
	return r.col.All()
}

func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	return r.col.Get(id)
}

func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	return r.col.Append(*mov)
}

func (r *MovimientoRepo) Update(mov *entity.Movimiento) (bool, error) {
	return r.col.Replace(mov.ID, *mov)
}

func (r *MovimientoRepo) Delete(id string) (bool, error) {
	return r.col.Remove(id)
}
