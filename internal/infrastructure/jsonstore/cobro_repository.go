package jsonstore

import (
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/domain/repository"
	"github.com/tu-usuario/fox-gestion/internal/domain/schema"
	"github.com/tu-usuario/fox-gestion/pkg/logger"
)

var _ repository.CobroRepository = (*CobroRepo)(nil)

// CobroRepo implementación de CobroRepository sobre un archivo JSON.
type CobroRepo struct {
	col *Collection[entity.Cobro]
}

// NewCobroRepository construye el adaptador respaldado por el archivo en path.
func NewCobroRepository(path string, log *logger.Logger) *CobroRepo {
	return &CobroRepo{col: NewCollection[entity.Cobro](path, schema.NormalizeCobro, log)}
}

func (r *CobroRepo) GetAll() ([]entity.Cobro, error) {
	return r.col.All()
}

func (r *CobroRepo) GetByID(id string) (*entity.Cobro, error) {
	return r.col.Get(id)
}

func (r *CobroRepo) Create(cobro *entity.Cobro) error {
	return r.col.Append(*cobro)
}

func (r *CobroRepo) Update(cobro *entity.Cobro) (bool, error) {
	return r.col.Replace(cobro.ID, *cobro)
}

func (r *CobroRepo) Delete(id string) (bool, error) {
	return r.col.Remove(id)
}
