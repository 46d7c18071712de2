package jsonstore

import (
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/domain/repository"
	"github.com/tu-usuario/fox-gestion/internal/domain/schema"
	"github.com/tu-usuario/fox-gestion/pkg/logger"
)

var _ repository.TerceroRepository = (*TerceroRepo)(nil)

// TerceroRepo implementación de TerceroRepository sobre un archivo JSON.
type TerceroRepo struct {
	col *Collection[entity.Tercero]
}

// NewTerceroRepository construye el adaptador respaldado por el archivo en path.
func NewTerceroRepository(path string, log *logger.Logger) *TerceroRepo {
	return &TerceroRepo{col: NewCollection[entity.Tercero](path, schema.NormalizeTercero, log)}
}

func (r *TerceroRepo) GetAll() ([]entity.Tercero, error) {
	return r.col.All()
}

func (r *TerceroRepo) GetByID(id string) (*entity.Tercero, error) {
	return r.col.Get(id)
}

// GetByDNI busca por DNI exacto; (nil, nil) si ningún tercero lo tiene.
func (r *TerceroRepo) GetByDNI(dni string) (*entity.Tercero, error) {
	terceros, err := r.col.All()
	if err != nil {
		return nil, err
	}
	for i := range terceros {
		if terceros[i].DNI == dni {
			return &terceros[i], nil
		}
	}
	return nil, nil
}

func (r *TerceroRepo) Create(tercero *entity.Tercero) error {
	return r.col.Append(*tercero)
}

func (r *TerceroRepo) Update(tercero *entity.Tercero) (bool, error) {
	return r.col.Replace(tercero.ID, *tercero)
}

func (r *TerceroRepo) Delete(id string) (bool, error) {
	return r.col.Remove(id)
}
