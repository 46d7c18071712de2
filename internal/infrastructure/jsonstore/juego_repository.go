package jsonstore

import (
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/domain/repository"
	"github.com/tu-usuario/fox-gestion/internal/domain/schema"
	"github.com/tu-usuario/fox-gestion/pkg/logger"
)

var _ repository.JuegoRepository = (*JuegoRepo)(nil)

// JuegoRepo implementación de JuegoRepository sobre un archivo JSON.
type JuegoRepo struct {
	col *Collection[entity.Juego]
}

// NewJuegoRepository construye el adaptador respaldado por el archivo en path.
func NewJuegoRepository(path string, log *logger.Logger) *JuegoRepo {
	return &JuegoRepo{col: NewCollection[entity.Juego](path, schema.NormalizeJuego, log)}
}

func (r *JuegoRepo) GetAll() ([]entity.Juego, error) {
	return r.col.All()
}

func (r *JuegoRepo) GetByID(id string) (*entity.Juego, error) {
	return r.col.Get(id)
}

func (r *JuegoRepo) Create(juego *entity.Juego) error {
	return r.col.Append(*juego)
}

func (r *JuegoRepo) Update(juego *entity.Juego) (bool, error) {
	return r.col.Replace(juego.ID, *juego)
}

func (r *JuegoRepo) Delete(id string) (bool, error) {
	return r.col.Remove(id)
}
