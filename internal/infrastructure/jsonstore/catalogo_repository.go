package jsonstore

import (
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/domain/repository"
	"github.com/tu-usuario/fox-gestion/internal/domain/schema"
	"github.com/tu-usuario/fox-gestion/pkg/logger"
)

var (
	_ repository.SerieRepository     = (*SerieRepo)(nil)
	_ repository.CategoriaRepository = (*CategoriaRepo)(nil)
	_ repository.MarcaRepository     = (*MarcaRepo)(nil)
)

// SerieRepo implementación de SerieRepository sobre un archivo JSON.
type SerieRepo struct {
	col *Collection[entity.Serie]
}

// NewSerieRepository construye el adaptador respaldado por el archivo en path.
func NewSerieRepository(path string, log *logger.Logger) *SerieRepo {
	return &SerieRepo{col: NewCollection[entity.Serie](path, schema.NormalizeSerie, log)}
}

func (r *SerieRepo) GetAll() ([]entity.Serie, error) {
	return r.col.All()
}

func (r *SerieRepo) GetByID(id string) (*entity.Serie, error) {
	return r.col.Get(id)
}

// GetByCodigo busca por código exacto; (nil, nil) si ninguna serie lo tiene.
func (r *SerieRepo) GetByCodigo(codigo string) (*entity.Serie, error) {
	series, err := r.col.All()
	if err != nil {
		return nil, err
	}
	for i := range series {
		if series[i].Codigo == codigo {
			return &series[i], nil
		}
	}
	return nil, nil
}

func (r *SerieRepo) Create(serie *entity.Serie) error {
	return r.col.Append(*serie)
}

func (r *SerieRepo) Update(serie *entity.Serie) (bool, error) {
	return r.col.Replace(serie.ID, *serie)
}

func (r *SerieRepo) Delete(id string) (bool, error) {
	return r.col.Remove(id)
}

// CategoriaRepo implementación de CategoriaRepository sobre un archivo JSON.
type CategoriaRepo struct {
	col *Collection[entity.Categoria]
}

// NewCategoriaRepository construye el adaptador respaldado por el archivo en path.
func NewCategoriaRepository(path string, log *logger.Logger) *CategoriaRepo {
	return &CategoriaRepo{col: NewCollection[entity.Categoria](path, schema.NormalizeCategoria, log)}
}

func (r *CategoriaRepo) GetAll() ([]entity.Categoria, error) {
	return r.col.All()
}

func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	return r.col.Get(id)
}

func (r *CategoriaRepo) Create(categoria *entity.Categoria) error {
	return r.col.Append(*categoria)
}

func (r *CategoriaRepo) Update(categoria *entity.Categoria) (bool, error) {
	return r.col.Replace(categoria.ID, *categoria)
}

func (r *CategoriaRepo) Delete(id string) (bool, error) {
	return r.col.Remove(id)
}

// MarcaRepo implementación de MarcaRepository sobre un archivo JSON.
type MarcaRepo struct {
	col *Collection[entity.Marca]
}

// NewMarcaRepository construye el adaptador respaldado por el archivo en path.
func NewMarcaRepository(path string, log *logger.Logger) *MarcaRepo {
	return &MarcaRepo{col: NewCollection[entity.Marca](path, schema.NormalizeMarca, log)}
}

func (r *MarcaRepo) GetAll() ([]entity.Marca, error) {
	return r.col.All()
}

func (r *MarcaRepo) GetByID(id string) (*entity.Marca, error) {
	return r.col.Get(id)
}

func (r *MarcaRepo) Create(marca *entity.Marca) error {
	return r.col.Append(*marca)
}

func (r *MarcaRepo) Update(marca *entity.Marca) (bool, error) {
	return r.col.Replace(marca.ID, *marca)
}

func (r *MarcaRepo) Delete(id string) (bool, error) {
	return r.col.Remove(id)
}
