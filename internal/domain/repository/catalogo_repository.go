package repository

import "github.com/tu-usuario/fox-gestion/internal/domain/entity"

// SerieRepository define el puerto de persistencia para Serie.
// GetByCodigo permite verificar la unicidad del código antes de escribir.
type SerieRepository interface {
	GetAll() ([]entity.Serie, error)
	GetByID(id string) (*entity.Serie, error)
	GetByCodigo(codigo string) (*entity.Serie, error)
	Create(serie *entity.Serie) error
	Update(serie *entity.Serie) (bool, error)
	Delete(id string) (bool, error)
}

// CategoriaRepository define el puerto de persistencia para Categoria.
type CategoriaRepository interface {
	GetAll() ([]entity.Categoria, error)
	GetByID(id string) (*entity.Categoria, error)
	Create(categoria *entity.Categoria) error
	Update(categoria *entity.Categoria) (bool, error)
	Delete(id string) (bool, error)
}

// MarcaRepository define el puerto de persistencia para Marca.
type MarcaRepository interface {
	GetAll() ([]entity.Marca, error)
	GetByID(id string) (*entity.Marca, error)
	Create(marca *entity.Marca) error
	Update(marca *entity.Marca) (bool, error)
	Delete(id string) (bool, error)
}
