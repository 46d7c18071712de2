package usecase

import (
	"github.com/google/uuid"
	"github.com/tu-usuario/fox-gestion/internal/application/dto"
	"github.com/tu-usuario/fox-gestion/internal/domain"
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/domain/repository"
)

// CatalogoUseCase casos de uso para las tablas de configuración del catálogo:
// series, categorías y marcas. El código de serie es único.
type CatalogoUseCase struct {
	series     repository.SerieRepository
	categorias repository.CategoriaRepository
	marcas     repository.MarcaRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(series repository.SerieRepository, categorias repository.CategoriaRepository, marcas repository.MarcaRepository) *CatalogoUseCase {
	return &CatalogoUseCase{series: series, categorias: categorias, marcas: marcas}
}

// CreateSerie registra una serie con código único.
func (uc *CatalogoUseCase) CreateSerie(in dto.CreateSerieRequest) (*entity.Serie, error) {
	if in.Codigo == "" {
		return nil, domain.Validationf("el campo 'codigo' es obligatorio para una serie")
	}
	existente, err := uc.series.GetByCodigo(in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	color := in.Color
	if color == "" {
		color = entity.ColorPorDefecto
	}
	serie := &entity.Serie{
		ID:     uuid.New().String(),
		Codigo: in.Codigo,
		Nombre: in.Nombre,
		Color:  color,
	}
	if err := uc.series.Create(serie); err != nil {
		return nil, err
	}
	return serie, nil
}

// GetSerie obtiene una serie por ID; (nil, nil) si no existe.
func (uc *CatalogoUseCase) GetSerie(id string) (*entity.Serie, error) {
	return uc.series.GetByID(id)
}

// ListSeries devuelve todas las series.
func (uc *CatalogoUseCase) ListSeries() ([]entity.Serie, error) {
	return uc.series.GetAll()
}

// UpdateSerie aplica una actualización parcial; devuelve (nil, nil) si no existe.
func (uc *CatalogoUseCase) UpdateSerie(id string, in dto.UpdateSerieRequest) (*entity.Serie, error) {
	serie, err := uc.series.GetByID(id)
	if err != nil {
		return nil, err
	}
	if serie == nil {
		return nil, nil
	}
	if in.Codigo != nil && *in.Codigo != serie.Codigo {
		if *in.Codigo == "" {
			return nil, domain.Validationf("el campo 'codigo' no puede quedar vacío")
		}
		existente, err := uc.series.GetByCodigo(*in.Codigo)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != id {
			return nil, domain.ErrDuplicate
		}
		serie.Codigo = *in.Codigo
	}
	if in.Nombre != nil {
		serie.Nombre = *in.Nombre
	}
	if in.Color != nil {
		serie.Color = *in.Color
	}
	if _, err := uc.series.Update(serie); err != nil {
		return nil, err
	}
	return serie, nil
}

// DeleteSerie elimina una serie. Los productos que la referencien quedan con
// referencia colgante (integridad blanda).
func (uc *CatalogoUseCase) DeleteSerie(id string) (bool, error) {
	return uc.series.Delete(id)
}

// CreateCategoria registra una categoría.
func (uc *CatalogoUseCase) CreateCategoria(in dto.CreateCategoriaRequest) (*entity.Categoria, error) {
	if in.Nombre == "" {
		return nil, domain.Validationf("el campo 'nombre' es obligatorio para una categoría")
	}
	categoria := &entity.Categoria{
		ID:     uuid.New().String(),
		Nombre: in.Nombre,
		Color:  in.Color,
	}
	if err := uc.categorias.Create(categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

// GetCategoria obtiene una categoría por ID; (nil, nil) si no existe.
func (uc *CatalogoUseCase) GetCategoria(id string) (*entity.Categoria, error) {
	return uc.categorias.GetByID(id)
}

// ListCategorias devuelve todas las categorías.
func (uc *CatalogoUseCase) ListCategorias() ([]entity.Categoria, error) {
	return uc.categorias.GetAll()
}

// UpdateCategoria aplica una actualización parcial; devuelve (nil, nil) si no existe.
func (uc *CatalogoUseCase) UpdateCategoria(id string, in dto.UpdateCategoriaRequest) (*entity.Categoria, error) {
	categoria, err := uc.categorias.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.Validationf("el campo 'nombre' no puede quedar vacío")
		}
		categoria.Nombre = *in.Nombre
	}
	if in.Color != nil {
		categoria.Color = *in.Color
	}
	if _, err := uc.categorias.Update(categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

// DeleteCategoria elimina una categoría. Idempotente.
func (uc *CatalogoUseCase) DeleteCategoria(id string) (bool, error) {
	return uc.categorias.Delete(id)
}

// CreateMarca registra una marca.
func (uc *CatalogoUseCase) CreateMarca(in dto.CreateMarcaRequest) (*entity.Marca, error) {
	if in.Nombre == "" {
		return nil, domain.Validationf("el campo 'nombre' es obligatorio para una marca")
	}
	marca := &entity.Marca{
		ID:     uuid.New().String(),
		Nombre: in.Nombre,
	}
	if err := uc.marcas.Create(marca); err != nil {
		return nil, err
	}
	return marca, nil
}

// GetMarca obtiene una marca por ID; (nil, nil) si no existe.
func (uc *CatalogoUseCase) GetMarca(id string) (*entity.Marca, error) {
	return uc.marcas.GetByID(id)
}

// ListMarcas devuelve todas las marcas.
func (uc *CatalogoUseCase) ListMarcas() ([]entity.Marca, error) {
	return uc.marcas.GetAll()
}

// UpdateMarca aplica una actualización parcial; devuelve (nil, nil) si no existe.
func (uc *CatalogoUseCase) UpdateMarca(id string, in dto.UpdateMarcaRequest) (*entity.Marca, error) {
	marca, err := uc.marcas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if marca == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.Validationf("el campo 'nombre' no puede quedar vacío")
		}
		marca.Nombre = *in.Nombre
	}
	if _, err := uc.marcas.Update(marca); err != nil {
		return nil, err
	}
	return marca, nil
}

// DeleteMarca elimina una marca. Idempotente.
func (uc *CatalogoUseCase) DeleteMarca(id string) (bool, error) {
	return uc.marcas.Delete(id)
}
