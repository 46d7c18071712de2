package usecase

import (
	"github.com/google/uuid"
	"github.com/tu-usuario/fox-gestion/internal/application/dto"
	"github.com/tu-usuario/fox-gestion/internal/application/enrich"
	"github.com/tu-usuario/fox-gestion/internal/domain"
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para el catálogo de productos.
type ProductoUseCase struct {
	repo     repository.ProductoRepository
	enricher *enrich.ProductoEnricher
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, enricher *enrich.ProductoEnricher) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, enricher: enricher}
}

// Create registra un producto. Las referencias a marca/categoría/serie no se
// verifican contra sus colecciones: son blandas, igual que en el resto del
// sistema.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*entity.Producto, error) {
	if in.Codigo == "" {
		return nil, domain.Validationf("el campo 'product_code' es obligatorio")
	}
	if in.Nombre == "" {
		return nil, domain.Validationf("el campo 'name' es obligatorio")
	}
	if len(in.Imagenes) > entity.MaxImagenesProducto {
		return nil, domain.Validationf("máximo %d imágenes por producto", entity.MaxImagenesProducto)
	}
	if in.Stock < 0 {
		return nil, domain.Validationf("el stock no puede ser negativo")
	}
	producto := &entity.Producto{
		ID:              uuid.New().String(),
		Codigo:          in.Codigo,
		Nombre:          in.Nombre,
		MarcaID:         in.MarcaID,
		CategoriaID:     in.CategoriaID,
		SerieID:         in.SerieID,
		Medida:          in.Medida,
		Costo:           in.Costo,
		PrecioMayorista: in.PrecioMayorista,
		PrecioUnitario:  in.PrecioUnitario,
		Stock:           in.Stock,
		Imagenes:        in.Imagenes,
		Aplicaciones:    in.Aplicaciones,
	}
	if producto.Imagenes == nil {
		producto.Imagenes = []string{}
	}
	if producto.Aplicaciones == nil {
		producto.Aplicaciones = []entity.Aplicacion{}
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return producto, nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductoUseCase) GetByID(id string) (*entity.Producto, error) {
	return uc.repo.GetByID(id)
}

// List devuelve el catálogo completo con nombres de referencia resueltos.
func (uc *ProductoUseCase) List() ([]enrich.ProductoEnriquecido, error) {
	productos, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return uc.enricher.EnrichAll(productos), nil
}

// PorSerie filtra el catálogo por serie. Con serieID vacío devuelve todo.
func (uc *ProductoUseCase) PorSerie(serieID string) ([]enrich.ProductoEnriquecido, error) {
	productos, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if serieID == "" {
		return uc.enricher.EnrichAll(productos), nil
	}
	filtrados := make([]entity.Producto, 0)
	for _, p := range productos {
		if p.SerieID == serieID {
			filtrados = append(filtrados, p)
		}
	}
	return uc.enricher.EnrichAll(filtrados), nil
}

// Update aplica una actualización parcial; devuelve (nil, nil) si no existe.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*entity.Producto, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.Codigo != nil {
		if *in.Codigo == "" {
			return nil, domain.Validationf("el campo 'product_code' no puede quedar vacío")
		}
		producto.Codigo = *in.Codigo
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.Validationf("el campo 'name' no puede quedar vacío")
		}
		producto.Nombre = *in.Nombre
	}
	if in.MarcaID != nil {
		producto.MarcaID = *in.MarcaID
	}
	if in.CategoriaID != nil {
		producto.CategoriaID = *in.CategoriaID
	}
	if in.SerieID != nil {
		producto.SerieID = *in.SerieID
	}
	if in.Medida != nil {
		producto.Medida = *in.Medida
	}
	if in.Costo != nil {
		producto.Costo = *in.Costo
	}
	if in.PrecioMayorista != nil {
		producto.PrecioMayorista = *in.PrecioMayorista
	}
	if in.PrecioUnitario != nil {
		producto.PrecioUnitario = *in.PrecioUnitario
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.Validationf("el stock no puede ser negativo")
		}
		producto.Stock = *in.Stock
	}
	if in.Imagenes != nil {
		if len(*in.Imagenes) > entity.MaxImagenesProducto {
			return nil, domain.Validationf("máximo %d imágenes por producto", entity.MaxImagenesProducto)
		}
		producto.Imagenes = *in.Imagenes
	}
	if in.Aplicaciones != nil {
		producto.Aplicaciones = *in.Aplicaciones
	}
	if _, err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return producto, nil
}

// Delete elimina un producto. No bloquea aunque algún juego lo referencie
// (integridad referencial blanda; el enriquecido degrada a la etiqueta fija).
func (uc *ProductoUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}
