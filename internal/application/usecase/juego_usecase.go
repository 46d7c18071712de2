package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fox-gestion/internal/application/dto"
	"github.com/tu-usuario/fox-gestion/internal/application/enrich"
	"github.com/tu-usuario/fox-gestion/internal/domain"
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/domain/repository"
)

// JuegoUseCase casos de uso para juegos (kits) de productos.
type JuegoUseCase struct {
	repo      repository.JuegoRepository
	productos repository.ProductoRepository
	enricher  *enrich.JuegoEnricher
}

// NewJuegoUseCase construye el caso de uso.
func NewJuegoUseCase(repo repository.JuegoRepository, productos repository.ProductoRepository, enricher *enrich.JuegoEnricher) *JuegoUseCase {
	return &JuegoUseCase{repo: repo, productos: productos, enricher: enricher}
}

// Create registra un juego.
func (uc *JuegoUseCase) Create(in dto.CreateJuegoRequest) (*entity.Juego, error) {
	if in.Codigo == "" {
		return nil, domain.Validationf("el campo 'codigo' es obligatorio")
	}
	if in.Nombre == "" {
		return nil, domain.Validationf("el campo 'nombre' es obligatorio")
	}
	for _, c := range in.Componentes {
		if c.ProductoID == "" {
			return nil, domain.Validationf("cada componente requiere un producto")
		}
		if c.Cantidad <= 0 {
			return nil, domain.Validationf("la cantidad de cada componente debe ser mayor que cero")
		}
	}
	juego := &entity.Juego{
		ID:           uuid.New().String(),
		Codigo:       in.Codigo,
		Nombre:       in.Nombre,
		Aplicaciones: in.Aplicaciones,
		Componentes:  in.Componentes,
	}
	if juego.Aplicaciones == nil {
		juego.Aplicaciones = []entity.Aplicacion{}
	}
	if juego.Componentes == nil {
		juego.Componentes = []entity.Componente{}
	}
	if err := uc.repo.Create(juego); err != nil {
		return nil, err
	}
	return juego, nil
}

// GetByID obtiene un juego por ID; (nil, nil) si no existe.
func (uc *JuegoUseCase) GetByID(id string) (*entity.Juego, error) {
	return uc.repo.GetByID(id)
}

// List devuelve todos los juegos.
func (uc *JuegoUseCase) List() ([]entity.Juego, error) {
	return uc.repo.GetAll()
}

// Componentes devuelve los componentes de un juego con el nombre de cada
// producto resuelto; (nil, nil) si el juego no existe.
func (uc *JuegoUseCase) Componentes(id string) ([]enrich.ComponenteEnriquecido, error) {
	juego, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if juego == nil {
		return nil, nil
	}
	return uc.enricher.Componentes(*juego), nil
}

// CostoTotal suma costo x cantidad de los componentes del juego. Un
// componente cuyo producto ya no existe aporta cero (referencia blanda);
// (nil, nil) si el juego no existe.
func (uc *JuegoUseCase) CostoTotal(id string) (*decimal.Decimal, error) {
	juego, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if juego == nil {
		return nil, nil
	}
	total := decimal.Zero
	for _, c := range juego.Componentes {
		producto, err := uc.productos.GetByID(c.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			continue
		}
		total = total.Add(producto.Costo.Mul(decimal.NewFromInt(int64(c.Cantidad))))
	}
	return &total, nil
}

// Update aplica una actualización parcial; devuelve (nil, nil) si no existe.
func (uc *JuegoUseCase) Update(id string, in dto.UpdateJuegoRequest) (*entity.Juego, error) {
	juego, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if juego == nil {
		return nil, nil
	}
	if in.Codigo != nil {
		if *in.Codigo == "" {
			return nil, domain.Validationf("el campo 'codigo' no puede quedar vacío")
		}
		juego.Codigo = *in.Codigo
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.Validationf("el campo 'nombre' no puede quedar vacío")
		}
		juego.Nombre = *in.Nombre
	}
	if in.Aplicaciones != nil {
		juego.Aplicaciones = *in.Aplicaciones
	}
	if in.Componentes != nil {
		for _, c := range *in.Componentes {
			if c.ProductoID == "" {
				return nil, domain.Validationf("cada componente requiere un producto")
			}
			if c.Cantidad <= 0 {
				return nil, domain.Validationf("la cantidad de cada componente debe ser mayor que cero")
			}
		}
		juego.Componentes = *in.Componentes
	}
	if _, err := uc.repo.Update(juego); err != nil {
		return nil, err
	}
	return juego, nil
}

// Delete elimina un juego. Idempotente.
func (uc *JuegoUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}
