package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/fox-gestion/internal/application/dto"
	"github.com/tu-usuario/fox-gestion/internal/application/enrich"
	"github.com/tu-usuario/fox-gestion/internal/domain"
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/domain/repository"
)

// CobroUseCase casos de uso para cuentas por cobrar. El paso a pagado es una
// operación dedicada, no una actualización genérica de campos.
type CobroUseCase struct {
	repo     repository.CobroRepository
	enricher *enrich.CobroEnricher
	now      func() time.Time
}

// NewCobroUseCase construye el caso de uso.
func NewCobroUseCase(repo repository.CobroRepository, enricher *enrich.CobroEnricher) *CobroUseCase {
	return &CobroUseCase{repo: repo, enricher: enricher, now: time.Now}
}

// Create registra una cuenta por cobrar en estado pendiente.
func (uc *CobroUseCase) Create(in dto.CreateCobroRequest) (*entity.Cobro, error) {
	if in.Fecha == "" {
		return nil, domain.Validationf("el campo 'fecha' es obligatorio")
	}
	if in.Descripcion == "" {
		return nil, domain.Validationf("el campo 'descripcion' es obligatorio")
	}
	if in.Monto.IsNegative() || in.Monto.IsZero() {
		return nil, domain.Validationf("el monto debe ser mayor que cero")
	}
	cobro := &entity.Cobro{
		ID:          uuid.New().String(),
		Fecha:       in.Fecha,
		TerceroID:   in.TerceroID,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Monto:       in.Monto,
		Estado:      entity.EstadoPendiente,
		FechaPago:   "",
	}
	if err := uc.repo.Create(cobro); err != nil {
		return nil, err
	}
	return cobro, nil
}

// GetByID obtiene un cobro por ID; (nil, nil) si no existe.
func (uc *CobroUseCase) GetByID(id string) (*entity.Cobro, error) {
	return uc.repo.GetByID(id)
}

// List devuelve todos los cobros con el nombre del tercero resuelto.
func (uc *CobroUseCase) List() ([]enrich.CobroEnriquecido, error) {
	cobros, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return uc.enricher.EnrichAll(cobros), nil
}

// Pendientes devuelve los cobros aún no pagados, enriquecidos.
func (uc *CobroUseCase) Pendientes() ([]enrich.CobroEnriquecido, error) {
	cobros, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	pendientes := make([]entity.Cobro, 0, len(cobros))
	for _, c := range cobros {
		if c.Estado == entity.EstadoPendiente {
			pendientes = append(pendientes, c)
		}
	}
	return uc.enricher.EnrichAll(pendientes), nil
}

// Update aplica una actualización parcial; los campos nil se preservan.
// Devuelve (nil, nil) si el id no existe.
func (uc *CobroUseCase) Update(id string, in dto.UpdateCobroRequest) (*entity.Cobro, error) {
	cobro, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cobro == nil {
		return nil, nil
	}
	if in.Fecha != nil {
		if *in.Fecha == "" {
			return nil, domain.Validationf("el campo 'fecha' no puede quedar vacío")
		}
		cobro.Fecha = *in.Fecha
	}
	if in.TerceroID != nil {
		cobro.TerceroID = *in.TerceroID
	}
	if in.Nombre != nil {
		cobro.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		if *in.Descripcion == "" {
			return nil, domain.Validationf("el campo 'descripcion' no puede quedar vacío")
		}
		cobro.Descripcion = *in.Descripcion
	}
	if in.Monto != nil {
		if in.Monto.IsNegative() || in.Monto.IsZero() {
			return nil, domain.Validationf("el monto debe ser mayor que cero")
		}
		cobro.Monto = *in.Monto
	}
	if _, err := uc.repo.Update(cobro); err != nil {
		return nil, err
	}
	return cobro, nil
}

// Delete elimina un cobro. Idempotente: devuelve false si el id no existe.
func (uc *CobroUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

// MarcarPagado pasa un cobro de pendiente a pagado y estampa la fecha de
// pago con la fecha actual. Sobre un cobro ya pagado devuelve ErrYaPagado
// sin mutar nada; no existe el camino inverso.
func (uc *CobroUseCase) MarcarPagado(id string) (*entity.Cobro, error) {
	cobro, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cobro == nil {
		return nil, nil
	}
	if cobro.Estado == entity.EstadoPagado {
		return nil, domain.ErrYaPagado
	}
	cobro.Estado = entity.EstadoPagado
	cobro.FechaPago = uc.now().Format("2006-01-02")
	if _, err := uc.repo.Update(cobro); err != nil {
		return nil, err
	}
	return cobro, nil
}
