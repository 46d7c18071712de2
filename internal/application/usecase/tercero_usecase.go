package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/tu-usuario/fox-gestion/internal/application/dto"
	"github.com/tu-usuario/fox-gestion/internal/domain"
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/domain/repository"
)

// TerceroUseCase casos de uso para terceros. El DNI es único entre terceros
// cuando no está vacío.
type TerceroUseCase struct {
	repo repository.TerceroRepository
}

// NewTerceroUseCase construye el caso de uso.
func NewTerceroUseCase(repo repository.TerceroRepository) *TerceroUseCase {
	return &TerceroUseCase{repo: repo}
}

// Create registra un tercero.
func (uc *TerceroUseCase) Create(in dto.CreateTerceroRequest) (*entity.Tercero, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.Validationf("el campo 'nombre' es obligatorio para un tercero")
	}
	dni := strings.TrimSpace(in.DNI)
	if dni != "" {
		existente, err := uc.repo.GetByDNI(dni)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicate
		}
	}
	tercero := &entity.Tercero{
		ID:                 uuid.New().String(),
		Nombre:             nombre,
		DNI:                dni,
		DireccionPrincipal: strings.TrimSpace(in.DireccionPrincipal),
		EnvioDepartamento:  strings.TrimSpace(in.EnvioDepartamento),
		EnvioAgencia:       strings.TrimSpace(in.EnvioAgencia),
		EnvioNotas:         strings.TrimSpace(in.EnvioNotas),
		Telefono:           strings.TrimSpace(in.Telefono),
		Email:              strings.TrimSpace(in.Email),
	}
	if err := uc.repo.Create(tercero); err != nil {
		return nil, err
	}
	return tercero, nil
}

// GetByID obtiene un tercero por ID; (nil, nil) si no existe.
func (uc *TerceroUseCase) GetByID(id string) (*entity.Tercero, error) {
	return uc.repo.GetByID(id)
}

// List devuelve todos los terceros.
func (uc *TerceroUseCase) List() ([]entity.Tercero, error) {
	return uc.repo.GetAll()
}

// Update aplica una actualización parcial; devuelve (nil, nil) si no existe.
func (uc *TerceroUseCase) Update(id string, in dto.UpdateTerceroRequest) (*entity.Tercero, error) {
	tercero, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tercero == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, domain.Validationf("el campo 'nombre' no puede quedar vacío al actualizar")
		}
		tercero.Nombre = nombre
	}
	if in.DNI != nil {
		dni := strings.TrimSpace(*in.DNI)
		if dni != "" && dni != tercero.DNI {
			existente, err := uc.repo.GetByDNI(dni)
			if err != nil {
				return nil, err
			}
			if existente != nil && existente.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		tercero.DNI = dni
	}
	if in.DireccionPrincipal != nil {
		tercero.DireccionPrincipal = strings.TrimSpace(*in.DireccionPrincipal)
	}
	if in.EnvioDepartamento != nil {
		tercero.EnvioDepartamento = strings.TrimSpace(*in.EnvioDepartamento)
	}
	if in.EnvioAgencia != nil {
		tercero.EnvioAgencia = strings.TrimSpace(*in.EnvioAgencia)
	}
	if in.EnvioNotas != nil {
		tercero.EnvioNotas = strings.TrimSpace(*in.EnvioNotas)
	}
	if in.Telefono != nil {
		tercero.Telefono = strings.TrimSpace(*in.Telefono)
	}
	if in.Email != nil {
		tercero.Email = strings.TrimSpace(*in.Email)
	}
	if _, err := uc.repo.Update(tercero); err != nil {
		return nil, err
	}
	return tercero, nil
}

// Delete elimina un tercero. No bloquea aunque existan cobros que lo
// referencien (integridad referencial blanda; el enriquecido degrada a la
// etiqueta fija).
func (uc *TerceroUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}
