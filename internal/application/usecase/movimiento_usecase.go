package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fox-gestion/internal/application/dto"
	"github.com/tu-usuario/fox-gestion/internal/domain"
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/domain/repository"
)

// MovimientoUseCase casos de uso para movimientos de caja y banco.
type MovimientoUseCase struct {
	repo repository.MovimientoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(repo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{repo: repo}
}

// Create registra un movimiento. El banco es obligatorio solo cuando la
// cuenta es bancaria; para las demás cuentas se descarta.
func (uc *MovimientoUseCase) Create(in dto.CreateMovimientoRequest) (*entity.Movimiento, error) {
	if in.Fecha == "" {
		return nil, domain.Validationf("el campo 'fecha' es obligatorio")
	}
	if in.Descripcion == "" {
		return nil, domain.Validationf("el campo 'descripcion' es obligatorio")
	}
	if in.Amount.IsNegative() {
		return nil, domain.Validationf("el monto debe ser una magnitud sin signo (>= 0)")
	}
	if in.TipoMovimiento != entity.MovimientoIngreso && in.TipoMovimiento != entity.MovimientoEgreso {
		return nil, domain.Validationf("tipo de movimiento inválido: %q", in.TipoMovimiento)
	}
	cuenta := in.Cuenta
	if cuenta == "" {
		cuenta = entity.CuentaSinEspecificar
	}
	if cuenta != entity.CuentaEfectivo && cuenta != entity.CuentaBancaria && cuenta != entity.CuentaSinEspecificar {
		return nil, domain.Validationf("tipo de cuenta inválido: %q", cuenta)
	}
	banco := in.Banco
	if cuenta == entity.CuentaBancaria {
		if banco == "" {
			return nil, domain.Validationf("el campo 'banco' es obligatorio para cuentas bancarias")
		}
	} else {
		banco = ""
	}
	mov := &entity.Movimiento{
		ID:             uuid.New().String(),
		Fecha:          in.Fecha,
		Descripcion:    in.Descripcion,
		Amount:         in.Amount,
		TipoMovimiento: in.TipoMovimiento,
		Cuenta:         cuenta,
		Banco:          banco,
	}
	if err := uc.repo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// GetByID obtiene un movimiento por ID; (nil, nil) si no existe.
func (uc *MovimientoUseCase) GetByID(id string) (*entity.Movimiento, error) {
	return uc.repo.GetByID(id)
}

// List devuelve todos los movimientos en orden de inserción.
func (uc *MovimientoUseCase) List() ([]entity.Movimiento, error) {
	return uc.repo.GetAll()
}

// PorFecha devuelve los movimientos de una fecha (YYYY-MM-DD).
func (uc *MovimientoUseCase) PorFecha(fecha string) ([]entity.Movimiento, error) {
	movs, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Movimiento, 0)
	for _, m := range movs {
		if m.Fecha == fecha {
			out = append(out, m)
		}
	}
	return out, nil
}

// Update aplica una actualización parcial; devuelve (nil, nil) si no existe.
func (uc *MovimientoUseCase) Update(id string, in dto.UpdateMovimientoRequest) (*entity.Movimiento, error) {
	mov, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, nil
	}
	if in.Fecha != nil {
		if *in.Fecha == "" {
			return nil, domain.Validationf("el campo 'fecha' no puede quedar vacío")
		}
		mov.Fecha = *in.Fecha
	}
	if in.Descripcion != nil {
		if *in.Descripcion == "" {
			return nil, domain.Validationf("el campo 'descripcion' no puede quedar vacío")
		}
		mov.Descripcion = *in.Descripcion
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.Validationf("el monto debe ser una magnitud sin signo (>= 0)")
		}
		mov.Amount = *in.Amount
	}
	if in.TipoMovimiento != nil {
		if *in.TipoMovimiento != entity.MovimientoIngreso && *in.TipoMovimiento != entity.MovimientoEgreso {
			return nil, domain.Validationf("tipo de movimiento inválido: %q", *in.TipoMovimiento)
		}
		mov.TipoMovimiento = *in.TipoMovimiento
	}
	if in.Cuenta != nil {
		cuenta := *in.Cuenta
		if cuenta != entity.CuentaEfectivo && cuenta != entity.CuentaBancaria && cuenta != entity.CuentaSinEspecificar {
			return nil, domain.Validationf("tipo de cuenta inválido: %q", cuenta)
		}
		mov.Cuenta = cuenta
	}
	if in.Banco != nil {
		mov.Banco = *in.Banco
	}
	if mov.Cuenta == entity.CuentaBancaria && mov.Banco == "" {
		return nil, domain.Validationf("el campo 'banco' es obligatorio para cuentas bancarias")
	}
	if mov.Cuenta != entity.CuentaBancaria {
		mov.Banco = ""
	}
	if _, err := uc.repo.Update(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// Delete elimina un movimiento. Idempotente.
func (uc *MovimientoUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

// Totales calcula los saldos netos acumulados por tipo de cuenta. Los
// ingresos suman y los egresos restan; los movimientos sin cuenta solo
// afectan el total general.
func (uc *MovimientoUseCase) Totales() (*dto.TotalesMovimientos, error) {
	movs, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return sumarTotales(movs), nil
}

// TotalesDelDia calcula los saldos netos de una fecha (YYYY-MM-DD).
func (uc *MovimientoUseCase) TotalesDelDia(fecha string) (*dto.TotalesMovimientos, error) {
	movs, err := uc.PorFecha(fecha)
	if err != nil {
		return nil, err
	}
	return sumarTotales(movs), nil
}

func sumarTotales(movs []entity.Movimiento) *dto.TotalesMovimientos {
	t := &dto.TotalesMovimientos{
		TotalEfectivo: decimal.Zero,
		TotalBanco:    decimal.Zero,
		TotalGeneral:  decimal.Zero,
	}
	for _, m := range movs {
		signed := m.Amount
		if m.TipoMovimiento == entity.MovimientoEgreso {
			signed = signed.Neg()
		}
		switch m.Cuenta {
		case entity.CuentaEfectivo:
			t.TotalEfectivo = t.TotalEfectivo.Add(signed)
		case entity.CuentaBancaria:
			t.TotalBanco = t.TotalBanco.Add(signed)
		}
		t.TotalGeneral = t.TotalGeneral.Add(signed)
	}
	return t
}
