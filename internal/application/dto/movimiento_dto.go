package dto

import "github.com/shopspring/decimal"

// CreateMovimientoRequest datos para registrar un movimiento de caja/banco.
// Amount es una magnitud (>= 0); la dirección va en TipoMovimiento.
type CreateMovimientoRequest struct {
	Fecha          string          `json:"fecha"`
	Descripcion    string          `json:"descripcion"`
	Amount         decimal.Decimal `json:"amount"`
	TipoMovimiento string          `json:"tipo_movimiento"`
	Cuenta         string          `json:"cuenta"`
	Banco          string          `json:"banco"`
}

// UpdateMovimientoRequest actualización parcial: solo los campos no nil cambian.
type UpdateMovimientoRequest struct {
	Fecha          *string          `json:"fecha"`
	Descripcion    *string          `json:"descripcion"`
	Amount         *decimal.Decimal `json:"amount"`
	TipoMovimiento *string          `json:"tipo_movimiento"`
	Cuenta         *string          `json:"cuenta"`
	Banco          *string          `json:"banco"`
}

// TotalesMovimientos saldos netos (ingresos menos egresos) por tipo de cuenta.
type TotalesMovimientos struct {
	TotalEfectivo decimal.Decimal `json:"total_efectivo"`
	TotalBanco    decimal.Decimal `json:"total_banco"`
	TotalGeneral  decimal.Decimal `json:"total_general"`
}
