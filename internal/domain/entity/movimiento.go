package entity

import "github.com/shopspring/decimal"

// Dirección de un movimiento. En los archivos antiguos la dirección venía
// codificada en el signo del monto; el normalizador la separa en este enum.
const (
	MovimientoIngreso = "inflow"
	MovimientoEgreso  = "outflow"
)

// Tipo de cuenta de un movimiento.
const (
	CuentaEfectivo       = "cash"
	CuentaBancaria       = "bank"
	CuentaSinEspecificar = "unspecified"
)

// Movimiento representa un movimiento de caja o banco (módulo cash_and_banks).
// Amount es siempre una magnitud >= 0; la dirección va en TipoMovimiento.
// Banco solo aplica (y es obligatorio) cuando Cuenta es bancaria.
type Movimiento struct {
	ID             string          `json:"id"`
	Fecha          string          `json:"fecha"` // YYYY-MM-DD
	Descripcion    string          `json:"descripcion"`
	Amount         decimal.Decimal `json:"amount"`
	TipoMovimiento string          `json:"tipo_movimiento"` // inflow | outflow
	Cuenta         string          `json:"cuenta"`          // cash | bank | unspecified
	Banco          string          `json:"banco"`
}
