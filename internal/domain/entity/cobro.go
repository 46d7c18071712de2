package entity

import "github.com/shopspring/decimal"

// Estados de una cuenta por cobrar. La única transición válida es
// pending -> paid; no existe el camino inverso.
const (
	EstadoPendiente = "pending"
	EstadoPagado    = "paid"
)

// Cobro representa una cuenta por cobrar (módulo accounts_receivable).
// Nombre conserva el nombre en línea de registros anteriores al modelo de
// referencias; los registros nuevos usan TerceroID.
type Cobro struct {
	ID          string          `json:"id"`
	Fecha       string          `json:"fecha"` // YYYY-MM-DD
	TerceroID   string          `json:"tercero_id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Estado      string          `json:"estado"`     // pending | paid
	FechaPago   string          `json:"fecha_pago"` // solo al pasar a paid
}
