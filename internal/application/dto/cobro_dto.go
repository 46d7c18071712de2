package dto

import "github.com/shopspring/decimal"

// CreateCobroRequest datos para registrar una cuenta por cobrar.
// TerceroID es opcional; Nombre cubre registros sin tercero asociado.
type CreateCobroRequest struct {
	Fecha       string          `json:"fecha"`
	TerceroID   string          `json:"tercero_id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
}

// UpdateCobroRequest actualización parcial: solo los campos no nil cambian.
// El estado no se toca por aquí; el pago tiene su operación dedicada.
type UpdateCobroRequest struct {
	Fecha       *string          `json:"fecha"`
	TerceroID   *string          `json:"tercero_id"`
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Monto       *decimal.Decimal `json:"monto"`
}
