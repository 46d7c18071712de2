package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
)

// CreateProductoRequest datos para registrar un producto. Imagenes recibe
// nombres de archivo ya almacenados (la mecánica de subida es externa).
type CreateProductoRequest struct {
	Codigo          string              `json:"product_code"`
	Nombre          string              `json:"name"`
	MarcaID         string              `json:"marca_id"`
	CategoriaID     string              `json:"categoria_id"`
	SerieID         string              `json:"serie_id"`
	Medida          string              `json:"measurement"`
	Costo           decimal.Decimal     `json:"cost"`
	PrecioMayorista decimal.Decimal     `json:"price_wholesale"`
	PrecioUnitario  decimal.Decimal     `json:"price_unit"`
	Stock           int                 `json:"stock"`
	Imagenes        []string            `json:"image_filenames"`
	Aplicaciones    []entity.Aplicacion `json:"aplicaciones"`
}

// UpdateProductoRequest actualización parcial: solo los campos no nil cambian.
type UpdateProductoRequest struct {
	Codigo          *string              `json:"product_code"`
	Nombre          *string              `json:"name"`
	MarcaID         *string              `json:"marca_id"`
	CategoriaID     *string              `json:"categoria_id"`
	SerieID         *string              `json:"serie_id"`
	Medida          *string              `json:"measurement"`
	Costo           *decimal.Decimal     `json:"cost"`
	PrecioMayorista *decimal.Decimal     `json:"price_wholesale"`
	PrecioUnitario  *decimal.Decimal     `json:"price_unit"`
	Stock           *int                 `json:"stock"`
	Imagenes        *[]string            `json:"image_filenames"`
	Aplicaciones    *[]entity.Aplicacion `json:"aplicaciones"`
}
