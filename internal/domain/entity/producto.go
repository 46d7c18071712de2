package entity

import "github.com/shopspring/decimal"

// MaxImagenesProducto cantidad máxima de slots de imagen por producto.
const MaxImagenesProducto = 5

// Aplicacion describe a qué vehículo aplica un producto o juego.
type Aplicacion struct {
	Vehiculo      string `json:"vehiculo"`
	MarcaVehiculo string `json:"marcaVehiculo"`
	JuegoID       string `json:"juego_id,omitempty"`
}

// Producto representa un producto del catálogo. Las referencias a marca,
// categoría y serie son blandas: pueden apuntar a registros ya eliminados.
// Series conserva el nombre en línea de registros antiguos (pre-referencias).
type Producto struct {
	ID              string          `json:"id"`
	Codigo          string          `json:"product_code"`
	Nombre          string          `json:"name"`
	MarcaID         string          `json:"marca_id"`
	CategoriaID     string          `json:"categoria_id"`
	SerieID         string          `json:"serie_id"`
	Series          string          `json:"series"`
	Medida          string          `json:"measurement"`
	Costo           decimal.Decimal `json:"cost"`
	PrecioMayorista decimal.Decimal `json:"price_wholesale"`
	PrecioUnitario  decimal.Decimal `json:"price_unit"`
	Stock           int             `json:"stock"`
	Imagenes        []string        `json:"image_filenames"`
	Aplicaciones    []Aplicacion    `json:"aplicaciones"`
}
