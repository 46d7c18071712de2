package entity

// ColorPorDefecto color asignado a series/categorías sin color propio.
const ColorPorDefecto = "#7f8c8d"

// Serie agrupa productos por línea (aceites, anillos, sincronizadores...).
// Codigo es único entre series.
type Serie struct {
	ID     string `json:"id"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Color  string `json:"color"`
}

// Categoria clasifica productos.
type Categoria struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Color  string `json:"color"`
}

// Marca de producto.
type Marca struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
