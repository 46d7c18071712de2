package entity

// Componente es una línea de un juego: producto referenciado y cantidad.
type Componente struct {
	ProductoID string `json:"productoId"`
	Cantidad   int    `json:"cantidad"`
}

// Juego representa un juego (kit) de productos vendido como conjunto.
type Juego struct {
	ID           string       `json:"id"`
	Codigo       string       `json:"codigo"`
	Nombre       string       `json:"nombre"`
	Aplicaciones []Aplicacion `json:"aplicaciones"`
	Componentes  []Componente `json:"componentes"`
}
