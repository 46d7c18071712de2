package dto

// CreateSerieRequest datos para registrar una serie. Codigo es obligatorio y
// único. Color vacío toma el color por defecto al leer.
type CreateSerieRequest struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Color  string `json:"color"`
}

// UpdateSerieRequest actualización parcial de una serie.
type UpdateSerieRequest struct {
	Codigo *string `json:"codigo"`
	Nombre *string `json:"nombre"`
	Color  *string `json:"color"`
}

// CreateCategoriaRequest datos para registrar una categoría.
type CreateCategoriaRequest struct {
	Nombre string `json:"nombre"`
	Color  string `json:"color"`
}

// UpdateCategoriaRequest actualización parcial de una categoría.
type UpdateCategoriaRequest struct {
	Nombre *string `json:"nombre"`
	Color  *string `json:"color"`
}

// CreateMarcaRequest datos para registrar una marca.
type CreateMarcaRequest struct {
	Nombre string `json:"nombre"`
}

// UpdateMarcaRequest actualización parcial de una marca.
type UpdateMarcaRequest struct {
	Nombre *string `json:"nombre"`
}
