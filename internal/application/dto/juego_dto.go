package dto

import "github.com/tu-usuario/fox-gestion/internal/domain/entity"

// CreateJuegoRequest datos para registrar un juego (kit) de productos.
type CreateJuegoRequest struct {
	Codigo       string              `json:"codigo"`
	Nombre       string              `json:"nombre"`
	Aplicaciones []entity.Aplicacion `json:"aplicaciones"`
	Componentes  []entity.Componente `json:"componentes"`
}

// UpdateJuegoRequest actualización parcial: solo los campos no nil cambian.
type UpdateJuegoRequest struct {
	Codigo       *string              `json:"codigo"`
	Nombre       *string              `json:"nombre"`
	Aplicaciones *[]entity.Aplicacion `json:"aplicaciones"`
	Componentes  *[]entity.Componente `json:"componentes"`
}
