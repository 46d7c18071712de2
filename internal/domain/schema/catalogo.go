package schema

import "github.com/tu-usuario/fox-gestion/internal/domain/entity"

// NormalizeSerie adapta una serie antigua: color ausente toma el color por
// defecto de la interfaz.
func NormalizeSerie(raw map[string]any) map[string]any {
	rec := clone(raw)
	defaultString(rec, "codigo", "")
	defaultString(rec, "nombre", "")
	defaultString(rec, "color", entity.ColorPorDefecto)
	return rec
}

// NormalizeCategoria adapta una categoría antigua.
func NormalizeCategoria(raw map[string]any) map[string]any {
	rec := clone(raw)
	defaultString(rec, "nombre", "")
	return rec
}

// NormalizeMarca adapta una marca antigua.
func NormalizeMarca(raw map[string]any) map[string]any {
	rec := clone(raw)
	defaultString(rec, "nombre", "")
	return rec
}
