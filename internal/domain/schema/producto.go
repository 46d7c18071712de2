package schema

import "github.com/tu-usuario/fox-gestion/internal/domain/entity"

// NormalizeProducto adapta un producto antiguo al esquema actual. El slot de
// imagen único "image_filename" pasa a la lista "image_filenames" (máximo
// entity.MaxImagenesProducto entradas); el nombre de serie en línea "series"
// se conserva para el fallback de enriquecido. "price_fox" es un campo
// antiguo sin equivalente actual y queda intacto.
func NormalizeProducto(raw map[string]any) map[string]any {
	rec := clone(raw)

	defaultString(rec, "product_code", "")
	defaultString(rec, "name", "")

	if _, ok := rec["image_filenames"]; !ok {
		if fn := asString(rec["image_filename"]); fn != "" {
			rec["image_filenames"] = []any{fn}
		} else {
			rec["image_filenames"] = []any{}
		}
	}
	delete(rec, "image_filename")
	if imgs := asList(rec["image_filenames"]); len(imgs) > entity.MaxImagenesProducto {
		rec["image_filenames"] = imgs[:entity.MaxImagenesProducto]
	}

	rec["cost"] = asNumber(rec["cost"])
	rec["price_wholesale"] = asNumber(rec["price_wholesale"])
	rec["price_unit"] = asNumber(rec["price_unit"])
	rec["stock"] = asInt(rec["stock"])

	rec["aplicaciones"] = normalizeAplicaciones(rec["aplicaciones"])

	return rec
}

func normalizeAplicaciones(v any) []any {
	apps := asList(v)
	out := make([]any, 0, len(apps))
	for _, a := range apps {
		app, ok := a.(map[string]any)
		if !ok {
			continue
		}
		na := clone(app)
		defaultString(na, "vehiculo", "")
		defaultString(na, "marcaVehiculo", "")
		out = append(out, na)
	}
	return out
}
