package schema

import "github.com/tu-usuario/fox-gestion/internal/domain/entity"

// NormalizeCobro adapta una cuenta por cobrar antigua al esquema actual.
// Los registros previos al despliegue del estado de pago no traen estado ni
// fecha_pago; los previos al modelo de referencias traen el nombre del
// tercero en línea (se conserva en "nombre" para el fallback de enriquecido).
func NormalizeCobro(raw map[string]any) map[string]any {
	rec := clone(raw)

	rename(rec, "date", "fecha")
	rename(rec, "name", "nombre")
	rename(rec, "concept", "descripcion")
	rename(rec, "amount", "monto")

	rec["monto"] = asNumber(rec["monto"])
	defaultString(rec, "fecha", "")
	defaultString(rec, "descripcion", "")
	defaultString(rec, "estado", entity.EstadoPendiente)
	if _, ok := rec["fecha_pago"]; !ok {
		rec["fecha_pago"] = ""
	}

	return rec
}
