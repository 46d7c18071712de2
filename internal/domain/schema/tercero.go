package schema

import "strings"

// Campos de contacto y envío agregados después del despliegue inicial de
// terceros; los registros viejos no los traen.
var terceroCamposOpcionales = []string{
	"dni",
	"direccion_principal",
	"envio_departamento",
	"envio_agencia",
	"envio_notas",
	"telefono",
	"email",
}

// NormalizeTercero adapta un tercero antiguo al esquema actual: campos
// opcionales ausentes quedan en cadena vacía y todo valor se recorta.
func NormalizeTercero(raw map[string]any) map[string]any {
	rec := clone(raw)

	rec["nombre"] = strings.TrimSpace(asString(rec["nombre"]))
	for _, campo := range terceroCamposOpcionales {
		rec[campo] = strings.TrimSpace(asString(rec[campo]))
	}

	return rec
}
