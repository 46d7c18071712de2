package schema

// NormalizeJuego adapta un juego antiguo al esquema actual: listas ausentes
// quedan vacías y las cantidades de componentes se coercionan a entero.
func NormalizeJuego(raw map[string]any) map[string]any {
	rec := clone(raw)

	defaultString(rec, "codigo", "")
	defaultString(rec, "nombre", "")
	rec["aplicaciones"] = normalizeAplicaciones(rec["aplicaciones"])

	comps := asList(rec["componentes"])
	out := make([]any, 0, len(comps))
	for _, c := range comps {
		comp, ok := c.(map[string]any)
		if !ok {
			continue
		}
		nc := clone(comp)
		defaultString(nc, "productoId", "")
		nc["cantidad"] = asInt(nc["cantidad"])
		out = append(out, nc)
	}
	rec["componentes"] = out

	return rec
}
