// Package schema reconcilia registros persistidos con forma antigua contra el
// esquema actual de cada colección. Los normalizadores se aplican en cada
// lectura y son idempotentes: el archivo en disco puede conservar la forma
// antigua hasta que una escritura explícita lo actualice.
package schema

import (
	"math"
	"strconv"
	"strings"
)

// Normalizer transforma un registro crudo al esquema actual de su colección.
// Nunca muta el mapa recibido.
type Normalizer func(raw map[string]any) map[string]any

func clone(raw map[string]any) map[string]any {
	rec := make(map[string]any, len(raw))
	for k, v := range raw {
		rec[k] = v
	}
	return rec
}

// rename mueve el valor de una clave antigua a la actual, solo cuando la
// antigua está presente y la actual no.
func rename(rec map[string]any, legacy, current string) {
	if _, ok := rec[current]; ok {
		return
	}
	if v, ok := rec[legacy]; ok {
		rec[current] = v
		delete(rec, legacy)
	}
}

// defaultString fija def cuando la clave falta, es nil o no es una cadena
// no vacía.
func defaultString(rec map[string]any, key, def string) {
	if asString(rec[key]) == "" {
		rec[key] = def
	}
}

// asNumber coerciona defensivamente a número: lo que no parsea vale 0.
func asNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt(v any) int {
	return int(math.Trunc(asNumber(v)))
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asList devuelve el valor como lista, o una lista vacía.
func asList(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return []any{}
}
