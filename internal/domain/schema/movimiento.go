package schema

import (
	"math"

	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
)

// NormalizeMovimiento adapta un movimiento antiguo al esquema actual:
//   - "concept" pasa a "descripcion".
//   - el "type" antiguo ("cash" / "bank_account") pasa a "cuenta"; sin tipo
//     queda "unspecified".
//   - el monto con signo se separa en magnitud + "tipo_movimiento": un valor
//     negativo era un egreso. La derivación ocurre una sola vez; si
//     "tipo_movimiento" ya existe, no se recalcula.
func NormalizeMovimiento(raw map[string]any) map[string]any {
	rec := clone(raw)

	rename(rec, "concept", "descripcion")
	defaultString(rec, "fecha", "")
	defaultString(rec, "descripcion", "")

	if _, ok := rec["cuenta"]; !ok {
		switch asString(rec["type"]) {
		case "cash":
			rec["cuenta"] = entity.CuentaEfectivo
		case "bank_account":
			rec["cuenta"] = entity.CuentaBancaria
		default:
			rec["cuenta"] = entity.CuentaSinEspecificar
		}
	}
	delete(rec, "type")

	amount := asNumber(rec["amount"])
	if asString(rec["tipo_movimiento"]) == "" {
		if amount < 0 {
			rec["tipo_movimiento"] = entity.MovimientoEgreso
		} else {
			rec["tipo_movimiento"] = entity.MovimientoIngreso
		}
	}
	rec["amount"] = math.Abs(amount)

	if _, ok := rec["banco"]; !ok {
		rec["banco"] = ""
	}

	return rec
}
