package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/fox-gestion/internal/domain/schema"
)

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeMovimiento: los movimientos anteriores al rediseño traían el
// concepto en "concept", la cuenta en "type" y la dirección codificada en el
// signo del monto. El normalizador debe producir el esquema actual sin tocar
// el registro original y sin re-derivar nada en pasadas posteriores.
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeMovimiento_EscenarioHeredado(t *testing.T) {
	legacy := map[string]any{
		"id":      "m1",
		"concept": "sale",
		"amount":  float64(-50),
		"type":    "cash",
	}

	rec := schema.NormalizeMovimiento(legacy)

	assert.Equal(t, "sale", rec["descripcion"], "concept debe renombrarse a descripcion")
	assert.Equal(t, float64(50), rec["amount"], "el monto debe quedar como magnitud sin signo")
	assert.Equal(t, "outflow", rec["tipo_movimiento"], "monto negativo implica egreso")
	assert.Equal(t, "cash", rec["cuenta"], "type 'cash' debe mapear a cuenta 'cash'")
	_, tieneConcept := rec["concept"]
	assert.False(t, tieneConcept, "la clave heredada no debe sobrevivir")
	_, tieneType := rec["type"]
	assert.False(t, tieneType, "la clave heredada no debe sobrevivir")
}

func TestNormalizeMovimiento_CuentaBancariaHeredada(t *testing.T) {
	rec := schema.NormalizeMovimiento(map[string]any{
		"id":      "m2",
		"concept": "depósito",
		"amount":  float64(120.5),
		"type":    "bank_account",
	})

	assert.Equal(t, "bank", rec["cuenta"])
	assert.Equal(t, "inflow", rec["tipo_movimiento"], "monto no negativo implica ingreso")
	assert.Equal(t, float64(120.5), rec["amount"])
}

func TestNormalizeMovimiento_SinTipoDeCuenta(t *testing.T) {
	rec := schema.NormalizeMovimiento(map[string]any{
		"id":     "m3",
		"amount": float64(10),
	})

	assert.Equal(t, "unspecified", rec["cuenta"])
	assert.Equal(t, "", rec["banco"], "banco ausente debe quedar en cadena vacía")
}

func TestNormalizeMovimiento_MontoNoNumerico(t *testing.T) {
	rec := schema.NormalizeMovimiento(map[string]any{
		"id":     "m4",
		"amount": "no-numérico",
	})

	assert.Equal(t, float64(0), rec["amount"], "valor no parseable debe normalizar a 0")
	assert.Equal(t, "inflow", rec["tipo_movimiento"])
}

// La derivación signo->dirección ocurre exactamente una vez: un registro ya
// normalizado (magnitud positiva + tipo explícito) no debe cambiar de
// dirección aunque el normalizador vuelva a procesarlo.
func TestNormalizeMovimiento_Idempotente(t *testing.T) {
	legacy := map[string]any{
		"id":      "m5",
		"concept": "pago proveedor",
		"amount":  float64(-75),
		"type":    "bank_account",
		"banco":   "BCP",
	}

	una := schema.NormalizeMovimiento(legacy)
	dos := schema.NormalizeMovimiento(una)

	require.Equal(t, una, dos, "normalize(normalize(r)) debe ser igual a normalize(r)")
	assert.Equal(t, "outflow", dos["tipo_movimiento"], "la dirección no debe re-derivarse de la magnitud positiva")
}

func TestNormalizeMovimiento_NoMutaElOriginal(t *testing.T) {
	legacy := map[string]any{"id": "m6", "concept": "x", "amount": float64(-1)}

	_ = schema.NormalizeMovimiento(legacy)

	assert.Equal(t, "x", legacy["concept"], "el mapa de entrada debe quedar intacto")
	assert.Equal(t, float64(-1), legacy["amount"])
}
