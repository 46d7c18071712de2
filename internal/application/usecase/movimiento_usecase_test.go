package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/fox-gestion/internal/application/dto"
	"github.com/tu-usuario/fox-gestion/internal/application/usecase"
	"github.com/tu-usuario/fox-gestion/internal/domain"
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/fox-gestion/pkg/logger"
)

func nuevoMovimientoUseCase(t *testing.T) (*usecase.MovimientoUseCase, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cash_and_banks.json")
	repo := jsonstore.NewMovimientoRepository(path, logger.Nop())
	return usecase.NewMovimientoUseCase(repo), path
}

func TestMovimientoCreate(t *testing.T) {
	uc, _ := nuevoMovimientoUseCase(t)

	creado, err := uc.Create(dto.CreateMovimientoRequest{
		Fecha:          "2026-02-01",
		Descripcion:    "venta mostrador",
		Amount:         decStr("120"),
		TipoMovimiento: entity.MovimientoIngreso,
		Cuenta:         entity.CuentaEfectivo,
	})
	require.NoError(t, err)
	require.NotEmpty(t, creado.ID)
	assert.Equal(t, entity.CuentaEfectivo, creado.Cuenta)
	assert.Empty(t, creado.Banco)
}

func TestMovimientoCreate_CuentaPorDefecto(t *testing.T) {
	uc, _ := nuevoMovimientoUseCase(t)

	creado, err := uc.Create(dto.CreateMovimientoRequest{
		Fecha:          "2026-02-01",
		Descripcion:    "ajuste",
		Amount:         decStr("5"),
		TipoMovimiento: entity.MovimientoEgreso,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CuentaSinEspecificar, creado.Cuenta)
}

func TestMovimientoCreate_ReglaDeBanco(t *testing.T) {
	uc, _ := nuevoMovimientoUseCase(t)

	// Cuenta bancaria sin banco: rechazado.
	_, err := uc.Create(dto.CreateMovimientoRequest{
		Fecha:          "2026-02-01",
		Descripcion:    "transferencia",
		Amount:         decStr("300"),
		TipoMovimiento: entity.MovimientoIngreso,
		Cuenta:         entity.CuentaBancaria,
	})
	assert.True(t, domain.IsValidation(err))

	// Banco sobre cuenta no bancaria: se descarta en silencio.
	creado, err := uc.Create(dto.CreateMovimientoRequest{
		Fecha:          "2026-02-01",
		Descripcion:    "venta",
		Amount:         decStr("50"),
		TipoMovimiento: entity.MovimientoIngreso,
		Cuenta:         entity.CuentaEfectivo,
		Banco:          "BCP",
	})
	require.NoError(t, err)
	assert.Empty(t, creado.Banco)
}

func TestMovimientoCreate_Validaciones(t *testing.T) {
	uc, _ := nuevoMovimientoUseCase(t)

	_, err := uc.Create(dto.CreateMovimientoRequest{
		Fecha:          "2026-02-01",
		Descripcion:    "x",
		Amount:         decStr("-10"),
		TipoMovimiento: entity.MovimientoEgreso,
	})
	assert.True(t, domain.IsValidation(err), "la magnitud negativa debe rechazarse")

	_, err = uc.Create(dto.CreateMovimientoRequest{
		Fecha:          "2026-02-01",
		Descripcion:    "x",
		Amount:         decStr("10"),
		TipoMovimiento: "transfer",
	})
	assert.True(t, domain.IsValidation(err), "tipo de movimiento desconocido debe rechazarse")
}

func TestMovimientoUpdate_ReglaDeBancoTrasMezcla(t *testing.T) {
	uc, _ := nuevoMovimientoUseCase(t)
	creado, err := uc.Create(dto.CreateMovimientoRequest{
		Fecha:          "2026-02-01",
		Descripcion:    "depósito",
		Amount:         decStr("200"),
		TipoMovimiento: entity.MovimientoIngreso,
		Cuenta:         entity.CuentaBancaria,
		Banco:          "Interbank",
	})
	require.NoError(t, err)

	// Pasar a efectivo limpia el banco aunque no se envíe.
	efectivo := entity.CuentaEfectivo
	actualizado, err := uc.Update(creado.ID, dto.UpdateMovimientoRequest{Cuenta: &efectivo})
	require.NoError(t, err)
	require.NotNil(t, actualizado)
	assert.Empty(t, actualizado.Banco)

	// Volver a bancaria sin banco es inválido: el banco anterior ya se perdió.
	bancaria := entity.CuentaBancaria
	_, err = uc.Update(creado.ID, dto.UpdateMovimientoRequest{Cuenta: &bancaria})
	assert.True(t, domain.IsValidation(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimientoTotales(t *testing.T) {
	uc, _ := nuevoMovimientoUseCase(t)

	alta := func(fecha, tipo, cuenta, banco, monto string) {
		t.Helper()
		_, err := uc.Create(dto.CreateMovimientoRequest{
			Fecha:          fecha,
			Descripcion:    "mov",
			Amount:         decStr(monto),
			TipoMovimiento: tipo,
			Cuenta:         cuenta,
			Banco:          banco,
		})
		require.NoError(t, err)
	}

	alta("2026-02-01", entity.MovimientoIngreso, entity.CuentaEfectivo, "", "100")
	alta("2026-02-01", entity.MovimientoEgreso, entity.CuentaEfectivo, "", "30")
	alta("2026-02-01", entity.MovimientoIngreso, entity.CuentaBancaria, "BCP", "500")
	alta("2026-02-02", entity.MovimientoEgreso, entity.CuentaSinEspecificar, "", "20")

	totales, err := uc.Totales()
	require.NoError(t, err)
	assert.True(t, totales.TotalEfectivo.Equal(decStr("70")), "efectivo: 100 - 30")
	assert.True(t, totales.TotalBanco.Equal(decStr("500")))
	assert.True(t, totales.TotalGeneral.Equal(decStr("550")), "general: 100 - 30 + 500 - 20")

	dia, err := uc.TotalesDelDia("2026-02-02")
	require.NoError(t, err)
	assert.True(t, dia.TotalEfectivo.IsZero())
	assert.True(t, dia.TotalGeneral.Equal(decStr("-20")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura de archivos con forma antigua
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimientoList_ArchivoHeredado(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cash_and_banks.json")
	seed := `[{"id": "m1", "fecha": "2026-02-01", "concept": "sale", "amount": -50, "type": "cash"}]`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	uc := usecase.NewMovimientoUseCase(jsonstore.NewMovimientoRepository(path, logger.Nop()))

	movs, err := uc.List()
	require.NoError(t, err)
	require.Len(t, movs, 1)
	m := movs[0]
	assert.Equal(t, "sale", m.Descripcion)
	assert.True(t, m.Amount.Equal(decStr("50")), "el monto queda como magnitud")
	assert.Equal(t, entity.MovimientoEgreso, m.TipoMovimiento, "el signo negativo define la dirección")
	assert.Equal(t, entity.CuentaEfectivo, m.Cuenta)

	totales, err := uc.Totales()
	require.NoError(t, err)
	assert.True(t, totales.TotalEfectivo.Equal(decStr("-50")), "el egreso heredado resta del efectivo")
}
