package usecase_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/fox-gestion/internal/application/dto"
	"github.com/tu-usuario/fox-gestion/internal/application/enrich"
	"github.com/tu-usuario/fox-gestion/internal/application/usecase"
	"github.com/tu-usuario/fox-gestion/internal/domain"
	"github.com/tu-usuario/fox-gestion/internal/domain/entity"
	"github.com/tu-usuario/fox-gestion/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/fox-gestion/pkg/logger"
)

func nuevoCobroUseCase(t *testing.T) (*usecase.CobroUseCase, *jsonstore.TerceroRepo) {
	t.Helper()
	dir := t.TempDir()
	cobros := jsonstore.NewCobroRepository(filepath.Join(dir, "accounts_receivable.json"), logger.Nop())
	terceros := jsonstore.NewTerceroRepository(filepath.Join(dir, "terceros.json"), logger.Nop())
	enricher := enrich.NewCobroEnricher(enrich.Terceros(terceros))
	return usecase.NewCobroUseCase(cobros, enricher), terceros
}

func decStr(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestCobroCreate_QuedaPendiente(t *testing.T) {
	uc, _ := nuevoCobroUseCase(t)

	creado, err := uc.Create(dto.CreateCobroRequest{
		Fecha:       "2026-01-15",
		Descripcion: "venta de repuestos",
		Monto:       decStr("150.50"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, creado.ID)
	assert.Equal(t, entity.EstadoPendiente, creado.Estado)
	assert.Empty(t, creado.FechaPago)

	leido, err := uc.GetByID(creado.ID)
	require.NoError(t, err)
	require.NotNil(t, leido)
	assert.Equal(t, "venta de repuestos", leido.Descripcion)
	assert.True(t, leido.Monto.Equal(decStr("150.50")), "el monto debe conservar su valor exacto")
}

func TestCobroCreate_Validaciones(t *testing.T) {
	uc, _ := nuevoCobroUseCase(t)

	_, err := uc.Create(dto.CreateCobroRequest{Descripcion: "x", Monto: decStr("1")})
	assert.True(t, domain.IsValidation(err), "fecha vacía debe rechazarse")

	_, err = uc.Create(dto.CreateCobroRequest{Fecha: "2026-01-15", Monto: decStr("1")})
	assert.True(t, domain.IsValidation(err), "descripción vacía debe rechazarse")

	_, err = uc.Create(dto.CreateCobroRequest{Fecha: "2026-01-15", Descripcion: "x", Monto: decimal.Zero})
	assert.True(t, domain.IsValidation(err), "monto cero debe rechazarse")

	_, err = uc.Create(dto.CreateCobroRequest{Fecha: "2026-01-15", Descripcion: "x", Monto: decStr("-5")})
	assert.True(t, domain.IsValidation(err), "monto negativo debe rechazarse")
}

func TestCobroUpdate_Parcial(t *testing.T) {
	uc, _ := nuevoCobroUseCase(t)
	creado, err := uc.Create(dto.CreateCobroRequest{
		Fecha:       "2026-01-15",
		Descripcion: "factura 001",
		Monto:       decStr("100"),
	})
	require.NoError(t, err)

	nuevoMonto := decStr("250")
	actualizado, err := uc.Update(creado.ID, dto.UpdateCobroRequest{Monto: &nuevoMonto})
	require.NoError(t, err)
	require.NotNil(t, actualizado)
	assert.True(t, actualizado.Monto.Equal(nuevoMonto))
	assert.Equal(t, "factura 001", actualizado.Descripcion, "los campos no enviados se preservan")
	assert.Equal(t, "2026-01-15", actualizado.Fecha)
}

func TestCobroUpdate_Inexistente(t *testing.T) {
	uc, _ := nuevoCobroUseCase(t)
	nombre := "nadie"
	actualizado, err := uc.Update("no-existe", dto.UpdateCobroRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Nil(t, actualizado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Marcar pagado
// ──────────────────────────────────────────────────────────────────────────────

func TestCobroMarcarPagado(t *testing.T) {
	uc, _ := nuevoCobroUseCase(t)
	creado, err := uc.Create(dto.CreateCobroRequest{
		Fecha:       "2026-01-15",
		Descripcion: "factura 002",
		Monto:       decStr("80"),
	})
	require.NoError(t, err)

	pagado, err := uc.MarcarPagado(creado.ID)
	require.NoError(t, err)
	require.NotNil(t, pagado)
	assert.Equal(t, entity.EstadoPagado, pagado.Estado)
	_, err = time.Parse("2006-01-02", pagado.FechaPago)
	assert.NoError(t, err, "la fecha de pago debe quedar en formato YYYY-MM-DD")

	// Ya pagado: la operación rechaza sin mutar nada.
	_, err = uc.MarcarPagado(creado.ID)
	assert.ErrorIs(t, err, domain.ErrYaPagado)

	leido, err := uc.GetByID(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPagado, leido.Estado)
	assert.Equal(t, pagado.FechaPago, leido.FechaPago, "el reintento no debe cambiar la fecha de pago")
}

func TestCobroMarcarPagado_Inexistente(t *testing.T) {
	uc, _ := nuevoCobroUseCase(t)
	pagado, err := uc.MarcarPagado("no-existe")
	require.NoError(t, err)
	assert.Nil(t, pagado)
}

func TestCobroPendientes(t *testing.T) {
	uc, terceros := nuevoCobroUseCase(t)
	require.NoError(t, terceros.Create(&entity.Tercero{ID: "t1", Nombre: "Comercial Fox"}))

	c1, err := uc.Create(dto.CreateCobroRequest{
		Fecha: "2026-01-10", TerceroID: "t1", Descripcion: "a", Monto: decStr("10"),
	})
	require.NoError(t, err)
	c2, err := uc.Create(dto.CreateCobroRequest{
		Fecha: "2026-01-11", Descripcion: "b", Monto: decStr("20"),
	})
	require.NoError(t, err)

	_, err = uc.MarcarPagado(c2.ID)
	require.NoError(t, err)

	pendientes, err := uc.Pendientes()
	require.NoError(t, err)
	require.Len(t, pendientes, 1)
	assert.Equal(t, c1.ID, pendientes[0].ID)
	assert.Equal(t, "Comercial Fox", pendientes[0].TerceroNombre)
}

func TestCobroDelete_Idempotente(t *testing.T) {
	uc, _ := nuevoCobroUseCase(t)
	creado, err := uc.Create(dto.CreateCobroRequest{
		Fecha: "2026-01-15", Descripcion: "x", Monto: decStr("1"),
	})
	require.NoError(t, err)

	ok, err := uc.Delete(creado.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Delete(creado.ID)
	require.NoError(t, err)
	assert.False(t, ok, "borrar dos veces no es un error")
}
