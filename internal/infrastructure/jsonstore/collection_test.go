package jsonstore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/fox-gestion/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/fox-gestion/pkg/logger"
)

type nota struct {
	ID    string `json:"id"`
	Texto string `json:"texto"`
}

func identidad(raw map[string]any) map[string]any { return raw }

func colDeNotas(t *testing.T) (*jsonstore.Collection[nota], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notas.json")
	return jsonstore.NewCollection[nota](path, identidad, logger.Nop()), path
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de recuperación: ausente, vacío o corrupto -> colección vacía y
// archivo reiniciado, nunca un error hacia el llamador.
// ──────────────────────────────────────────────────────────────────────────────

func TestCollection_ArchivoAusente(t *testing.T) {
	col, path := colDeNotas(t)

	notas, err := col.All()
	require.NoError(t, err)
	assert.Empty(t, notas)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(content), "el archivo debe quedar inicializado en lista vacía")
}

func TestCollection_ArchivoCorrupto(t *testing.T) {
	col, path := colDeNotas(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{esto no es un arreglo"), 0o644))

	notas, err := col.All()
	require.NoError(t, err, "la corrupción no debe llegar al llamador")
	assert.Empty(t, notas)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(content))
}

func TestCollection_ObjetoEnLugarDeArreglo(t *testing.T) {
	col, path := colDeNotas(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"x"}`), 0o644))

	notas, err := col.All()
	require.NoError(t, err)
	assert.Empty(t, notas)
}

func TestCollection_AppendYGet(t *testing.T) {
	col, _ := colDeNotas(t)

	require.NoError(t, col.Append(nota{ID: "n1", Texto: "hola"}))
	require.NoError(t, col.Append(nota{ID: "n2", Texto: "mundo"}))

	todas, err := col.All()
	require.NoError(t, err)
	require.Len(t, todas, 2)
	assert.Equal(t, "n1", todas[0].ID, "el orden de inserción se preserva")

	n, err := col.Get("n2")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "mundo", n.Texto)
}

func TestCollection_GetInexistente(t *testing.T) {
	col, _ := colDeNotas(t)
	require.NoError(t, col.Append(nota{ID: "n1"}))

	n, err := col.Get("no-existe")
	require.NoError(t, err, "no encontrado no es un error")
	assert.Nil(t, n)
}

func TestCollection_Replace(t *testing.T) {
	col, _ := colDeNotas(t)
	require.NoError(t, col.Append(nota{ID: "n1", Texto: "v1"}))

	ok, err := col.Replace("n1", nota{ID: "n1", Texto: "v2"})
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := col.Get("n1")
	require.NoError(t, err)
	assert.Equal(t, "v2", n.Texto)

	ok, err = col.Replace("fantasma", nota{ID: "fantasma"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollection_RemoveIdempotente(t *testing.T) {
	col, path := colDeNotas(t)
	require.NoError(t, col.Append(nota{ID: "n1", Texto: "hola"}))

	antes, err := os.ReadFile(path)
	require.NoError(t, err)

	ok, err := col.Remove("no-existe")
	require.NoError(t, err)
	assert.False(t, ok)

	despues, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(antes), string(despues), "sin eliminación no debe haber escritura")

	ok, err = col.Remove("n1")
	require.NoError(t, err)
	assert.True(t, ok)

	todas, err := col.All()
	require.NoError(t, err)
	assert.Empty(t, todas)
}

// Los campos persistidos que el esquema actual no modela deben sobrevivir
// una actualización parcial: el sistema original conserva price_fox en cada
// reescritura del producto.
func TestCollection_ConservaClavesNoModeladas(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "product_catalog.json")
	seed := `[
        {"id": "p1", "product_code": "ACE-010", "name": "Aceite 20W50", "cost": 10, "price_fox": 99.5}
    ]`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	repo := jsonstore.NewProductoRepository(path, logger.Nop())

	p, err := repo.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, p)
	p.Nombre = "Aceite 20W50 mineral"
	ok, err := repo.Update(p)
	require.NoError(t, err)
	require.True(t, ok)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var raws []map[string]any
	require.NoError(t, json.Unmarshal(content, &raws))
	require.Len(t, raws, 1)
	assert.Equal(t, "Aceite 20W50 mineral", raws[0]["name"])
	precio, tiene := raws[0]["price_fox"]
	require.True(t, tiene, "price_fox debe sobrevivir la actualización")
	assert.Equal(t, float64(99.5), precio)
}

// Una escritura puntual no debe "actualizar" los registros vecinos que aún
// tienen forma antigua en disco: solo el registro tocado cambia de forma.
func TestCollection_VecinosHeredadosIntactos(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cash_and_banks.json")
	seed := `[
        {"id": "a", "concept": "venta", "amount": -50, "type": "cash"},
        {"id": "b", "concept": "depósito", "amount": 30, "type": "bank_account"}
    ]`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	repo := jsonstore.NewMovimientoRepository(path, logger.Nop())

	mov, err := repo.GetByID("b")
	require.NoError(t, err)
	require.NotNil(t, mov)
	mov.Descripcion = "depósito actualizado"
	ok, err := repo.Update(mov)
	require.NoError(t, err)
	require.True(t, ok)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var raws []map[string]any
	require.NoError(t, json.Unmarshal(content, &raws))
	require.Len(t, raws, 2)
	assert.Equal(t, "venta", raws[0]["concept"], "el vecino conserva su forma antigua en disco")
	assert.Equal(t, "depósito actualizado", raws[1]["descripcion"], "el registro escrito queda en forma actual")
	_, tieneConcept := raws[1]["concept"]
	assert.False(t, tieneConcept)
}
