// Package jsonstore persiste cada colección como un archivo con un arreglo
// JSON de registros. Toda mutación es un ciclo leer-modificar-escribir del
// archivo completo, serializado por un mutex por colección para evitar la
// pérdida de actualizaciones entre escritores concurrentes.
//
// Política de recuperación: un archivo ausente, vacío o que no parsea como
// arreglo se reinicia en silencio a colección vacía. Es una decisión de
// disponibilidad sobre durabilidad heredada del sistema original; el evento
// queda registrado en el log como advertencia porque destruye datos no
// recuperables.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/fox-gestion/internal/domain/schema"
	"github.com/tu-usuario/fox-gestion/pkg/logger"
)

func init() {
	// Los archivos heredados guardan montos como números JSON; conservar esa
	// forma al reescribir.
	decimal.MarshalJSONWithoutQuotes = true
}

// Collection almacena registros de tipo T en un archivo de arreglo JSON.
// Las lecturas pasan cada registro crudo por el normalizador de la colección;
// las escrituras tocan solo el objeto crudo del registro afectado, así los
// vecinos con forma antigua permanecen intactos hasta que se escriban.
type Collection[T any] struct {
	mu        sync.Mutex
	path      string
	normalize schema.Normalizer
	log       *logger.Logger
}

// NewCollection construye la colección respaldada por el archivo en path.
func NewCollection[T any](path string, normalize schema.Normalizer, log *logger.Logger) *Collection[T] {
	return &Collection[T]{path: path, normalize: normalize, log: log}
}

// Path devuelve la ruta del archivo de respaldo.
func (c *Collection[T]) Path() string {
	return c.path
}

// All devuelve todos los registros normalizados en orden de inserción.
func (c *Collection[T]) All() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raws, err := c.loadRaw()
	if err != nil {
		return nil, err
	}
	return c.decode(raws)
}

// Get devuelve el registro con ese id, o (nil, nil) si no existe.
func (c *Collection[T]) Get(id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raws, err := c.loadRaw()
	if err != nil {
		return nil, err
	}
	for _, raw := range raws {
		if recordID(raw) == id {
			recs, err := c.decode([]map[string]any{raw})
			if err != nil {
				return nil, err
			}
			return &recs[0], nil
		}
	}
	return nil, nil
}

// Append agrega un registro al final y persiste la colección completa.
func (c *Collection[T]) Append(rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raws, err := c.loadRaw()
	if err != nil {
		return err
	}
	encoded, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	return c.save(append(raws, encoded))
}

// Replace sustituye los campos modelados del registro con ese id por los de
// rec y persiste. Las claves persistidas que el esquema actual no modela
// (campos de despliegues anteriores, como price_fox) sobreviven la escritura;
// las claves heredadas ya migradas las retira el normalizador. Devuelve
// false cuando el id no existe (sin escritura).
func (c *Collection[T]) Replace(id string, rec T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raws, err := c.loadRaw()
	if err != nil {
		return false, err
	}
	for i, raw := range raws {
		if recordID(raw) == id {
			encoded, err := encodeRecord(rec)
			if err != nil {
				return false, err
			}
			merged := c.normalize(raw)
			for k, v := range encoded {
				merged[k] = v
			}
			raws[i] = merged
			return true, c.save(raws)
		}
	}
	return false, nil
}

// Remove elimina el registro con ese id. Idempotente: si no existe devuelve
// false y no escribe el archivo.
func (c *Collection[T]) Remove(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raws, err := c.loadRaw()
	if err != nil {
		return false, err
	}
	kept := raws[:0:0]
	for _, raw := range raws {
		if recordID(raw) != id {
			kept = append(kept, raw)
		}
	}
	if len(kept) == len(raws) {
		return false, nil
	}
	return true, c.save(kept)
}

// loadRaw lee el arreglo crudo. Ausente, vacío o corrupto -> reinicio a [].
func (c *Collection[T]) loadRaw() ([]map[string]any, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, c.reset()
		}
		return nil, fmt.Errorf("leer %s: %w", c.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, c.reset()
	}
	var raws []map[string]any
	if err := json.Unmarshal(data, &raws); err != nil {
		c.log.Warn().
			Str("file", c.path).
			Err(err).
			Msg("archivo de colección corrupto; se reinicia a lista vacía")
		return nil, c.reset()
	}
	return raws, nil
}

func (c *Collection[T]) reset() error {
	return WriteFileAtomic(c.path, []byte("[]"))
}

func (c *Collection[T]) save(raws []map[string]any) error {
	if raws == nil {
		raws = []map[string]any{}
	}
	data, err := json.MarshalIndent(raws, "", "    ")
	if err != nil {
		return fmt.Errorf("serializar colección: %w", err)
	}
	return WriteFileAtomic(c.path, data)
}

// decode normaliza cada registro crudo y lo decodifica al tipo de la colección.
func (c *Collection[T]) decode(raws []map[string]any) ([]T, error) {
	normalized := make([]map[string]any, 0, len(raws))
	for _, raw := range raws {
		normalized = append(normalized, c.normalize(raw))
	}
	buf, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("codificar registros normalizados: %w", err)
	}
	recs := make([]T, 0, len(raws))
	if err := json.Unmarshal(buf, &recs); err != nil {
		return nil, fmt.Errorf("decodificar registros: %w", err)
	}
	return recs, nil
}

func encodeRecord[T any](rec T) (map[string]any, error) {
	buf, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("codificar registro: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(buf, &m); err != nil {
		return nil, fmt.Errorf("decodificar registro codificado: %w", err)
	}
	return m, nil
}

func recordID(raw map[string]any) string {
	id, _ := raw["id"].(string)
	return id
}
