// Package backup arma y restaura el bundle de respaldo del sistema completo.
// Opera por debajo de la normalización: lee y escribe los bytes crudos de
// cada archivo de colección, así el respaldo es neutral al esquema.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/tu-usuario/fox-gestion/internal/domain"
	"github.com/tu-usuario/fox-gestion/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/fox-gestion/pkg/logger"
)

// Bundle es el artefacto exportable: el contrato exacto en el borde del
// sistema. Cada valor de Data es el arreglo crudo de una colección, o un
// objeto {"error": mensaje} si su archivo no pudo leerse.
type Bundle struct {
	Version   string                     `json:"version"`
	Timestamp string                     `json:"timestamp"`
	Data      map[string]json.RawMessage `json:"data"`
}

// RestoreResult resume una restauración. Exitoso solo cuando la lista de
// errores queda vacía; una restauración parcial deja colecciones ya
// sobrescritas y otras intactas (sin rollback, conciliación manual).
type RestoreResult struct {
	RestoredCount  int      `json:"restored_count"`
	FilesAttempted int      `json:"files_attempted"`
	Errors         []string `json:"errors"`
	RestoredFiles  []string `json:"restored_files_list"`
}

// Success indica si la restauración completó sin errores por colección.
func (r *RestoreResult) Success() bool {
	return len(r.Errors) == 0
}

// Coordinator recorre el registro fijo de colecciones compartido con el
// almacén. Las claves del registro son los únicos nombres restaurables.
type Coordinator struct {
	registry map[string]string // nombre de colección -> ruta de archivo
	version  string
	log      *logger.Logger
	now      func() time.Time
}

// NewCoordinator construye el coordinador sobre el registro inyectado.
func NewCoordinator(registry map[string]string, version string, log *logger.Logger) *Coordinator {
	return &Coordinator{registry: registry, version: version, log: log, now: time.Now}
}

type errorMarker struct {
	Error string `json:"error"`
}

// CollectAll lee el contenido crudo de cada colección registrada. Archivo
// ausente o vacío -> arreglo vacío; contenido que no parsea -> marcador de
// error en línea para esa colección. Nunca falla completo.
func (c *Coordinator) CollectAll() map[string]json.RawMessage {
	data := make(map[string]json.RawMessage, len(c.registry))
	for name, path := range c.registry {
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				c.log.Warn().Str("collection", name).Str("file", path).
					Msg("archivo de datos no encontrado; se exporta lista vacía")
				data[name] = json.RawMessage("[]")
				continue
			}
			data[name] = marker(fmt.Sprintf("error al leer %s: %v", name, err))
			continue
		}
		if len(content) == 0 {
			data[name] = json.RawMessage("[]")
			continue
		}
		if !json.Valid(content) {
			c.log.Error().Str("collection", name).Str("file", path).
				Msg("contenido no parseable durante la exportación")
			data[name] = marker(fmt.Sprintf("error de parseo JSON en %s", name))
			continue
		}
		data[name] = json.RawMessage(content)
	}
	return data
}

func marker(msg string) json.RawMessage {
	m, err := json.Marshal(errorMarker{Error: msg})
	if err != nil {
		return json.RawMessage(`{"error":"error desconocido"}`)
	}
	return m
}

// BuildBundle envuelve CollectAll con la versión del formato y la marca de
// tiempo de captura en UTC.
func (c *Coordinator) BuildBundle() *Bundle {
	return &Bundle{
		Version:   c.version,
		Timestamp: c.now().UTC().Format(time.RFC3339),
		Data:      c.CollectAll(),
	}
}

// DecodeBundle parsea y valida la estructura mínima de un bundle importado:
// claves version, timestamp y data (objeto) presentes.
func DecodeBundle(content []byte) (*Bundle, error) {
	var probe struct {
		Version   *string                    `json:"version"`
		Timestamp *string                    `json:"timestamp"`
		Data      map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(content, &probe); err != nil {
		return nil, domain.Validationf("archivo de backup inválido: no es un JSON válido")
	}
	if probe.Version == nil || probe.Timestamp == nil || probe.Data == nil {
		return nil, domain.Validationf("formato de archivo de backup inválido: faltan campos esenciales")
	}
	return &Bundle{Version: *probe.Version, Timestamp: *probe.Timestamp, Data: probe.Data}, nil
}

// RestoreAll escribe el payload de cada colección tal cual a su archivo.
// Verificación previa cerrada: una clave fuera del registro aborta la
// restauración completa sin escribir nada. Superada esa verificación, el
// fallo de una colección se registra y no detiene a las demás.
func (c *Coordinator) RestoreAll(data map[string]json.RawMessage) (*RestoreResult, error) {
	names := make([]string, 0, len(data))
	for name := range data {
		if _, ok := c.registry[name]; !ok {
			return nil, domain.Validationf("el backup contiene una clave de datos desconocida: '%s'", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	result := &RestoreResult{
		FilesAttempted: len(names),
		Errors:         []string{},
		RestoredFiles:  []string{},
	}
	for _, name := range names {
		path := c.registry[name]
		if err := jsonstore.WriteFileAtomic(path, data[name]); err != nil {
			msg := fmt.Sprintf("error al restaurar '%s' en %s: %v", name, path, err)
			c.log.Error().Str("collection", name).Err(err).Msg("fallo al restaurar colección")
			result.Errors = append(result.Errors, msg)
			continue
		}
		result.RestoredCount++
		result.RestoredFiles = append(result.RestoredFiles, path)
	}
	return result, nil
}

// ExportFilename arma el nombre de archivo de exportación con la marca de
// tiempo local, igual que la descarga del sistema original.
func (c *Coordinator) ExportFilename() string {
	return "backup_sistema_completo_" + c.now().Format("20060102_150405") + ".json"
}
