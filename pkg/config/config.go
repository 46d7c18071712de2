package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Log    LogConfig
	Store  StoreConfig
	Backup BackupConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string
}

// StoreConfig configuración del almacén de colecciones JSON.
type StoreConfig struct {
	DataDir string // directorio raíz donde vive un archivo .json por colección
}

// BackupConfig configuración del bundle de backup.
type BackupConfig struct {
	Version string // tag de versión del formato del bundle
}

// Nombres de colección registrados. El mismo registro lo comparten el
// almacén de colecciones y el coordinador de backup: una clave fuera de
// esta lista no es restaurable.
const (
	ColProductos   = "product_catalog"
	ColSeries      = "product_series"
	ColCategorias  = "product_categories"
	ColMarcas      = "product_marcas"
	ColJuegos      = "product_juegos"
	ColCobros      = "accounts_receivable"
	ColMovimientos = "cash_and_banks"
	ColTerceros    = "terceros"
)

// CollectionNames devuelve los nombres registrados en orden estable.
func CollectionNames() []string {
	return []string{
		ColProductos,
		ColSeries,
		ColCategorias,
		ColMarcas,
		ColJuegos,
		ColCobros,
		ColMovimientos,
		ColTerceros,
	}
}

// CollectionPaths devuelve el registro nombre de colección -> ruta de archivo.
func (c StoreConfig) CollectionPaths() map[string]string {
	paths := make(map[string]string)
	for _, name := range CollectionNames() {
		paths[name] = filepath.Join(c.DataDir, name+".json")
	}
	return paths
}

// Path devuelve la ruta del archivo de una colección registrada.
func (c StoreConfig) Path(name string) string {
	return filepath.Join(c.DataDir, name+".json")
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATA_DIR, LOG_LEVEL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "fox-gestion"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			DataDir: getString(v, "DATA_DIR", "data"),
		},
		Backup: BackupConfig{
			Version: getString(v, "BACKUP_VERSION", "1.0.0"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
