package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/fox-gestion/pkg/config"
)

func TestCollectionPaths(t *testing.T) {
	store := config.StoreConfig{DataDir: "data"}

	paths := store.CollectionPaths()
	require.Len(t, paths, len(config.CollectionNames()))
	for _, name := range config.CollectionNames() {
		assert.Equal(t, filepath.Join("data", name+".json"), paths[name])
	}
}

func TestCollectionNames_Registro(t *testing.T) {
	names := config.CollectionNames()
	assert.Contains(t, names, config.ColProductos)
	assert.Contains(t, names, config.ColCobros)
	assert.Contains(t, names, config.ColMovimientos)
	assert.Contains(t, names, config.ColTerceros)
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.App.Env)
	assert.NotEmpty(t, cfg.Log.Level)
	assert.NotEmpty(t, cfg.Store.DataDir)
	assert.NotEmpty(t, cfg.Backup.Version)
}
