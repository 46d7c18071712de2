// Comando backup: exporta o restaura el bundle de respaldo del sistema.
//
//	backup export [archivo]   escribe el bundle (por defecto con nombre fechado)
//	backup import <archivo>   restaura todas las colecciones desde un bundle
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tu-usuario/fox-gestion/internal/infrastructure/backup"
	"github.com/tu-usuario/fox-gestion/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/fox-gestion/pkg/config"
	"github.com/tu-usuario/fox-gestion/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})

	coord := backup.NewCoordinator(cfg.Store.CollectionPaths(), cfg.Backup.Version, log)

	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "export":
		out := coord.ExportFilename()
		if len(os.Args) > 2 {
			out = os.Args[2]
		}
		if err := export(coord, out); err != nil {
			log.Fatal().Err(err).Msg("exportar backup")
		}
		log.Info().Str("file", out).Msg("backup exportado")
	case "import":
		if len(os.Args) < 3 {
			usage()
		}
		result, err := restore(coord, os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Msg("importar backup")
		}
		log.Info().
			Int("restored", result.RestoredCount).
			Int("attempted", result.FilesAttempted).
			Msg("restauración finalizada")
		if !result.Success() {
			for _, e := range result.Errors {
				log.Error().Msg(e)
			}
			os.Exit(1)
		}
	default:
		usage()
	}
}

func export(coord *backup.Coordinator, out string) error {
	bundle := coord.BuildBundle()
	content, err := json.MarshalIndent(bundle, "", "    ")
	if err != nil {
		return fmt.Errorf("serializar bundle: %w", err)
	}
	return jsonstore.WriteFileAtomic(out, content)
}

func restore(coord *backup.Coordinator, file string) (*backup.RestoreResult, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", file, err)
	}
	bundle, err := backup.DecodeBundle(content)
	if err != nil {
		return nil, err
	}
	return coord.RestoreAll(bundle.Data)
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: backup export [archivo] | backup import <archivo>")
	os.Exit(2)
}
