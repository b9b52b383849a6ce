package main

import (
	"database/sql"
	"flag"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/vinoteca/cavastock/internal/infrastructure/postgres"
	"github.com/vinoteca/cavastock/pkg/config"
	"github.com/vinoteca/cavastock/pkg/logger"
)

// Aplica las migraciones embebidas con goose. Uso: migrate [up|down|status]
func main() {
	command := flag.String("command", "up", "comando goose: up, down o status")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión")
	}
	defer db.Close()

	goose.SetBaseFS(postgres.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("dialecto goose")
	}

	switch *command {
	case "up":
		err = goose.Up(db, "migrations")
	case "down":
		err = goose.Down(db, "migrations")
	case "status":
		err = goose.Status(db, "migrations")
	default:
		log.Error().Str("command", *command).Msg("comando desconocido")
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("migración fallida")
	}
	log.Info().Str("command", *command).Msg("migraciones aplicadas")
}
