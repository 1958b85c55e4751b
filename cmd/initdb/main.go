// initdb crea el esquema (idempotente) y siembra el administrador inicial
// definido por ADMIN_EMAIL / ADMIN_PASSWORD, todo en una sola transacción.
//
// Uso: go run ./cmd/initdb
package main

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/sobrickz-opname/internal/application/auth"
	"github.com/jhoicas/sobrickz-opname/internal/application/dto"
	"github.com/jhoicas/sobrickz-opname/internal/domain"
	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
	"github.com/jhoicas/sobrickz-opname/internal/infrastructure/postgres"
	"github.com/jhoicas/sobrickz-opname/pkg/config"
	"github.com/jhoicas/sobrickz-opname/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatal().Str("db_driver", cfg.DB.Driver).Msg("initdb solo aplica a postgres")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	err = postgres.NewTxRunner(pool).Run(ctx, func(q postgres.Querier) error {
		if err := postgres.Bootstrap(ctx, q); err != nil {
			return err
		}
		if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
			log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD vacíos: no se siembra administrador")
			return nil
		}
		uc := auth.NewAuthUseCase(postgres.NewUserRepository(q), auth.JWTConfig{})
		admin, err := uc.RegisterOperator(ctx, dto.RegisterRequest{
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
			Name:     cfg.Admin.Name,
			Role:     entity.RoleAdmin,
		})
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			log.Info().Str("email", cfg.Admin.Email).Msg("administrador ya existe")
			return nil
		}
		if err != nil {
			return err
		}
		log.Info().Int64("user_id", admin.ID).Str("email", admin.Email).Msg("administrador creado")
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("initdb")
	}
	log.Info().Msg("esquema listo")
}
