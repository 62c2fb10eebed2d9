// Package bootstrap abre los stores según la configuración; lo comparten la API y las
// herramientas de línea de comandos.
package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebasesdk "firebase.google.com/go/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/firebase"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/redisstore"
	"github.com/jhoicas/catalogo-admin/pkg/config"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

// Stores adaptadores de persistencia abiertos. Firebase es nil salvo que algún driver
// o AUTH_PROVIDER lo necesite.
type Stores struct {
	Products repository.ProductRepository
	Settings repository.SettingsStore
	Users    repository.UserRepository
	Firebase *firebasesdk.App

	closers []func()
}

// Close libera las conexiones en orden inverso de apertura.
func (s *Stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// Open abre los stores de cfg.Store. Con postgres aplica el esquema embebido.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Stores, error) {
	s := &Stores{}
	var (
		pool *pgxpool.Pool
		fs   *firestore.Client
		rdb  *goredis.Client
	)
	needs := func(driver string) bool {
		return cfg.Store.Driver == driver || cfg.Store.SettingsDriver == driver
	}

	if needs("postgres") {
		p, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, p.Close)
		if err := postgres.EnsureSchema(ctx, p); err != nil {
			s.Close()
			return nil, err
		}
		pool = p
	}
	if needs("firestore") || cfg.Auth.Provider == "firebase" {
		app, err := firebase.NewApp(ctx, cfg.Firebase)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.Firebase = app
	}
	if needs("firestore") {
		c, err := s.Firebase.Firestore(ctx)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("cliente Firestore: %w", err)
		}
		s.closers = append(s.closers, func() { _ = c.Close() })
		fs = c
	}
	if needs("redis") {
		c, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = c.Close() })
		rdb = c
	}

	switch cfg.Store.Driver {
	case "postgres":
		s.Products = postgres.NewProductRepository(pool)
	case "firestore":
		s.Products = firebase.NewProductRepository(fs, cfg.Firebase.ProductsCollection)
	default:
		log.Warn().Msg("STORE_DRIVER=memory: los productos no se persisten")
		s.Products = memory.NewProductRepo()
	}

	switch cfg.Store.SettingsDriver {
	case "postgres":
		s.Settings = postgres.NewSettingsStore(pool)
	case "redis":
		s.Settings = redisstore.NewSettingsStore(rdb, cfg.Redis.KeyPrefix)
	case "firestore":
		s.Settings = firebase.NewSettingsStore(fs, cfg.Firebase.SettingsCollection)
	default:
		s.Settings = memory.NewSettingsStore()
	}

	// Los usuarios del login propio viven en Postgres cuando hay pool.
	if pool != nil {
		s.Users = postgres.NewUserRepository(pool)
	} else {
		if cfg.Auth.Provider == "jwt" {
			log.Warn().Msg("sin PostgreSQL: los usuarios del panel se guardan en memoria")
		}
		s.Users = memory.NewUserRepo()
	}

	log.Info().
		Str("store", cfg.Store.Driver).
		Str("settings", cfg.Store.SettingsDriver).
		Str("auth", cfg.Auth.Provider).
		Msg("stores abiertos")
	return s, nil
}
