// Command init-admin creates the first administrator account and optionally
// loads languages, currencies, site configuration and services from a seed file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"barbershop/config"
	"barbershop/internal/domain"
	"barbershop/internal/repository"
	"barbershop/internal/service"
	"barbershop/pkg/database"
	"barbershop/pkg/logger"
)

func main() {
	username := flag.String("username", "admin", "nombre de usuario del administrador")
	email := flag.String("email", "", "correo del administrador")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "contraseña (o ADMIN_PASSWORD)")
	seedPath := flag.String("seed", "", "archivo YAML con datos iniciales")
	reset := flag.Bool("reset", false, "cambiar la contraseña si el usuario ya existe")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "no se pudo cargar la configuración: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "no se pudo crear el logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var seed *SeedFile
	if *seedPath != "" {
		seed, err = LoadSeed(*seedPath)
		if err != nil {
			log.Fatal("archivo de datos iniciales inválido", zap.String("path", *seedPath), zap.Error(err))
		}
		if seed.Admin != nil {
			*username, *email, *password = seed.Admin.Username, seed.Admin.Email, seed.Admin.Password
		}
	}

	if *email == "" || *password == "" {
		log.Fatal("se requieren -email y -password (o ADMIN_PASSWORD)")
	}

	db, err := database.NewPostgresDB(ctx, cfg.Postgres, log)
	if err != nil {
		log.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, cfg.Postgres.MigrationsDir, log); err != nil {
		log.Fatal("error al ejecutar las migraciones", zap.Error(err))
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(service.Deps{
		Repos:  repos,
		Logger: log,
		Config: cfg,
	})

	if err := ensureAdmin(ctx, services.User, repos.AdminUser, domain.CreateAdminUserDTO{
		Username: *username,
		Email:    *email,
		Password: *password,
		Role:     domain.UserRoleAdmin,
	}, *reset, log); err != nil {
		log.Fatal("no se pudo crear el administrador", zap.Error(err))
	}

	if seed != nil {
		if err := applySeed(ctx, seed, repos, services, log); err != nil {
			log.Fatal("error al cargar los datos iniciales", zap.Error(err))
		}
		log.Info("datos iniciales cargados", zap.String("path", *seedPath))
	}
}

func ensureAdmin(ctx context.Context, users service.UserService, repo repository.AdminUserRepository,
	dto domain.CreateAdminUserDTO, reset bool, log *zap.Logger) error {
	id, err := users.Create(ctx, dto)
	if err == nil {
		log.Info("administrador creado", zap.String("id", id), zap.String("username", dto.Username))
		return nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return err
	}

	if !reset {
		log.Info("el administrador ya existe", zap.String("username", dto.Username))
		return nil
	}

	existing, err := repo.GetByUsername(ctx, dto.Username)
	if err != nil {
		return err
	}
	if err := users.ChangePassword(ctx, existing.ID, dto.Password); err != nil {
		return err
	}

	log.Info("contraseña del administrador actualizada", zap.String("username", dto.Username))
	return nil
}

func applySeed(ctx context.Context, seed *SeedFile, repos *repository.Repositories, services *service.Services, log *zap.Logger) error {
	for _, l := range seed.Languages {
		if err := repos.Locale.UpsertLanguage(ctx, l.toDomain()); err != nil {
			return fmt.Errorf("idioma %s: %w", l.Code, err)
		}
	}

	for _, c := range seed.Currencies {
		if err := repos.Locale.UpsertCurrency(ctx, c.toDomain()); err != nil {
			return fmt.Errorf("moneda %s: %w", c.Code, err)
		}
	}

	if len(seed.SiteConfig) > 0 {
		if _, err := services.SiteConfig.Set(ctx, seed.SiteConfig); err != nil {
			return fmt.Errorf("configuración del sitio: %w", err)
		}
	}

	if len(seed.Services) == 0 {
		return nil
	}

	existing, err := services.Catalog.List(ctx, domain.ServiceFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("el catálogo ya tiene servicios, se omiten", zap.Int("count", len(existing)))
		return nil
	}

	for _, svc := range seed.Services {
		if _, err := services.Catalog.Create(ctx, svc.toDTO()); err != nil {
			return err
		}
	}
	log.Info("servicios creados", zap.Int("count", len(seed.Services)))

	return nil
}
