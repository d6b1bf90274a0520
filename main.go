package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"barbershop/config"
	_ "barbershop/docs"
	"barbershop/internal/metrics"
	"barbershop/internal/notify"
	"barbershop/internal/repository"
	"barbershop/internal/service"
	"barbershop/internal/storage"
	"barbershop/internal/transport/rest"
	"barbershop/internal/transport/websocket"
	"barbershop/pkg/database"
	"barbershop/pkg/logger"
	"barbershop/pkg/ratelimit"
	"barbershop/pkg/tracing"
	"barbershop/pkg/validator"
)

const sessionCleanupInterval = time.Hour

// @title Barbershop API
// @version 1.0
// @description API del sitio y de reservas de la barbería

// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, cfgErr := config.NewConfig()

	env, level := "development", os.Getenv("LOG_LEVEL")
	if cfg != nil {
		env, level = cfg.Environment, cfg.LogLevel
	}
	log, err := logger.NewLogger(env, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "no se pudo crear el logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfgErr != nil {
		log.Fatal("no se pudo cargar la configuración", zap.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, tracing.Service{
		Name:        cfg.Name,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})
	if err != nil {
		log.Fatal("no se pudo inicializar el trazado", zap.Error(err))
	}

	db, err := database.NewPostgresDB(ctx, cfg.Postgres, log)
	if err != nil {
		log.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}
	defer db.Close()

	log.Info("ejecutando migraciones de la base de datos")
	if err := database.RunMigrations(ctx, db, cfg.Postgres.MigrationsDir, log); err != nil {
		log.Fatal("error al ejecutar las migraciones", zap.Error(err))
	}
	log.Info("migraciones ejecutadas correctamente")

	var fileStorage storage.FileStorage
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			log.Fatal("no se pudo inicializar el almacenamiento S3", zap.Error(err))
		}
		fileStorage = s3Storage
		log.Info("almacenamiento S3 inicializado", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		localStorage, err := storage.NewLocalStorage(cfg.Uploads.Dir, cfg.Uploads.URLPrefix, log)
		if err != nil {
			log.Fatal("no se pudo inicializar el almacenamiento local", zap.Error(err))
		}
		fileStorage = localStorage
		log.Info("almacenamiento local inicializado", zap.String("dir", localStorage.Dir()))
	}

	repos := repository.NewRepositories(db)

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("Redis no responde", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
	}

	if cfg.Session.Store == "redis" {
		repos.Session = repository.NewRedisSessionStore(rdb)
		log.Info("sesiones almacenadas en Redis")
	}

	var limiter ratelimit.Limiter
	if rdb != nil {
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.Name+":rl")
	} else {
		memLimiter := ratelimit.NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		go memLimiter.RunCleanup(ctx, cfg.RateLimit.Window)
		limiter = memLimiter
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.NewMetrics(cfg.Metrics.Namespace, prometheus.DefaultRegisterer)
	}

	dispatcher := notify.NewDispatcher(log, m, cfg.Notify.Timeout, buildNotifiers(cfg, log)...)

	hub := websocket.NewHub(log, m, cfg.HTTP.AllowedOrigins)
	go hub.Run(ctx)

	services := service.NewServices(service.Deps{
		Repos:       repos,
		Logger:      log,
		Config:      cfg,
		FileStorage: fileStorage,
		Notifier:    dispatcher,
		Publisher:   hub,
		Metrics:     m,
	})

	engine, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		log.Fatal("el motor de validación de gin no es go-playground/validator")
	}
	if err := validator.Register(engine, validator.Options{
		Languages:  cfg.Locale.SupportedLanguages,
		Currencies: cfg.Locale.SupportedCurrencies,
	}); err != nil {
		log.Fatal("no se pudieron registrar las validaciones", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler := rest.NewHandler(services, log, cfg, hub, limiter, m)
	handler.AddReadinessCheck("postgres", db.Ping)
	if rdb != nil {
		handler.AddReadinessCheck("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	handler.InitRoutes(router)

	var httpHandler http.Handler = router
	if cfg.Tracing.Enabled {
		httpHandler = otelhttp.NewHandler(router, cfg.Name)
	}

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        httpHandler,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go cleanupSessions(ctx, services.Auth, log)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("error al iniciar el servidor", zap.Error(err))
		}
	}()

	log.Info("servidor iniciado", zap.String("addr", srv.Addr), zap.String("env", cfg.Environment))

	<-ctx.Done()
	log.Info("apagando el servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("error al detener el servidor", zap.Error(err))
	}

	dispatcher.Wait()

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("error al vaciar las trazas", zap.Error(err))
	}

	log.Info("servidor detenido correctamente")
}

// buildNotifiers returns the configured notification channels, falling back
// to logging when none is configured.
func buildNotifiers(cfg *config.Config, log *zap.Logger) []notify.Notifier {
	var notifiers []notify.Notifier

	if cfg.SMTP.Host != "" {
		notifiers = append(notifiers, notify.NewEmailNotifier(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.From,
			cfg.Notify.EmailTo,
		))
		log.Info("notificaciones por correo habilitadas", zap.String("host", cfg.SMTP.Host))
	}

	if cfg.Telegram.BotToken != "" {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Warn("no se pudo inicializar el bot de Telegram", zap.Error(err))
		} else {
			notifiers = append(notifiers, tg)
			log.Info("notificaciones por Telegram habilitadas")
		}
	}

	if len(notifiers) == 0 {
		log.Warn("sin canales de notificación configurados, se registrarán en el log")
		notifiers = append(notifiers, notify.NewLogNotifier(log))
	}

	return notifiers
}

func cleanupSessions(ctx context.Context, auth service.AuthService, log *zap.Logger) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := auth.CleanupExpired(ctx)
			if err != nil {
				log.Warn("error al limpiar sesiones expiradas", zap.Error(err))
				continue
			}
			if removed > 0 {
				log.Info("sesiones expiradas eliminadas", zap.Int64("count", removed))
			}
		}
	}
}
