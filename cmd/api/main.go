package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/couponhub-api/internal/application/auth"
	"github.com/jhoicas/couponhub-api/internal/application/catalog"
	"github.com/jhoicas/couponhub-api/internal/application/ports"
	"github.com/jhoicas/couponhub-api/internal/infrastructure/imagehost"
	"github.com/jhoicas/couponhub-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/couponhub-api/internal/interfaces/http"
	"github.com/jhoicas/couponhub-api/pkg/config"
	"github.com/jhoicas/couponhub-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("image_provider", cfg.Image.Provider).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	storeRepo := postgres.NewStoreRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	couponRepo := postgres.NewCouponRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Host de imágenes: Cloudinary en producción, disco local en desarrollo.
	var uploader ports.ImageUploader
	var localDisk *imagehost.LocalDisk
	switch cfg.Image.Provider {
	case config.ImageProviderCloudinary:
		cld, err := imagehost.NewCloudinary(imagehost.CloudinaryConfig{
			CloudName: cfg.Image.CloudName,
			APIKey:    cfg.Image.APIKey,
			APISecret: cfg.Image.APISecret,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de Cloudinary")
		}
		uploader = cld
	default:
		localDisk = imagehost.NewLocalDisk(cfg.Image.LocalDir, cfg.HTTP.PublicURL)
		uploader = localDisk
	}

	storeUC := catalog.NewStoreUseCase(storeRepo, uploader, log)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo, uploader, log)
	couponUC := catalog.NewCouponUseCase(couponRepo, uploader, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimit,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: strings.Join([]string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, fiber.HeaderAuthorization}, ","),
	}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CouponHub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if localDisk != nil {
		app.Static(imagehost.PublicPrefix, localDisk.Dir())
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		StoreUC:    storeUC,
		CategoryUC: categoryUC,
		CouponUC:   couponUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
