package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/carta-digital/carta-api/internal/application/auth"
	"github.com/carta-digital/carta-api/internal/application/resolve"
	"github.com/carta-digital/carta-api/internal/application/usecase"
	"github.com/carta-digital/carta-api/internal/infrastructure/postgres"
	"github.com/carta-digital/carta-api/internal/infrastructure/storage"
	httpRouter "github.com/carta-digital/carta-api/internal/interfaces/http"
	"github.com/carta-digital/carta-api/pkg/config"
	"github.com/carta-digital/carta-api/pkg/jwt"
	"github.com/carta-digital/carta-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	icons := storage.NewOnDisk(cfg.Media.Dir, cfg.Media.BaseURL)
	resolver := resolve.New(menuRepo, categoryRepo, productRepo)

	jwtOpt := jwt.Options{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		AccessMinutes:  cfg.JWT.AccessMinutes,
		RefreshMinutes: cfg.JWT.RefreshMinutes,
	}
	authUC := auth.NewAuthUseCase(userRepo, menuRepo, txRunner, jwtOpt, log)
	userUC := usecase.NewUserUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(resolver, categoryRepo, icons, log)
	productUC := usecase.NewProductUseCase(resolver, productRepo, icons, log)
	panelUC := usecase.NewPanelUseCase(resolver, categoryRepo, categoryUC, icons)
	customerUC := usecase.NewCustomerUseCase(resolver, categoryRepo, productRepo, icons)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    4 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Carta Digital API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Íconos subidos, servidos bajo el mismo prefijo que Media.BaseURL
	app.Static("/media", cfg.Media.Dir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		PanelUC:    panelUC,
		CustomerUC: customerUC,
		Users:      userRepo,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
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
