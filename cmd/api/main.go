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

	"github.com/jhoicas/portal-empleados-api/internal/application/auth"
	"github.com/jhoicas/portal-empleados-api/internal/application/usecase"
	"github.com/jhoicas/portal-empleados-api/internal/domain/repository"
	"github.com/jhoicas/portal-empleados-api/internal/infrastructure/memory"
	"github.com/jhoicas/portal-empleados-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/portal-empleados-api/internal/interfaces/http"
	"github.com/jhoicas/portal-empleados-api/pkg/config"
	"github.com/jhoicas/portal-empleados-api/pkg/logger"
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

	var (
		employeeRepo repository.EmployeeRepository
		orderRepo    repository.OrderRepository
	)
	if cfg.DB.Empty() {
		log.Warn().Msg("sin base de datos configurada, usando store en memoria (los datos no sobreviven al proceso)")
		employeeRepo = memory.NewEmployeeRepository()
		orderRepo = memory.NewOrderRepository()
	} else {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		employeeRepo = postgres.NewEmployeeRepository(pool)
		orderRepo = postgres.NewOrderRepository(pool)
	}

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	authUC := auth.NewAuthUseCase(employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Portal Empleados API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC: employeeUC,
		OrderUC:    orderUC,
		AuthUC:     authUC,
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
