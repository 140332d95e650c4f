package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	petsmemory "github.com/gopetstore/petstore/internal/domains/pets/adapters/memory"
	petsobs "github.com/gopetstore/petstore/internal/domains/pets/adapters/observability"
	petsapp "github.com/gopetstore/petstore/internal/domains/pets/application"
	storememory "github.com/gopetstore/petstore/internal/domains/store/adapters/memory"
	storeobs "github.com/gopetstore/petstore/internal/domains/store/adapters/observability"
	storeapp "github.com/gopetstore/petstore/internal/domains/store/application"
	usermemory "github.com/gopetstore/petstore/internal/domains/users/adapters/memory"
	userobs "github.com/gopetstore/petstore/internal/domains/users/adapters/observability"
	userapp "github.com/gopetstore/petstore/internal/domains/users/application"
	"github.com/gopetstore/petstore/internal/httpapi"
	platformobservability "github.com/gopetstore/petstore/internal/platform/observability"
)

const serviceName = "petstore-api"

// Run boots the Petstore HTTP API with observability, repositories, and
// sample data wired.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	petRepo := petsmemory.NewRepository()
	orderRepo := storememory.NewRepository()
	userRepo := usermemory.NewRepository()

	petService := petsobs.New(
		petsapp.NewService(petRepo),
		petsobs.WithLogger(logger),
		petsobs.WithTracer(instruments.Tracer("internal.domains.pets.application")),
		petsobs.WithMeter(instruments.Meter("internal.domains.pets.application")),
	)
	storeService := storeobs.New(
		storeapp.NewService(orderRepo),
		storeobs.WithLogger(logger),
		storeobs.WithTracer(instruments.Tracer("internal.domains.store.application")),
		storeobs.WithMeter(instruments.Meter("internal.domains.store.application")),
	)
	userService := userobs.New(
		userapp.NewService(userRepo),
		userobs.WithLogger(logger),
		userobs.WithTracer(instruments.Tracer("internal.domains.users.application")),
		userobs.WithMeter(instruments.Meter("internal.domains.users.application")),
	)

	if cfg.Seed.Enabled {
		if err := Seed(ctx, petRepo, orderRepo, userRepo, time.Now); err != nil {
			return fmt.Errorf("failed to seed sample data: %w", err)
		}
		logger.Info("sample data seeded")
	}

	handlers := httpapi.ApiHandleFunctions{
		PetAPI:   httpapi.NewPetAPI(petService),
		StoreAPI: httpapi.NewStoreAPI(storeService),
		UserAPI:  httpapi.NewUserAPI(userService),
	}

	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()
	engine.Use(gin.Recovery(), otelgin.Middleware(serviceName), httpapi.RequestID())
	router := httpapi.NewRouterWithGinEngine(engine, handlers)

	logger.Info("Petstore API listening", slog.String("addr", cfg.Server.Addr))
	if err := router.Run(cfg.Server.Addr); err != nil {
		logger.Error("Petstore API server exited", slog.String("addr", cfg.Server.Addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}
