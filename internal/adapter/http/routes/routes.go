package routes

import (
	_ "construction_estimator/docs"
	"construction_estimator/internal/adapter/http/handlers"
	"construction_estimator/internal/adapter/http/middleware"
	"construction_estimator/internal/adapter/persistence/cache"
	"construction_estimator/internal/adapter/persistence/repository"
	"construction_estimator/internal/adapter/persistence/sqlstore"
	"construction_estimator/internal/infrastructure/auth"
	"construction_estimator/internal/infrastructure/config"
	"construction_estimator/internal/infrastructure/database"
	"construction_estimator/internal/infrastructure/metrics"
	"construction_estimator/internal/usecase"
	"construction_estimator/internal/usecase/interfaces"
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// stores are the repositories of the configured store driver.
type stores struct {
	estimates interfaces.IEstimateRepository
	cities    interfaces.ICityRepository
	materials interfaces.IMaterialRepository
	close     func() error
}

// Run wires the configured store, the use cases and the HTTP routes, then
// serves until the listener fails.
func Run(cfg config.Config) error {
	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx := context.Background()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			slog.Error("[routes] failed to close store", "err", err)
		}
	}()

	router, err := newRouter(ctx, cfg, st)
	if err != nil {
		return err
	}

	addr := cfg.Addr()
	slog.Info("[routes] listening", "addr", addr, "store", cfg.Store.Driver)
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AWS.Region,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Endpoint:        cfg.AWS.DynamoDBEndpoint,
		})
		if err != nil {
			return stores{}, err
		}
		return stores{
			estimates: repository.NewEstimateDynamoRepository(ddb, cfg.AWS.EstimatesTable),
			cities:    repository.NewCityDynamoRepository(ddb, cfg.AWS.CitiesTable),
			materials: repository.NewMaterialDynamoRepository(ddb, cfg.AWS.MaterialsTable),
			close:     func() error { return nil },
		}, nil

	case config.StoreSQLite:
		db, err := database.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		if err := database.Migrate(db, database.DialectSQLite); err != nil {
			db.Close()
			return stores{}, err
		}
		return stores{
			estimates: sqlstore.NewEstimateRepository(db, sqlstore.SQLite),
			cities:    sqlstore.NewCityRepository(db, sqlstore.SQLite),
			materials: sqlstore.NewMaterialRepository(db, sqlstore.SQLite),
			close:     db.Close,
		}, nil

	case config.StorePostgres:
		db, err := database.OpenPostgres(ctx, cfg.Store.PostgresDSN)
		if err != nil {
			return stores{}, err
		}
		if err := database.Migrate(db, database.DialectPostgres); err != nil {
			db.Close()
			return stores{}, err
		}
		return stores{
			estimates: sqlstore.NewEstimateRepository(db, sqlstore.Postgres),
			cities:    sqlstore.NewCityRepository(db, sqlstore.Postgres),
			materials: sqlstore.NewMaterialRepository(db, sqlstore.Postgres),
			close:     db.Close,
		}, nil
	}
	return stores{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func newRouter(ctx context.Context, cfg config.Config, st stores) (*gin.Engine, error) {
	rates := cache.NewRateCache(cfg.Estimator.CacheSize, cfg.Estimator.CacheTTL)
	cities := rates.Cities(st.cities)
	materials := rates.Materials(st.materials)
	m := metrics.New()

	estimateUseCase := usecase.NewEstimateUseCase(st.estimates, cities, materials,
		usecase.WithDefaultCity(cfg.Estimator.DefaultCity),
		usecase.WithMetrics(m),
	)
	referenceUseCase := usecase.NewReferenceUseCase(cities, materials)
	adminUseCase := usecase.NewAdminUseCase(st.estimates, cities, materials)

	if cfg.Store.Seed {
		if err := referenceUseCase.SeedDefaults(ctx); err != nil {
			return nil, err
		}
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	if cfg.Metrics.Enabled {
		router.Use(middleware.Metrics(m))
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	tokens := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.TTL)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatorRoutes(v1, tokens,
		handlers.NewEstimateHandler(estimateUseCase),
		handlers.NewReferenceHandler(referenceUseCase),
		handlers.NewAdminHandler(adminUseCase),
	)
	return router, nil
}
