package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	catalogapp "github.com/appdotbuilder/bag-factory-manager-2db9/internal/application/catalog"
	financeapp "github.com/appdotbuilder/bag-factory-manager-2db9/internal/application/finance"
	hrapp "github.com/appdotbuilder/bag-factory-manager-2db9/internal/application/hr"
	identityapp "github.com/appdotbuilder/bag-factory-manager-2db9/internal/application/identity"
	inventoryapp "github.com/appdotbuilder/bag-factory-manager-2db9/internal/application/inventory"
	partnerapp "github.com/appdotbuilder/bag-factory-manager-2db9/internal/application/partner"
	tradeapp "github.com/appdotbuilder/bag-factory-manager-2db9/internal/application/trade"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/auth"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/config"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/logger"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/persistence"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/interfaces/http/handler"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/interfaces/http/router"
)

// version is set via -ldflags at build time
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer log.Sync() //nolint:errcheck

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	jwtService := auth.NewJWTService(cfg.JWT)

	userRepo := persistence.NewGormUserRepository(db.DB)
	materialRepo := persistence.NewGormRawMaterialRepository(db.DB)
	movementRepo := persistence.NewGormInventoryMovementRepository(db.DB)
	opnameRepo := persistence.NewGormStockOpnameRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	categoryRepo := persistence.NewGormFinancialCategoryRepository(db.DB)
	transactionRepo := persistence.NewGormFinancialTransactionRepository(db.DB)
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)

	authService := identityapp.NewAuthService(userRepo, jwtService)
	userService := identityapp.NewUserService(userRepo)
	materialService := inventoryapp.NewMaterialService(materialRepo, movementRepo)
	movementService := inventoryapp.NewMovementService(movementRepo, materialRepo)
	opnameService := inventoryapp.NewOpnameService(opnameRepo, materialRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	productService := catalogapp.NewProductService(productRepo)
	orderService := tradeapp.NewOrderService(orderRepo, customerRepo, productRepo, materialRepo)
	categoryService := financeapp.NewCategoryService(categoryRepo)
	transactionService := financeapp.NewTransactionService(transactionRepo, categoryRepo)
	departmentService := hrapp.NewDepartmentService(departmentRepo, employeeRepo)
	employeeService := hrapp.NewEmployeeService(employeeRepo, departmentRepo)

	engine := router.New(cfg, log, jwtService, router.Handlers{
		System:      handler.NewSystemHandler(db, version),
		Auth:        handler.NewAuthHandler(authService),
		User:        handler.NewUserHandler(userService),
		Material:    handler.NewMaterialHandler(materialService),
		Movement:    handler.NewMovementHandler(movementService),
		Opname:      handler.NewOpnameHandler(opnameService),
		Customer:    handler.NewCustomerHandler(customerService),
		Product:     handler.NewProductHandler(productService),
		Order:       handler.NewOrderHandler(orderService),
		Category:    handler.NewCategoryHandler(categoryService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Department:  handler.NewDepartmentHandler(departmentService),
		Employee:    handler.NewEmployeeHandler(employeeService),
	})

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
