package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/auth"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/config"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/infrastructure/logger"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/interfaces/http/dto"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/interfaces/http/handler"
	"github.com/appdotbuilder/bag-factory-manager-2db9/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	System      *handler.SystemHandler
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Material    *handler.MaterialHandler
	Movement    *handler.MovementHandler
	Opname      *handler.OpnameHandler
	Customer    *handler.CustomerHandler
	Product     *handler.ProductHandler
	Order       *handler.OrderHandler
	Category    *handler.CategoryHandler
	Transaction *handler.TransactionHandler
	Department  *handler.DepartmentHandler
	Employee    *handler.EmployeeHandler
}

// New builds the gin engine with the full middleware chain and all routes
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterDecimalValidation()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		logger.GinMiddleware(log),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")

	// Login stays outside the authenticated group and carries a tight
	// per-IP rate limit to slow down credential stuffing.
	api.POST("/auth/login", middleware.RateLimit(10, time.Minute), h.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware(jwtService))

	authed.GET("/auth/me", h.Auth.Me)
	authed.POST("/auth/change-password", h.Auth.ChangePassword)

	users := authed.Group("/users")
	users.Use(middleware.RequireRole("administrator"))
	{
		users.POST("", h.User.Create)
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.POST("/:id/reset-password", h.User.ResetPassword)
		users.DELETE("/:id", h.User.Delete)
	}

	inventory := authed.Group("/inventory")
	{
		materials := inventory.Group("/materials")
		materials.POST("", h.Material.Create)
		materials.GET("", h.Material.List)
		materials.GET("/low-stock", h.Material.ListLowStock)
		materials.GET("/code/:code", h.Material.GetByCode)
		materials.GET("/:id", h.Material.Get)
		materials.PUT("/:id", h.Material.Update)
		materials.POST("/:id/recompute-stock", h.Material.RecomputeStock)
		materials.GET("/:id/movements", h.Movement.ListByMaterial)
		materials.DELETE("/:id", h.Material.Delete)

		movements := inventory.Group("/movements")
		movements.POST("", h.Movement.Record)
		movements.GET("", h.Movement.List)
		movements.GET("/:id", h.Movement.Get)

		opnames := inventory.Group("/opnames")
		opnames.POST("", h.Opname.Create)
		opnames.GET("", h.Opname.List)
		opnames.GET("/number/:number", h.Opname.GetByNumber)
		opnames.GET("/:id", h.Opname.Get)
		opnames.PUT("/:id", h.Opname.Update)
		opnames.POST("/:id/items", h.Opname.AddItem)
		opnames.PUT("/:id/items/:item_id/count", h.Opname.CountItem)
		opnames.POST("/:id/start", h.Opname.Start)
		opnames.POST("/:id/complete", h.Opname.Complete)
		opnames.POST("/:id/cancel", h.Opname.Cancel)
		opnames.DELETE("/:id", h.Opname.Delete)
	}

	customers := authed.Group("/customers")
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	products := authed.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/code/:code", h.Product.GetByCode)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	orders := authed.Group("/orders")
	{
		orders.POST("", h.Order.Create)
		orders.GET("", h.Order.List)
		orders.GET("/number/:number", h.Order.GetByNumber)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.POST("/:id/items", h.Order.AddItem)
		orders.PUT("/:id/items/:item_id", h.Order.UpdateItem)
		orders.DELETE("/:id/items/:item_id", h.Order.RemoveItem)
		orders.POST("/:id/start", h.Order.Start)
		orders.POST("/:id/complete", h.Order.Complete)
		orders.POST("/:id/deliver", h.Order.Deliver)
		orders.POST("/:id/cancel", h.Order.Cancel)
		orders.DELETE("/:id", h.Order.Delete)
	}

	finance := authed.Group("/finance")
	{
		categories := finance.Group("/categories")
		categories.POST("", h.Category.Create)
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)

		transactions := finance.Group("/transactions")
		transactions.POST("", h.Transaction.Create)
		transactions.GET("", h.Transaction.List)
		transactions.GET("/number/:number", h.Transaction.GetByNumber)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.PUT("/:id", h.Transaction.Update)
		transactions.DELETE("/:id", h.Transaction.Delete)

		finance.GET("/summary", h.Transaction.Summary)
	}

	hr := authed.Group("/hr")
	{
		departments := hr.Group("/departments")
		departments.POST("", h.Department.Create)
		departments.GET("", h.Department.List)
		departments.GET("/:id", h.Department.Get)
		departments.PUT("/:id", h.Department.Update)
		departments.DELETE("/:id", h.Department.Delete)

		employees := hr.Group("/employees")
		employees.POST("", h.Employee.Create)
		employees.GET("", h.Employee.List)
		employees.GET("/number/:number", h.Employee.GetByNumber)
		employees.GET("/:id", h.Employee.Get)
		employees.PUT("/:id", h.Employee.Update)
		employees.POST("/:id/terminate", h.Employee.Terminate)
		employees.DELETE("/:id", h.Employee.Delete)
	}

	return engine
}
