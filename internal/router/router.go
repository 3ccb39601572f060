package router

import (
	"html/template"
	"time"

	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/config"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/handler"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/middleware"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/repository"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/internal/service"
	"github.com/Mr-HECKER147/Grocery-Store-Management-System/web"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(productRepo, orderRepo)
	orderSvc := service.NewOrderService(orderRepo, productRepo, cfg.DefaultPerPage)
	statsSvc := service.NewStatsService(orderRepo, productRepo, rdb,
		cfg.LowStockThreshold, time.Duration(cfg.StatsCacheTTL)*time.Second)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	statsH := handler.NewStatsHandler(statsSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	r.GET("/", handler.Dashboard)
	r.GET("/manage-products", handler.ManageProducts)

	api := r.Group("/api")
	{
		api.GET("/manage-products", productsH.List)
		api.POST("/manage-products", productsH.Add)
		api.PUT("/manage-products/:id", productsH.Update)
		api.DELETE("/manage-products/:id", productsH.Delete)

		api.GET("/orders", ordersH.List)
		api.POST("/orders", ordersH.Create)

		api.GET("/stats", statsH.Dashboard)
	}

	return r
}
