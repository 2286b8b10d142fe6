package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/managerproapp-hue/IES-sub001/internal/config"
	"github.com/managerproapp-hue/IES-sub001/internal/handler"
	"github.com/managerproapp-hue/IES-sub001/internal/middleware"
	"github.com/managerproapp-hue/IES-sub001/internal/repository"
	"github.com/managerproapp-hue/IES-sub001/internal/service"
	"github.com/managerproapp-hue/IES-sub001/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	snapshotRepo := repository.NewSnapshotRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	informeSvc := service.NewInformeService(snapshotRepo, rdb, dispatcher, cfg.CacheTTL())

	// ── Handlers ─────────────────────────────────────────────────────────────
	informesH := handler.NewInformesHandler(informeSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		informes := v1.Group("/informes")
		{
			informes.GET("/gastos", informesH.ObtenerInformeGastos)
			informes.POST("/gastos/recalcular", informesH.RecalcularInforme)
			informes.POST("/gastos/simulacion", informesH.SimularInforme)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
