package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/polkiloo/wasul/internal/metrics"
	"github.com/polkiloo/wasul/internal/server/http/handlers"
	"github.com/polkiloo/wasul/internal/server/http/middleware"
	"github.com/polkiloo/wasul/internal/server/http/views"
)

// Params lists router dependencies resolved by fx.
type Params struct {
	fx.In

	Facade  handlers.RegistryFacade
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

func newRouter(p Params) *gin.Engine {
	return Setup(p.Facade, p.Metrics, p.Logger)
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.RegistryFacade, m *metrics.Metrics, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(cors.New(corsConfig()))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.SetHTMLTemplate(views.Templates())

	addressHandler := handlers.NewAddressHandler(facade)
	deliveryHandler := handlers.NewDeliveryHandler(facade)
	partnerHandler := handlers.NewPartnerHandler(facade)
	invoiceHandler := handlers.NewInvoiceHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade, facade)
	pageHandler := handlers.NewPageHandler(facade)

	engine.GET("/", pageHandler.Overview)
	engine.GET("/stats", statsHandler.Stats)
	engine.GET("/health", statsHandler.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	api.POST("/register-address", addressHandler.Register)
	api.GET("/lookup", addressHandler.Lookup)
	api.POST("/verify-delivery", deliveryHandler.Verify)
	api.POST("/request-key", partnerHandler.RequestKey)

	admin := engine.Group("")
	admin.Use(middleware.AdminRequired(facade))
	admin.GET("/admin", pageHandler.Dashboard)
	admin.GET("/admin/invoices", pageHandler.Invoices)
	admin.GET("/api/generate-invoice/:partner_id", invoiceHandler.Generate)
	admin.GET("/api/invoice-download/:number", invoiceHandler.Download)
	admin.POST("/api/invoice/:id/mark-paid", invoiceHandler.MarkPaid)
	admin.GET("/api/invoices", invoiceHandler.List)

	return engine
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader, "X-API-Key", "Authorization")
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader, "Content-Disposition"}
	return cfg
}
