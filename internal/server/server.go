package server

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/telshop/backoffice/internal/auth"
	"github.com/telshop/backoffice/internal/auth/session"
	catalogdomain "github.com/telshop/backoffice/internal/catalog/domain"
	"github.com/telshop/backoffice/internal/config"
	ordersdomain "github.com/telshop/backoffice/internal/orders/domain"
	"github.com/telshop/backoffice/internal/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	log          *zap.Logger
	authsvc      *auth.Service
	sessions     *session.Manager
	catalogSvc   catalogdomain.Service
	ordersSvc    ordersdomain.Service
	loginLimiter *ratelimit.TokenBucket
}

type Params struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	Log        *zap.Logger
	Authsvc    *auth.Service
	Sessions   *session.Manager
	CatalogSvc catalogdomain.Service
	OrdersSvc  ordersdomain.Service
}

func NewServer(p Params) *Server {
	s := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		log:        p.Log.Named("server"),
		authsvc:    p.Authsvc,
		sessions:   p.Sessions,
		catalogSvc: p.CatalogSvc,
		ordersSvc:  p.OrdersSvc,
		// one login attempt every two seconds per address, small burst
		loginLimiter: ratelimit.New(0.5, 5),
	}

	s.registerAuthRoutes()
	s.registerAPIRoutes()
	s.registerPageRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(ErrorHandlingMiddleware())

	if matches, _ := filepath.Glob(cfg.TemplatesGlob); len(matches) > 0 {
		r.LoadHTMLGlob(cfg.TemplatesGlob)
		r.Static("/static", "web/static")
		r.Static("/images", "web/images")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	r.Use(newHTTPMetrics(reg).Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

func (s *Server) registerAuthRoutes() {
	s.engine.POST("/login", s.Login)
	s.engine.POST("/logout", s.Logout)
}

func (s *Server) registerAPIRoutes() {
	// storefront lookups stay open
	s.engine.GET("/api/brands", s.Brands)
	s.engine.GET("/api/products-by-brand", s.ProductsByBrand)

	api := s.engine.Group("/api", s.AuthRequired())

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.UpsertProduct)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)
	api.GET("/products/export", s.ExportProducts)
	api.GET("/products/export.csv", s.ExportProductsCSV)
	api.POST("/products/import", s.ImportProducts)
	api.POST("/products/import.csv", s.ImportProductsCSV)

	api.GET("/china-orders", s.ListOrders)
	api.POST("/china-orders", s.CreateOrder)
	api.GET("/china-orders/export.csv", s.ExportOrdersCSV)
	api.GET("/china-orders/totals", s.OrderTotals)
	api.GET("/china-orders/:id", s.GetOrder)
	api.PUT("/china-orders/:id", s.UpdateOrder)
	api.DELETE("/china-orders/:id", s.DeleteOrder)
	api.PUT("/china-orders/:id/status", s.SetOrderStatus)
}

func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http server starting", zap.String("addr", s.cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

// Module wires the HTTP surface.
var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(RunHTTP),
)
