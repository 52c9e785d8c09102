package api

import (
	"github.com/alligatorO15/expense-manager/internal/api/handlers"
	"github.com/alligatorO15/expense-manager/internal/api/middleware"
	"github.com/alligatorO15/expense-manager/internal/config"
	"github.com/alligatorO15/expense-manager/internal/service"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	services *service.Services
}

func NewServer(cfg *config.Config, services *service.Services) *Server {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	server := &Server{
		router:   router,
		config:   cfg,
		services: services,
	}

	server.setupRoutes()

	return server
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	//middleware
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogger())

	// health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api/v1")

	// подготавливаем хэндлеры
	incomeHandler := handlers.NewIncomeHandler(s.services.Income)
	transactionHandler := handlers.NewTransactionHandler(s.services.Transaction)
	exportHandler := handlers.NewExportHandler(s.services.Export)
	analyticsHandler := handlers.NewAnalyticsHandler(s.services.Analytics)

	// income
	api.POST("/income", incomeHandler.Set)

	// expenses
	expenses := api.Group("/expenses")
	{
		expenses.POST("", transactionHandler.Create)
		expenses.GET("", transactionHandler.List)
		expenses.GET("/export", exportHandler.Monthly)
	}

	// stats
	api.GET("/stats", analyticsHandler.GetStats)

	// analytics
	analytics := api.Group("/analytics")
	{
		analytics.GET("", analyticsHandler.GetBreakdown)
		analytics.GET("/timeseries", analyticsHandler.GetTimeSeries)
	}
}
