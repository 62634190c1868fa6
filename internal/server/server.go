package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/booking"
	"shareit/internal/config"
	"shareit/internal/identity"
	"shareit/internal/item"
	"shareit/internal/request"
	"shareit/internal/user"
)

// Handlers groups the per-domain HTTP handlers wired into the router.
type Handlers struct {
	Users    *user.Handler
	Items    *item.Handler
	Requests *request.Handler
	Bookings *booking.Handler
}

type Server struct {
	router *gin.Engine
	http   *http.Server
}

func New(cfg *config.Config, h Handlers) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORS())
	router.Use(RequestLogging())
	router.Use(Metrics())
	router.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	router.GET("/health", Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := router.Group("/users")
	{
		users.POST("", h.Users.Create)
		users.GET("", h.Users.List)
		users.GET("/:userId", h.Users.Get)
		users.PATCH("/:userId", h.Users.Update)
		users.DELETE("/:userId", h.Users.Delete)
	}

	items := router.Group("/items", identity.Middleware())
	{
		items.POST("", h.Items.Add)
		items.GET("", h.Items.List)
		items.GET("/search", h.Items.Search)
		items.GET("/:itemId", h.Items.Get)
		items.PATCH("/:itemId", h.Items.Update)
		items.DELETE("/:itemId", h.Items.Delete)
		items.POST("/:itemId/comment", h.Items.AddComment)
	}

	bookings := router.Group("/bookings", identity.Middleware())
	{
		bookings.POST("", h.Bookings.Create)
		bookings.GET("", h.Bookings.ListForBooker)
		bookings.GET("/owner", h.Bookings.ListForOwner)
		bookings.GET("/:bookingId", h.Bookings.Get)
		bookings.PATCH("/:bookingId", h.Bookings.Decide)
	}

	requests := router.Group("/requests", identity.Middleware())
	{
		requests.POST("", h.Requests.Add)
		requests.GET("", h.Requests.ListOwn)
		requests.GET("/all", h.Requests.ListOthers)
		requests.GET("/:requestId", h.Requests.Get)
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
