package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/api"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, tourHandler *api.TourHandler, bookingHandler *api.BookingHandler, paymentHandler *api.PaymentHandler, userHandler *api.UserHandler) error {
	router := NewRouter(cfg, tourHandler, bookingHandler, paymentHandler, userHandler)

	srv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func NewRouter(cfg *config.Config, tourHandler *api.TourHandler, bookingHandler *api.BookingHandler, paymentHandler *api.PaymentHandler, userHandler *api.UserHandler) *gin.Engine {
	router := gin.Default()

	origins := cfg.HTTP.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	tourHandler.Register(apiGroup)
	bookingHandler.Register(apiGroup)
	paymentHandler.Register(apiGroup.Group("/payments"))
	userHandler.Register(apiGroup.Group("/users"))

	return router
}
