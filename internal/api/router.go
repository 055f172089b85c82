package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"fitclub-admin-backend/internal/analytics"
	"fitclub-admin-backend/internal/mw"
	"fitclub-admin-backend/internal/notification"
	"fitclub-admin-backend/internal/store"
)

// RouterOptions bundles the tunables NewRouter needs from config.
type RouterOptions struct {
	RateLimitPerSec float64
	RateLimitBurst  int
	CacheTTL        time.Duration
}

// NewRouter creates and configures a new Gin router.
func NewRouter(engine *analytics.Engine, s store.Store, pool *notification.WorkerPool, webpushOptions *webpush.Options, opts RouterOptions) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(engine, s, pool, webpushOptions)

	rateLimiter := mw.RateLimiter(rate.Limit(opts.RateLimitPerSec), opts.RateLimitBurst)

	cacheStore := cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	caching := mw.Cache(cacheStore, opts.CacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Reservation views. The list and session views take the filter
		// query parameters; summary and charts always cover the full set.
		api.GET("/reservations", handler.GetReservations)
		api.GET("/reservations/sessions", handler.GetSessions)
		api.GET("/reservations/summary", caching, handler.GetSummary)
		api.GET("/reservations/charts", caching, handler.GetCharts)
		api.GET("/reservations/export", handler.ExportReservations)
		api.POST("/reservations/:id/cancel", handler.CancelReservation)

		// Filter dropdown data.
		api.GET("/locations", caching, handler.GetLocations)
		api.GET("/instructors", caching, handler.GetInstructors)

		// Cancellation alert subscriptions.
		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
