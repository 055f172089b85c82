package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"fitclub-admin-backend/internal/analytics"
	"fitclub-admin-backend/internal/notification"
	"fitclub-admin-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	engine  *analytics.Engine
	store   store.Store
	pool    *notification.WorkerPool
	webpush *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(engine *analytics.Engine, s store.Store, pool *notification.WorkerPool, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		engine:  engine,
		store:   s,
		pool:    pool,
		webpush: webpushOptions,
	}
}
