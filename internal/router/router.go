package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/kbdigital/ytselleradda/internal/handler"
	"github.com/kbdigital/ytselleradda/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Health  *handler.HealthHandler
	Listing *handler.ListingHandler
	Session *handler.SessionHandler
	Inquiry *handler.InquiryHandler
	Banners *handler.CarouselHandler
	Reviews *handler.CarouselHandler
	Site    *handler.SiteHandler
	Static  *handler.StaticHandler
}

// Limiters holds the per-route rate limiters so the caller can stop them on shutdown.
type Limiters struct {
	Listing       *middleware.RateLimiter
	SessionCreate *middleware.RateLimiter
	Session       *middleware.RateLimiter
	Inquiry       *middleware.RateLimiter
}

// NewLimiters builds the default limiter set.
func NewLimiters() *Limiters {
	return &Limiters{
		Listing:       middleware.NewListingRateLimiter(),
		SessionCreate: middleware.NewSessionCreateRateLimiter(),
		Session:       middleware.NewSessionRateLimiter(),
		Inquiry:       middleware.NewInquiryRateLimiter(),
	}
}

// Stop ends every limiter's cleanup goroutine.
func (l *Limiters) Stop() {
	l.Listing.Stop()
	l.SessionCreate.Stop()
	l.Session.Stop()
	l.Inquiry.Stop()
}

// Setup configures the middleware stack and all routes on the given Fiber app.
// The static fallback is registered last so it only sees unmatched GETs.
func Setup(app *fiber.App, h *Handlers, rl *Limiters, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Health and metrics (outside /api, no rate limit)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")

	// Listing routes
	listings := api.Group("/listings", rl.Listing.Handler())
	listings.Get("/", h.Listing.List)
	listings.Get("/featured", h.Listing.Featured)
	listings.Get("/:id", h.Listing.GetByID)
	api.Get("/niches", h.Listing.Niches)

	// Session routes
	api.Post("/sessions", rl.SessionCreate.Handler(), h.Session.Create)
	sessions := api.Group("/sessions/:sessionId", rl.Session.Handler())
	sessions.Get("/", h.Session.Get)
	sessions.Delete("/", h.Session.End)
	sessions.Post("/navigate", h.Session.Navigate)
	sessions.Post("/detail", h.Session.OpenDetail)
	sessions.Delete("/detail", h.Session.CloseDetail)
	sessions.Put("/filters", h.Session.UpdateFilters)
	sessions.Delete("/filters", h.Session.ResetFilters)

	// Per-session carousels
	sessions.Get("/banners", h.Banners.Get)
	sessions.Post("/banners/next", h.Banners.Next)
	sessions.Post("/banners/prev", h.Banners.Prev)
	sessions.Post("/banners/jump", h.Banners.Jump)
	sessions.Get("/reviews", h.Reviews.Get)
	sessions.Post("/reviews/next", h.Reviews.Next)
	sessions.Post("/reviews/prev", h.Reviews.Prev)
	sessions.Post("/reviews/jump", h.Reviews.Jump)

	// Inquiry routes
	inquiries := api.Group("/inquiries", rl.Inquiry.Handler())
	inquiries.Post("/buy", h.Inquiry.Buy)
	inquiries.Post("/sell", h.Inquiry.Sell)
	inquiries.Post("/course", h.Inquiry.Course)

	// Site content
	api.Get("/site", h.Site.Get)
	api.Get("/courses", h.Inquiry.Courses)

	// Unknown API paths are real 404s, not the SPA.
	api.Use(func(c fiber.Ctx) error {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Route not found")
	})

	// Single-page app with index.html fallback
	app.Get("/*", h.Static.Serve)
}
