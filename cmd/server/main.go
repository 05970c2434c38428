package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kbdigital/ytselleradda/internal/config"
	"github.com/kbdigital/ytselleradda/internal/db"
	"github.com/kbdigital/ytselleradda/internal/handler"
	"github.com/kbdigital/ytselleradda/internal/metrics"
	"github.com/kbdigital/ytselleradda/internal/middleware"
	"github.com/kbdigital/ytselleradda/internal/repository"
	"github.com/kbdigital/ytselleradda/internal/router"
	"github.com/kbdigital/ytselleradda/internal/service"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "ytadda-api")
	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		p, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			middleware.Logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer p.Close()
		pool = p
		metrics.RegisterPool(pool)
	}

	var q repository.Querier
	if pool != nil {
		q = pool
	}
	listings, source, err := repository.LoadCatalog(ctx, q, cfg.CatalogPath)
	if err != nil {
		middleware.Logger.Fatal().Err(err).Msg("failed to load catalog")
	}
	repo, err := repository.NewListingRepo(listings)
	if err != nil {
		middleware.Logger.Fatal().Err(err).Msg("invalid catalog")
	}
	middleware.Logger.Info().Str("source", source).Int("listings", repo.Len()).Msg("catalog loaded")

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	leads := leadNotifier(ctx, cfg)
	links := service.ChatLinks{WhatsAppNumber: cfg.WhatsAppNumber, Email: cfg.ContactEmail}

	site := config.DefaultSite
	sessions := service.NewSessionStore(cache)
	if m, ok := sessions.(*service.MemorySessionStore); ok {
		defer m.Stop()
	}

	listingSvc := service.NewListingService(repo, cache)
	sessionSvc := service.NewSessionService(sessions, listingSvc, service.CarouselConfig{
		Banners:        len(site.Banners),
		Reviews:        len(site.Reviews),
		BannerInterval: cfg.BannerInterval,
	})
	inquirySvc := service.NewInquiryService(listingSvc, site.Courses, links, service.LoggingLinkOpener{}, leads)

	limiters := router.NewLimiters()
	defer limiters.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "YT Seller Adda",
		ServerHeader: "YT Seller Adda",
	})

	router.Setup(app, &router.Handlers{
		Health:  handler.NewHealthHandler(pool, cache.Client(), repo.Len()),
		Listing: handler.NewListingHandler(listingSvc),
		Session: handler.NewSessionHandler(sessionSvc),
		Inquiry: handler.NewInquiryHandler(inquirySvc),
		Banners: handler.NewCarouselHandler(sessionSvc, service.CarouselBanners, site.Banners),
		Reviews: handler.NewCarouselHandler(sessionSvc, service.CarouselReviews, site.Reviews),
		Site:    handler.NewSiteHandler(site, links),
		Static:  handler.NewStaticHandler(cfg.DistDir),
	}, limiters, cfg.CORSOrigins)

	go func() {
		<-ctx.Done()
		middleware.Logger.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			middleware.Logger.Error().Err(err).Msg("shutdown error")
		}
	}()

	middleware.Logger.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("YT Seller Adda server starting")
	if err := app.Listen(":"+cfg.Port, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
		middleware.Logger.Error().Err(err).Msg("server stopped")
	}
}

func leadNotifier(ctx context.Context, cfg *config.Config) service.LeadNotifier {
	if !cfg.LeadMailEnabled() {
		return service.NoopLeadNotifier{}
	}
	n, err := service.NewSESLeadNotifier(ctx, cfg.SESRegion, cfg.SESSender, cfg.LeadEmail)
	if err != nil {
		middleware.Logger.Warn().Err(err).Msg("lead e-mail disabled")
		return service.NoopLeadNotifier{}
	}
	return n
}
