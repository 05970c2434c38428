package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/kbdigital/ytselleradda/internal/config"
	"github.com/kbdigital/ytselleradda/internal/middleware"
	"github.com/kbdigital/ytselleradda/internal/model"
	"github.com/kbdigital/ytselleradda/internal/service"
)

type SiteHandler struct {
	site model.Site
	now  func() time.Time
}

// NewSiteHandler serves site with the configured contact details.
func NewSiteHandler(site model.Site, links service.ChatLinks) *SiteHandler {
	if links.WhatsAppNumber != "" {
		site.Contact.WhatsApp = links.WhatsAppNumber
	}
	if links.Email != "" {
		site.Contact.Email = links.Email
	}
	links.WhatsAppNumber = site.Contact.WhatsApp
	links.Email = site.Contact.Email
	site.Links = links.External()
	return &SiteHandler{site: site, now: time.Now}
}

type statView struct {
	model.Stat
	StepIntervalMs int64 `json:"stepIntervalMs"`
	Display        int   `json:"display"`
}

// Get handles GET /api/site?elapsedMs=
// elapsedMs renders each stat counter as it reads that long into its
// animation; without it counters show their final value.
func (h *SiteHandler) Get(c fiber.Ctx) error {
	elapsed := int64(-1)
	if raw := c.Query("elapsedMs"); raw != "" {
		ms, errMsg := middleware.ParseNonNegative("elapsedMs", raw, 0)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
		}
		elapsed = ms
	}

	site := h.site
	site.Copyright = config.Copyright(h.now().Year())

	stats := make([]statView, 0, len(site.Stats))
	for _, s := range site.Stats {
		counter := service.Counter{
			Target:   s.Value,
			Duration: time.Duration(s.Duration * float64(time.Second)),
		}
		display := s.Value
		if elapsed >= 0 {
			display = counter.Value(time.Duration(elapsed) * time.Millisecond)
		}
		stats = append(stats, statView{
			Stat:           s,
			StepIntervalMs: counter.StepInterval().Milliseconds(),
			Display:        display,
		})
	}

	return c.JSON(fiber.Map{
		"site":  site,
		"stats": stats,
	})
}
