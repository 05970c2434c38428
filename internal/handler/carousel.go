package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/kbdigital/ytselleradda/internal/middleware"
	"github.com/kbdigital/ytselleradda/internal/model"
	"github.com/kbdigital/ytselleradda/internal/service"
)

// CarouselHandler exposes one kind of per-session carousel and the slides it rotates over.
type CarouselHandler struct {
	svc   *service.SessionService
	kind  service.CarouselKind
	items any
}

func NewCarouselHandler(svc *service.SessionService, kind service.CarouselKind, items any) *CarouselHandler {
	return &CarouselHandler{svc: svc, kind: kind, items: items}
}

// Get handles GET /api/sessions/:sessionId/banners and .../reviews
func (h *CarouselHandler) Get(c fiber.Ctx) error {
	return h.handle(c, h.svc.Carousel)
}

// Next handles POST .../next
func (h *CarouselHandler) Next(c fiber.Ctx) error {
	return h.handle(c, h.svc.CarouselNext)
}

// Prev handles POST .../prev
func (h *CarouselHandler) Prev(c fiber.Ctx) error {
	return h.handle(c, h.svc.CarouselPrev)
}

// Jump handles POST .../jump {index}
func (h *CarouselHandler) Jump(c fiber.Ctx) error {
	var req model.JumpRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidBody, "Invalid request body")
	}
	return h.handle(c, func(ctx context.Context, id string, kind service.CarouselKind) (*model.CarouselResponse, error) {
		return h.svc.CarouselJump(ctx, id, kind, req.Index)
	})
}

type carouselOp func(ctx context.Context, id string, kind service.CarouselKind) (*model.CarouselResponse, error)

func (h *CarouselHandler) handle(c fiber.Ctx, op carouselOp) error {
	id, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}

	resp, err := op(c.Context(), id, h.kind)
	switch {
	case err == nil:
		resp.Items = h.items
		return c.JSON(resp)
	case errors.Is(err, service.ErrSessionNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Session not found")
	case errors.Is(err, service.ErrInvalidIndex):
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, "index out of range")
	default:
		middleware.Logger.Error().Err(err).Str("carousel", string(h.kind)).Msg("carousel: move failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to move carousel")
	}
}
