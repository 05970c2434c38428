package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/kbdigital/ytselleradda/internal/middleware"
	"github.com/kbdigital/ytselleradda/internal/model"
	"github.com/kbdigital/ytselleradda/internal/repository"
	"github.com/kbdigital/ytselleradda/internal/service"
)

type SessionHandler struct {
	svc *service.SessionService
}

func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// Create handles POST /api/sessions
func (h *SessionHandler) Create(c fiber.Ctx) error {
	resp, err := h.svc.Create(c.Context())
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("session: create failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get handles GET /api/sessions/:sessionId
func (h *SessionHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}
	resp, err := h.svc.Get(c.Context(), id)
	return h.respond(c, resp, err)
}

// Navigate handles POST /api/sessions/:sessionId/navigate
func (h *SessionHandler) Navigate(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}

	var req model.NavigateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidBody, "Invalid request body")
	}
	view, err := model.ParseView(req.View)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidView, err.Error())
	}

	resp, err := h.svc.Navigate(c.Context(), id, view)
	return h.respond(c, resp, err)
}

// OpenDetail handles POST /api/sessions/:sessionId/detail
func (h *SessionHandler) OpenDetail(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}

	var req model.OpenDetailRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidBody, "Invalid request body")
	}
	listingID, errMsg := middleware.ValidateListingID(req.ListingID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}

	resp, err := h.svc.OpenDetail(c.Context(), id, listingID)
	return h.respond(c, resp, err)
}

// CloseDetail handles DELETE /api/sessions/:sessionId/detail
func (h *SessionHandler) CloseDetail(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}
	resp, err := h.svc.CloseDetail(c.Context(), id)
	return h.respond(c, resp, err)
}

// UpdateFilters handles PUT /api/sessions/:sessionId/filters
func (h *SessionHandler) UpdateFilters(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}

	crit := model.DefaultFilterCriteria()
	if err := c.Bind().JSON(&crit); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidBody, "Invalid request body")
	}
	if errMsg := middleware.ValidateFilterCriteria(&crit); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}

	resp, err := h.svc.UpdateFilters(c.Context(), id, crit)
	return h.respond(c, resp, err)
}

// ResetFilters handles DELETE /api/sessions/:sessionId/filters
func (h *SessionHandler) ResetFilters(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}
	resp, err := h.svc.ResetFilters(c.Context(), id)
	return h.respond(c, resp, err)
}

// End handles DELETE /api/sessions/:sessionId
func (h *SessionHandler) End(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateSessionID(c.Params("sessionId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}
	if err := h.svc.End(c.Context(), id); err != nil {
		return h.respond(c, nil, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SessionHandler) respond(c fiber.Ctx, resp *model.SessionResponse, err error) error {
	switch {
	case err == nil:
		return c.JSON(resp)
	case errors.Is(err, service.ErrSessionNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Session not found")
	case errors.Is(err, repository.ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Listing not found")
	default:
		middleware.Logger.Error().Err(err).Msg("session: transition failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to update session")
	}
}
