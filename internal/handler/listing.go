package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/kbdigital/ytselleradda/internal/middleware"
	"github.com/kbdigital/ytselleradda/internal/model"
	"github.com/kbdigital/ytselleradda/internal/repository"
	"github.com/kbdigital/ytselleradda/internal/service"
)

type ListingHandler struct {
	svc *service.ListingService
}

func NewListingHandler(svc *service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

// List handles GET /api/listings?niche=&minSubs=&maxPrice=&monetized=
func (h *ListingHandler) List(c fiber.Ctx) error {
	crit, errMsg := middleware.ParseFilterCriteria(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}
	return c.JSON(h.svc.Query(c.Context(), crit))
}

// Featured handles GET /api/listings/featured
func (h *ListingHandler) Featured(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"listings": h.svc.Featured()})
}

// GetByID handles GET /api/listings/:id
func (h *ListingHandler) GetByID(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateListingID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}

	listing, err := h.svc.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Listing not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to load listing")
	}
	return c.JSON(listing)
}

// Niches handles GET /api/niches
func (h *ListingHandler) Niches(c fiber.Ctx) error {
	return c.JSON(model.FilterOptionsResponse{
		Niches:      model.Niches,
		Subscribers: model.SubscriberOptions,
		Prices:      model.PriceOptions,
		Monetized:   []model.MonetizedFilter{model.MonetizedAll, model.MonetizedYes, model.MonetizedNo},
		Defaults:    model.DefaultFilterCriteria(),
	})
}
