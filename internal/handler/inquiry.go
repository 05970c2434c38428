package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/kbdigital/ytselleradda/internal/middleware"
	"github.com/kbdigital/ytselleradda/internal/model"
	"github.com/kbdigital/ytselleradda/internal/repository"
	"github.com/kbdigital/ytselleradda/internal/service"
)

type InquiryHandler struct {
	svc *service.InquiryService
}

func NewInquiryHandler(svc *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{svc: svc}
}

// Buy handles POST /api/inquiries/buy
func (h *InquiryHandler) Buy(c fiber.Ctx) error {
	var req model.BuyInquiryRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidBody, "Invalid request body")
	}

	listingID, errMsg := middleware.ValidateListingID(req.ListingID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}
	req.ListingID = listingID

	msg, errMsg := middleware.ValidateMessage(req.Message)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}
	req.Message = msg

	resp, err := h.svc.Buy(c.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Listing not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to compose inquiry")
	}
	return c.JSON(resp)
}

// Sell handles POST /api/inquiries/sell
func (h *InquiryHandler) Sell(c fiber.Ctx) error {
	var sub model.SellSubmission
	if err := c.Bind().JSON(&sub); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidBody, "Invalid request body")
	}
	if errMsg := middleware.ValidateSellSubmission(&sub); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}
	return c.JSON(h.svc.Sell(c.Context(), sub))
}

// Courses handles GET /api/courses
func (h *InquiryHandler) Courses(c fiber.Ctx) error {
	courses := h.svc.Courses()
	return c.JSON(fiber.Map{
		"courses": courses,
		"count":   len(courses),
	})
}

// Course handles POST /api/inquiries/course
func (h *InquiryHandler) Course(c fiber.Ctx) error {
	var req model.CourseInquiryRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidBody, "Invalid request body")
	}
	courseID, errMsg := middleware.ValidateCourseID(req.CourseID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, middleware.CodeInvalidField, errMsg)
	}
	req.CourseID = courseID

	resp, err := h.svc.Course(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, middleware.CodeInternal, "Failed to compose inquiry")
	}
	return c.JSON(resp)
}
