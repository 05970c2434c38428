package middleware

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/kbdigital/ytselleradda/internal/model"
)

// Error codes used in the JSON error envelope.
const (
	CodeInvalidField = "INVALID_FIELD"
	CodeInvalidBody  = "INVALID_BODY"
	CodeInvalidView  = "INVALID_VIEW"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

// Field length limits for request input.
const (
	MaxListingIDLen = 64
	MaxMessageLen   = 1000
	MaxSellFieldLen = 200
	MaxDescLen      = 2000
)

// listingIDRe matches catalog ids: alphanumeric, dash, underscore.
var listingIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateListingID checks that a listing id is well-formed.
func ValidateListingID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "listingId is required"
	}
	if len(id) > MaxListingIDLen {
		return "", "listingId must be at most 64 characters"
	}
	if !listingIDRe.MatchString(id) {
		return "", "listingId contains invalid characters"
	}
	return id, ""
}

// ValidateCourseID checks that a course id is well-formed.
func ValidateCourseID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "courseId is required"
	}
	if len(id) > MaxListingIDLen || !listingIDRe.MatchString(id) {
		return "", "courseId is invalid"
	}
	return id, ""
}

// ValidateSessionID checks that a session id is a UUID and returns its canonical form.
func ValidateSessionID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "sessionId is required"
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return "", "sessionId must be a UUID"
	}
	return u.String(), ""
}

// ParseNiche accepts a niche name or "All". Empty means "All".
func ParseNiche(raw string) (model.Niche, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == string(model.NicheAll) {
		return model.NicheAll, ""
	}
	n := model.Niche(raw)
	if !n.Valid() {
		return "", fmt.Sprintf("unknown niche %q", raw)
	}
	return n, ""
}

// ParseMonetized accepts All, Yes or No. Empty means All.
func ParseMonetized(raw string) (model.MonetizedFilter, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.MonetizedAll, ""
	}
	m := model.MonetizedFilter(raw)
	if !m.Valid() {
		return "", "monetized must be All, Yes or No"
	}
	return m, ""
}

// ParseNonNegative parses an integer query value, using def when raw is empty.
func ParseNonNegative(name, raw string, def int64) (int64, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, ""
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, name + " must be an integer"
	}
	if v < 0 {
		return 0, name + " must not be negative"
	}
	return v, ""
}

// ParseFilterCriteria reads niche, minSubs, maxPrice and monetized from the
// query string. Missing parameters take their defaults.
func ParseFilterCriteria(c fiber.Ctx) (model.FilterCriteria, string) {
	crit := model.DefaultFilterCriteria()
	var msg string

	if crit.Niche, msg = ParseNiche(c.Query("niche")); msg != "" {
		return crit, msg
	}
	if crit.MinSubs, msg = ParseNonNegative("minSubs", c.Query("minSubs"), 0); msg != "" {
		return crit, msg
	}
	if crit.MaxPrice, msg = ParseNonNegative("maxPrice", c.Query("maxPrice"), model.DefaultMaxPrice); msg != "" {
		return crit, msg
	}
	if crit.Monetized, msg = ParseMonetized(c.Query("monetized")); msg != "" {
		return crit, msg
	}
	return crit, ""
}

// ValidateFilterCriteria checks criteria decoded from a request body.
// Empty enum values are filled with their defaults.
func ValidateFilterCriteria(crit *model.FilterCriteria) string {
	var msg string
	if crit.Niche, msg = ParseNiche(string(crit.Niche)); msg != "" {
		return msg
	}
	if crit.Monetized, msg = ParseMonetized(string(crit.Monetized)); msg != "" {
		return msg
	}
	if crit.MinSubs < 0 {
		return "minSubs must not be negative"
	}
	if crit.MaxPrice < 0 {
		return "maxPrice must not be negative"
	}
	return ""
}

// ValidateMessage trims a free-text inquiry message and checks its length.
func ValidateMessage(msg string) (string, string) {
	msg = strings.TrimSpace(msg)
	if len(msg) > MaxMessageLen {
		return "", "message must be at most 1000 characters"
	}
	return msg, ""
}

// ValidateSellSubmission trims every field and enforces length limits.
// Empty fields are allowed and formatted as entered.
func ValidateSellSubmission(s *model.SellSubmission) string {
	fields := []struct {
		name string
		val  *string
	}{
		{"name", &s.Name},
		{"channelLink", &s.ChannelLink},
		{"niche", &s.Niche},
		{"subscribers", &s.Subscribers},
		{"watchHours", &s.WatchHours},
		{"monetized", &s.Monetized},
		{"monthlyRevenue", &s.MonthlyRevenue},
		{"askingPrice", &s.AskingPrice},
		{"phone", &s.Phone},
	}
	for _, f := range fields {
		*f.val = strings.TrimSpace(*f.val)
		if len(*f.val) > MaxSellFieldLen {
			return fmt.Sprintf("%s must be at most %d characters", f.name, MaxSellFieldLen)
		}
	}
	s.Description = strings.TrimSpace(s.Description)
	if len(s.Description) > MaxDescLen {
		return fmt.Sprintf("description must be at most %d characters", MaxDescLen)
	}
	return ""
}
