package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbdigital/ytselleradda/internal/config"
	"github.com/kbdigital/ytselleradda/internal/handler"
	"github.com/kbdigital/ytselleradda/internal/model"
	"github.com/kbdigital/ytselleradda/internal/repository"
	"github.com/kbdigital/ytselleradda/internal/service"
)

const indexHTML = "<!doctype html><div id=root></div>"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dist := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte(indexHTML), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dist, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dist, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	repo, err := repository.NewListingRepo(repository.SeedListings())
	require.NoError(t, err)

	listingSvc := service.NewListingService(repo, nil)
	site := config.DefaultSite
	store := service.NewMemorySessionStore(service.SessionCacheTTL)
	t.Cleanup(store.Stop)
	sessionSvc := service.NewSessionService(store, listingSvc, service.CarouselConfig{
		Banners:        len(site.Banners),
		Reviews:        len(site.Reviews),
		BannerInterval: service.DefaultBannerInterval,
	})
	links := service.ChatLinks{WhatsAppNumber: "918958890396", Email: "team@example.com"}
	inquirySvc := service.NewInquiryService(listingSvc, site.Courses, links, nil, nil)

	limiters := NewLimiters()
	t.Cleanup(limiters.Stop)

	app := fiber.New()
	Setup(app, &Handlers{
		Health:  handler.NewHealthHandler(nil, nil, repo.Len()),
		Listing: handler.NewListingHandler(listingSvc),
		Session: handler.NewSessionHandler(sessionSvc),
		Inquiry: handler.NewInquiryHandler(inquirySvc),
		Banners: handler.NewCarouselHandler(sessionSvc, service.CarouselBanners, site.Banners),
		Reviews: handler.NewCarouselHandler(sessionSvc, service.CarouselReviews, site.Reviews),
		Site:    handler.NewSiteHandler(site, links),
		Static:  handler.NewStaticHandler(dist),
	}, limiters, "*")
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			r = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			r = bytes.NewReader(b)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "healthy", body["status"])
}

func TestListings_Filter(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/listings?niche=Gaming", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[model.ListingsResponse](t, resp)
	assert.Equal(t, 1, got.Matched)
	assert.Equal(t, 6, got.Total)
	assert.Equal(t, "ProGamer Arena", got.Listings[0].Name)

	resp = do(t, app, http.MethodGet, "/api/listings?monetized=No&maxPrice=50000", nil)
	got = decode[model.ListingsResponse](t, resp)
	require.Len(t, got.Listings, 1)
	assert.Equal(t, "YT-004", got.Listings[0].ListingID)

	resp = do(t, app, http.MethodGet, "/api/listings?minSubs=10000000", nil)
	got = decode[model.ListingsResponse](t, resp)
	assert.NotNil(t, got.Listings)
	assert.Empty(t, got.Listings)
}

func TestListings_InvalidQuery(t *testing.T) {
	app := newTestApp(t)

	for _, q := range []string{"minSubs=-1", "maxPrice=abc", "niche=Cooking", "monetized=maybe"} {
		resp := do(t, app, http.MethodGet, "/api/listings?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
		env := decode[errorEnvelope](t, resp)
		assert.Equal(t, "INVALID_FIELD", env.Error.Code, q)
	}
}

func TestListings_FeaturedAndByID(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/listings/featured", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	featured := decode[struct {
		Listings []model.ChannelListing `json:"listings"`
	}](t, resp)
	assert.Len(t, featured.Listings, 3)

	resp = do(t, app, http.MethodGet, "/api/listings/5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	l := decode[model.ChannelListing](t, resp)
	assert.Equal(t, model.StatusSold, l.Status)

	resp = do(t, app, http.MethodGet, "/api/listings/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNiches(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/niches", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	opts := decode[model.FilterOptionsResponse](t, resp)
	assert.Equal(t, model.Niches, opts.Niches)
	assert.Equal(t, model.DefaultFilterCriteria(), opts.Defaults)
}

func TestSessionFlow(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sess := decode[model.SessionResponse](t, resp)
	require.NotEmpty(t, sess.SessionID)
	assert.Equal(t, model.ViewHome, sess.ActiveView)
	base := "/api/sessions/" + sess.SessionID

	resp = do(t, app, http.MethodPost, base+"/navigate", map[string]string{"view": "marketplace"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_VIEW", decode[errorEnvelope](t, resp).Error.Code)

	resp = do(t, app, http.MethodPost, base+"/detail", map[string]string{"listingId": "2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sess = decode[model.SessionResponse](t, resp)
	assert.True(t, sess.DetailOpen)
	assert.Equal(t, []model.Effect{model.EffectLockScroll}, sess.Effects)

	resp = do(t, app, http.MethodPost, base+"/navigate", map[string]string{"view": "browse"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sess = decode[model.SessionResponse](t, resp)
	assert.Equal(t, model.ViewBrowse, sess.ActiveView)
	assert.False(t, sess.DetailOpen)
	assert.Equal(t, []model.Effect{model.EffectUnlockScroll, model.EffectScrollToTop}, sess.Effects)

	resp = do(t, app, http.MethodPut, base+"/filters", map[string]any{"niche": "Finance", "minSubs": 0, "maxPrice": 1000000, "monetized": "All"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sess = decode[model.SessionResponse](t, resp)
	require.Len(t, sess.Listings, 1)
	assert.Equal(t, "MoneyWise", sess.Listings[0].Name)

	resp = do(t, app, http.MethodDelete, base+"/filters", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sess = decode[model.SessionResponse](t, resp)
	assert.Len(t, sess.Listings, 6)

	resp = do(t, app, http.MethodPost, base+"/detail", map[string]string{"listingId": "404"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, base+"/detail", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sess = decode[model.SessionResponse](t, resp)
	assert.Empty(t, sess.Effects)

	resp = do(t, app, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSession_UnknownAndMalformed(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/sessions/6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInquiries(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/inquiries/buy", map[string]string{"listingId": "3", "message": "Price negotiable?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	buy := decode[model.InquiryResponse](t, resp)
	assert.Equal(t, "Hi, I'm interested in buying Tech Hub (ID: YT-003). Price negotiable?", buy.Message)
	assert.True(t, strings.HasPrefix(buy.ChatURL, "https://wa.me/918958890396?text="))

	resp = do(t, app, http.MethodPost, "/api/inquiries/buy", map[string]string{"listingId": "77"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/inquiries/buy", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[errorEnvelope](t, resp).Error.Code)

	resp = do(t, app, http.MethodPost, "/api/inquiries/sell", model.SellSubmission{Name: "Cook Corner", Niche: "Other"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sell := decode[model.InquiryResponse](t, resp)
	assert.True(t, strings.HasPrefix(sell.Message, "*New Channel Listing Request*\n"))
	assert.Contains(t, sell.Message, "*Channel Name:* Cook Corner")
}

func TestInquiries_RateLimited(t *testing.T) {
	app := newTestApp(t)

	for range 5 {
		resp := do(t, app, http.MethodPost, "/api/inquiries/sell", model.SellSubmission{})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := do(t, app, http.MethodPost, "/api/inquiries/sell", model.SellSubmission{})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func newSession(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return "/api/sessions/" + decode[model.SessionResponse](t, resp).SessionID
}

func TestCarousels(t *testing.T) {
	app := newTestApp(t)
	a := newSession(t, app)
	b := newSession(t, app)

	resp := do(t, app, http.MethodGet, a+"/banners", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	banners := decode[model.CarouselResponse](t, resp)
	assert.Equal(t, 4, banners.Count)
	assert.Equal(t, int64(5000), banners.IntervalMs)
	assert.True(t, banners.Running)
	assert.NotNil(t, banners.Items)

	resp = do(t, app, http.MethodPost, a+"/reviews/prev", nil)
	reviews := decode[model.CarouselResponse](t, resp)
	assert.Equal(t, 3, reviews.CurrentIndex)
	assert.False(t, reviews.Running)

	resp = do(t, app, http.MethodPost, a+"/banners/jump", model.JumpRequest{Index: 2})
	banners = decode[model.CarouselResponse](t, resp)
	assert.Equal(t, 2, banners.CurrentIndex)

	// Another visitor's carousels are untouched.
	resp = do(t, app, http.MethodGet, b+"/reviews", nil)
	assert.Equal(t, 0, decode[model.CarouselResponse](t, resp).CurrentIndex)
	resp = do(t, app, http.MethodGet, b+"/banners", nil)
	assert.Equal(t, 0, decode[model.CarouselResponse](t, resp).CurrentIndex)

	resp = do(t, app, http.MethodPost, a+"/reviews/next", nil)
	assert.Equal(t, 0, decode[model.CarouselResponse](t, resp).CurrentIndex)

	resp = do(t, app, http.MethodPost, a+"/reviews/jump", model.JumpRequest{Index: 9})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Leaving home stops the banner timer.
	resp = do(t, app, http.MethodPost, a+"/navigate", map[string]string{"view": "sell"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(t, app, http.MethodGet, a+"/banners", nil)
	assert.False(t, decode[model.CarouselResponse](t, resp).Running)

	resp = do(t, app, http.MethodGet, "/api/sessions/6ba7b810-9dad-11d1-80b4-00c04fd430c8/reviews", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCarousels_RateLimitedPerSession(t *testing.T) {
	app := newTestApp(t)
	a := newSession(t, app)
	b := newSession(t, app)

	for range 60 {
		resp := do(t, app, http.MethodPost, a+"/reviews/next", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := do(t, app, http.MethodPost, a+"/reviews/next", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	resp = do(t, app, http.MethodPost, b+"/reviews/next", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCourses(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/courses", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[struct {
		Courses []model.Course `json:"courses"`
		Count   int            `json:"count"`
	}](t, resp)
	require.Equal(t, 3, body.Count)
	assert.Equal(t, "Premium Type", body.Courses[2].Tier)

	resp = do(t, app, http.MethodPost, "/api/inquiries/course", model.CourseInquiryRequest{CourseID: "basic"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	inq := decode[model.InquiryResponse](t, resp)
	assert.Equal(t, "Hi, I'm interested in the Basic YouTube Course (Basic).", inq.Message)
	assert.Equal(t, "https://wa.me/918958890396?text=Hi%2C%20I'm%20interested%20in%20the%20Basic%20YouTube%20Course%20(Basic).", inq.ChatURL)

	resp = do(t, app, http.MethodPost, "/api/inquiries/course", model.CourseInquiryRequest{CourseID: "gold"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/inquiries/course", model.CourseInquiryRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSite(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/site", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[struct {
		Site  model.Site `json:"site"`
		Stats []struct {
			Label          string `json:"label"`
			StepIntervalMs int64  `json:"stepIntervalMs"`
			Display        int    `json:"display"`
		} `json:"stats"`
	}](t, resp)
	assert.Equal(t, "YT Seller Adda", body.Site.Name)
	assert.Equal(t, "team@example.com", body.Site.Contact.Email)
	assert.Equal(t, "mailto:team@example.com?subject=Inquiry%20from%20YT%20Seller%20Adda", body.Site.Links.Mailto)
	assert.Equal(t, "https://wa.me/918958890396?text=", body.Site.Links.WhatsAppChat)
	assert.Len(t, body.Site.Courses, 3)
	assert.Contains(t, body.Site.Copyright, "YT Seller Adda")
	require.Len(t, body.Stats, 3)
	assert.Equal(t, int64(1000), body.Stats[0].StepIntervalMs)
	assert.Equal(t, 700, body.Stats[1].Display)

	// Deals Done counts to 700 over 1.5s.
	resp = do(t, app, http.MethodGet, "/api/site?elapsedMs=750", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode[struct {
		Site  model.Site `json:"site"`
		Stats []struct {
			Label          string `json:"label"`
			StepIntervalMs int64  `json:"stepIntervalMs"`
			Display        int    `json:"display"`
		} `json:"stats"`
	}](t, resp)
	assert.Equal(t, 350, body.Stats[1].Display)

	resp = do(t, app, http.MethodGet, "/api/site?elapsedMs=-5", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStaticAndSPAFallback(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodGet, "/assets/app.js", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "console.log(1)", string(b))

	for _, p := range []string{"/", "/browse", "/sell/anything", "/../../etc/passwd"} {
		resp = do(t, app, http.MethodGet, p, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, p)
		b, _ = io.ReadAll(resp.Body)
		assert.Equal(t, indexHTML, string(b), p)
	}

	resp = do(t, app, http.MethodGet, "/api/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
