package service

import (
	"context"
	"errors"

	"github.com/kbdigital/ytselleradda/internal/metrics"
	"github.com/kbdigital/ytselleradda/internal/middleware"
	"github.com/kbdigital/ytselleradda/internal/model"
)

// LoggingLinkOpener records the hand-off instead of opening anything.
// On a server the visitor's browser follows the returned chat URL itself.
type LoggingLinkOpener struct{}

func (LoggingLinkOpener) OpenExternalLink(_ context.Context, uri string) error {
	middleware.Logger.Debug().Int("uri_len", len(uri)).Msg("inquiry: external link handed off")
	return nil
}

// ErrCourseNotFound is returned for an unknown course id.
var ErrCourseNotFound = errors.New("course not found")

// InquiryService composes buyer, seller and course messages and hands them to the chat endpoint.
type InquiryService struct {
	listings *ListingService
	courses  []model.Course
	links    ChatLinks
	opener   LinkOpener
	leads    LeadNotifier
}

// NewInquiryService wires the composer. A nil opener or notifier disables that step.
func NewInquiryService(listings *ListingService, courses []model.Course, links ChatLinks, opener LinkOpener, leads LeadNotifier) *InquiryService {
	if opener == nil {
		opener = LoggingLinkOpener{}
	}
	if leads == nil {
		leads = NoopLeadNotifier{}
	}
	return &InquiryService{listings: listings, courses: courses, links: links, opener: opener, leads: leads}
}

// Draft resolves the listing a buy request refers to.
// Returns repository.ErrNotFound for an unknown id.
func (s *InquiryService) Draft(req model.BuyInquiryRequest) (*model.InquiryDraft, error) {
	listing, err := s.listings.Get(req.ListingID)
	if err != nil {
		return nil, err
	}
	return &model.InquiryDraft{Listing: listing, Message: req.Message}, nil
}

// Buy composes an inquiry about one listing. Returns repository.ErrNotFound for an unknown id.
func (s *InquiryService) Buy(ctx context.Context, req model.BuyInquiryRequest) (*model.InquiryResponse, error) {
	draft, err := s.Draft(req)
	if err != nil {
		return nil, err
	}

	msg := ComposeBuyInquiry(draft.Listing, draft.Message)
	resp := s.handOff(ctx, msg)
	metrics.InquiriesTotal.WithLabelValues("buy").Inc()
	return resp, nil
}

// Courses returns the course catalogue in display order.
func (s *InquiryService) Courses() []model.Course {
	return s.courses
}

// Course composes an enquiry about one course tier. Returns ErrCourseNotFound for an unknown id.
func (s *InquiryService) Course(ctx context.Context, req model.CourseInquiryRequest) (*model.InquiryResponse, error) {
	for _, c := range s.courses {
		if c.ID == req.CourseID {
			resp := s.handOff(ctx, ComposeCourseInquiry(c))
			metrics.InquiriesTotal.WithLabelValues("course").Inc()
			return resp, nil
		}
	}
	return nil, ErrCourseNotFound
}

// Sell composes a listing request and forwards it to the lead notifier.
// Notifier failures are logged; the visitor still gets the chat link.
func (s *InquiryService) Sell(ctx context.Context, sub model.SellSubmission) *model.InquiryResponse {
	msg := ComposeSellSubmission(sub)
	resp := s.handOff(ctx, msg)

	if err := s.leads.NotifySellSubmission(ctx, sub, msg); err != nil {
		middleware.Logger.Warn().Err(err).Msg("inquiry: lead notification failed")
	}
	metrics.InquiriesTotal.WithLabelValues("sell").Inc()
	return resp
}

// handOff passes the chat link to the opener. Delivery is fire-and-forget.
func (s *InquiryService) handOff(ctx context.Context, msg string) *model.InquiryResponse {
	uri := s.links.Chat(msg)
	if err := s.opener.OpenExternalLink(ctx, uri); err != nil {
		middleware.Logger.Warn().Err(err).Msg("inquiry: link hand-off failed")
	}
	return &model.InquiryResponse{Message: msg, ChatURL: uri}
}
