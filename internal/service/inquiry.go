package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/kbdigital/ytselleradda/internal/model"
)

// LinkOpener hands a URI to whatever opens external links (a browser tab, a chat app).
// Delivery is fire-and-forget; the composer never sees the outcome.
type LinkOpener interface {
	OpenExternalLink(ctx context.Context, uri string) error
}

// ComposeBuyInquiry formats a buyer's message about listing.
func ComposeBuyInquiry(listing *model.ChannelListing, message string) string {
	return fmt.Sprintf("Hi, I'm interested in buying %s (ID: %s). %s", listing.Name, listing.ListingID, message)
}

// ComposeCourseInquiry formats a visitor's enquiry about a course tier.
func ComposeCourseInquiry(course model.Course) string {
	return fmt.Sprintf("Hi, I'm interested in the %s (%s).", course.Title, course.Tier)
}

// sellLabels is the fixed order of fields in a sell submission message.
var sellLabels = []struct {
	label  string
	prefix string
	value  func(s model.SellSubmission) string
}{
	{"Channel Name", "", func(s model.SellSubmission) string { return s.Name }},
	{"Channel Link", "", func(s model.SellSubmission) string { return s.ChannelLink }},
	{"Niche", "", func(s model.SellSubmission) string { return s.Niche }},
	{"Subscribers", "", func(s model.SellSubmission) string { return s.Subscribers }},
	{"Watch Hours", "", func(s model.SellSubmission) string { return s.WatchHours }},
	{"Monetized", "", func(s model.SellSubmission) string { return s.Monetized }},
	{"Monthly Revenue", "₹", func(s model.SellSubmission) string { return s.MonthlyRevenue }},
	{"Asking Price", "₹", func(s model.SellSubmission) string { return s.AskingPrice }},
	{"Contact Number", "", func(s model.SellSubmission) string { return s.Phone }},
	{"Description", "", func(s model.SellSubmission) string { return s.Description }},
}

// ComposeSellSubmission formats every seller field, one per line, in a fixed order.
func ComposeSellSubmission(s model.SellSubmission) string {
	var b strings.Builder
	b.WriteString("*New Channel Listing Request*\n")
	b.WriteString("-----------------------------")
	for _, f := range sellLabels {
		fmt.Fprintf(&b, "\n*%s:* %s%s", f.label, f.prefix, f.value(s))
	}
	return b.String()
}

// ChatLinks builds outbound contact URIs for the marketplace's chat and mail endpoints.
type ChatLinks struct {
	WhatsAppNumber string
	Email          string
}

// Chat returns the WhatsApp click-to-chat link prefilled with message.
func (c ChatLinks) Chat(message string) string {
	return "https://wa.me/" + c.WhatsAppNumber + "?text=" + encodeURIComponent(message)
}

// DefaultMailSubject is the subject of the site-wide contact mail link.
const DefaultMailSubject = "Inquiry from YT Seller Adda"

// Mailto returns a mailto link with the given subject.
func (c ChatLinks) Mailto(subject string) string {
	return "mailto:" + c.Email + "?subject=" + encodeURIComponent(subject)
}

// External returns the ready-made contact links served with the site content.
func (c ChatLinks) External() model.ExternalLinks {
	return model.ExternalLinks{
		WhatsAppChat: c.Chat(""),
		Mailto:       c.Mailto(DefaultMailSubject),
	}
}

// uriComponentUnescaper undoes QueryEscape for the marks encodeURIComponent leaves alone.
var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes s for a query value the way browsers do:
// %20 for spaces, and !'()* left as is.
func encodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}
