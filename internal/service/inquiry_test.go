package service

import (
	"net/url"
	"strings"
	"testing"

	"github.com/kbdigital/ytselleradda/internal/model"
)

func TestComposeBuyInquiry(t *testing.T) {
	listing := &model.ChannelListing{Name: "Tech Hub", ListingID: "YT-042"}
	got := ComposeBuyInquiry(listing, "Is this still available?")

	for _, want := range []string{"Tech Hub", "YT-042", "Is this still available?"} {
		if !strings.Contains(got, want) {
			t.Errorf("message %q does not contain %q", got, want)
		}
	}
	want := "Hi, I'm interested in buying Tech Hub (ID: YT-042). Is this still available?"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestComposeBuyInquiry_Deterministic(t *testing.T) {
	listing := &model.ChannelListing{Name: "A", ListingID: "B"}
	if ComposeBuyInquiry(listing, "c") != ComposeBuyInquiry(listing, "c") {
		t.Error("composition must be deterministic")
	}
}

func TestComposeSellSubmission_FieldOrder(t *testing.T) {
	s := model.SellSubmission{
		Name:           "My Channel",
		ChannelLink:    "https://youtube.com/@mine",
		Niche:          "Gaming",
		Subscribers:    "12000",
		WatchHours:     "4000",
		Monetized:      "Yes",
		MonthlyRevenue: "15000",
		AskingPrice:    "250000",
		Phone:          "+91 99999 00000",
		Description:    "Clean channel, no strikes",
	}

	want := strings.Join([]string{
		"*New Channel Listing Request*",
		"-----------------------------",
		"*Channel Name:* My Channel",
		"*Channel Link:* https://youtube.com/@mine",
		"*Niche:* Gaming",
		"*Subscribers:* 12000",
		"*Watch Hours:* 4000",
		"*Monetized:* Yes",
		"*Monthly Revenue:* ₹15000",
		"*Asking Price:* ₹250000",
		"*Contact Number:* +91 99999 00000",
		"*Description:* Clean channel, no strikes",
	}, "\n")

	if got := ComposeSellSubmission(s); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestComposeSellSubmission_EmptyFieldsVerbatim(t *testing.T) {
	got := ComposeSellSubmission(model.SellSubmission{})
	if !strings.Contains(got, "*Monthly Revenue:* ₹\n") {
		t.Errorf("empty revenue should still be labelled: %q", got)
	}
	if lines := strings.Count(got, "\n"); lines != 11 {
		t.Errorf("line breaks = %d, want 11", lines)
	}
}

func TestChatLinks(t *testing.T) {
	links := ChatLinks{WhatsAppNumber: "918958890396", Email: "team@example.com"}

	chat := links.Chat("Hi, is YT-042 & friends available?")
	if !strings.HasPrefix(chat, "https://wa.me/918958890396?text=") {
		t.Fatalf("unexpected chat link %q", chat)
	}
	if strings.Contains(chat, "+") || strings.Contains(chat, " ") {
		t.Errorf("spaces must be encoded as %%20: %q", chat)
	}

	u, err := url.Parse(chat)
	if err != nil {
		t.Fatalf("chat link does not parse: %v", err)
	}
	if got := u.Query().Get("text"); got != "Hi, is YT-042 & friends available?" {
		t.Errorf("decoded text = %q", got)
	}

	mail := links.Mailto("Channel inquiry")
	if mail != "mailto:team@example.com?subject=Channel%20inquiry" {
		t.Errorf("mailto = %q", mail)
	}
}

func TestComposeCourseInquiry(t *testing.T) {
	tests := []struct {
		course model.Course
		want   string
	}{
		{
			model.Course{Title: "Basic YouTube Course", Tier: "Basic"},
			"Hi, I'm interested in the Basic YouTube Course (Basic).",
		},
		{
			model.Course{Title: "Unlimited Due to Mastery Course", Tier: "Premium Type"},
			"Hi, I'm interested in the Unlimited Due to Mastery Course (Premium Type).",
		},
	}
	for _, tt := range tests {
		if got := ComposeCourseInquiry(tt.course); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestChatLinks_External(t *testing.T) {
	links := ChatLinks{WhatsAppNumber: "918958890396", Email: "team@example.com"}
	ext := links.External()
	if ext.WhatsAppChat != "https://wa.me/918958890396?text=" {
		t.Errorf("whatsappChat = %q", ext.WhatsAppChat)
	}
	if ext.Mailto != "mailto:team@example.com?subject=Inquiry%20from%20YT%20Seller%20Adda" {
		t.Errorf("mailto = %q", ext.Mailto)
	}
}

func TestEncodeURIComponent(t *testing.T) {
	tests := map[string]string{
		"a b":              "a%20b",
		"Hi, I'm (here)!*": "Hi%2C%20I'm%20(here)!*",
		"50% & more":       "50%25%20%26%20more",
		"₹":                "%E2%82%B9",
	}
	for in, want := range tests {
		if got := encodeURIComponent(in); got != want {
			t.Errorf("encodeURIComponent(%q) = %q, want %q", in, got, want)
		}
	}
}
