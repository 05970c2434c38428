package config

import (
	"fmt"

	"github.com/kbdigital/ytselleradda/internal/model"
)

// DefaultSite is the marketing content shipped with the site.
var DefaultSite = model.Site{
	Name:        "YT Seller Adda",
	Tagline:     "Buy & Sell YouTube Channels Safely",
	Description: "The most trusted platform for YouTube creators. Verified listings, secure escrow-style deals, and smooth ownership transitions.",
	Contact: model.Contact{
		Phone:        "+91 8958890396",
		WhatsApp:     "918958890396",
		Email:        "kbdigitalofficial@gmail.com",
		SupportEmail: "kbdigitalofficial@gmail.com",
		Address:      "New Delhi, India",
	},
	Social: model.SocialLinks{
		Instagram: "https://instagram.com/ytselleradda",
		Telegram:  "https://t.me/ytselleradda",
		YouTube:   "https://youtube.com/@ytselleradda",
		LinkedIn:  "https://linkedin.com/company/ytselleradda",
	},
	NavLinks: []model.NavLink{
		{Name: "Home", ID: model.ViewHome},
		{Name: "Browse Channels", ID: model.ViewBrowse},
		{Name: "Sell Channel", ID: model.ViewSell},
		{Name: "Learn Course", ID: model.ViewLearnCourse},
		{Name: "How to Use", ID: model.ViewHowToUse},
		{Name: "About Us", ID: model.ViewAbout},
	},
	Stats: []model.Stat{
		{Label: "Years in Market", Value: 2, Suffix: "+", Duration: 2},
		{Label: "Deals Done", Value: 700, Suffix: "+", Duration: 1.5},
		{Label: "Available Now", Value: 15, Suffix: "+", Duration: 2},
	},
	Banners: []model.Banner{
		{
			Image: "https://picsum.photos/seed/offer1/1200/600",
			Text:  "🔥 New Offer: Gaming Channel 'ProGamer' just received a bid of ₹4,50,000! Offers",
			Color: "from-yt-red/80",
		},
		{Image: "https://picsum.photos/seed/offer2/1200/600", Text: "Offers", Color: "from-blue-600/40"},
		{
			Image: "https://picsum.photos/seed/offer3/1200/600",
			Text:  "💰 Deal Alert: Finance channel 'MoneyWise' price dropped by ₹50,000! Offers",
			Color: "from-emerald-600/80",
		},
		{Image: "https://picsum.photos/seed/offer4/1200/600", Text: "Offers", Color: "from-purple-600/40"},
	},
	Reviews: []string{
		"https://picsum.photos/seed/review1/1200/750",
		"https://picsum.photos/seed/review2/1200/750",
		"https://picsum.photos/seed/review3/1200/750",
		"https://picsum.photos/seed/review4/1200/750",
	},
	Courses: []model.Course{
		{
			ID:       "basic",
			Title:    "Basic YouTube Course",
			Tier:     "Basic",
			Price:    "₹1,999",
			OldPrice: "₹3,999",
			Desc:     "Perfect for beginners starting their YouTube journey.",
			Features: []string{"Channel Setup", "Basic SEO", "Content Ideas", "Monetization Basics"},
			Color:    "bg-blue-500",
		},
		{
			ID:       "high",
			Title:    "Life Skill Growing Course",
			Tier:     "High",
			Price:    "₹4,999",
			OldPrice: "₹9,999",
			Desc:     "Master the skills needed to grow any channel rapidly.",
			Features: []string{"Advanced SEO", "Viral Framework", "Audience Psychology", "Brand Building"},
			Color:    "bg-yt-red",
		},
		{
			ID:       "premium",
			Title:    "Unlimited Due to Mastery Course",
			Tier:     "Premium Type",
			Price:    "₹9,999",
			OldPrice: "₹19,999",
			Desc:     "The ultimate blueprint for YouTube business mastery.",
			Features: []string{"Full Business Automation", "High-Ticket Sales", "Exit Strategies", "1-on-1 Mentorship"},
			Color:    "bg-slate-900",
		},
	},
	Disclaimer: "Disclaimer: YT Seller Adda is an independent marketplace and is not affiliated with, endorsed by, or sponsored by YouTube or Google LLC. All trades are subject to YouTube's Terms of Service.",
}

// FindCourse returns the course with the given id from site.
func FindCourse(site model.Site, id string) (model.Course, bool) {
	for _, c := range site.Courses {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}

// Copyright returns the footer copyright line for the given year.
func Copyright(year int) string {
	return fmt.Sprintf("© %d YT Seller Adda. All rights reserved.", year)
}
