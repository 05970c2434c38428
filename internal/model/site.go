package model

import "time"

// Contact holds the marketplace's public contact details.
type Contact struct {
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp"`
	Email        string `json:"email"`
	SupportEmail string `json:"supportEmail"`
	Address      string `json:"address"`
}

// SocialLinks are the marketplace's social profiles.
type SocialLinks struct {
	Instagram string `json:"instagram"`
	Telegram  string `json:"telegram"`
	YouTube   string `json:"youtube"`
	LinkedIn  string `json:"linkedin"`
}

// Stat is a headline number shown with an animated counter.
type Stat struct {
	Label    string  `json:"label"`
	Value    int     `json:"value"`
	Suffix   string  `json:"suffix"`
	Duration float64 `json:"duration"` // seconds
}

// Banner is one slide of the promotional carousel.
type Banner struct {
	Image string `json:"image"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

// Course is one tier of the learning programme.
type Course struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Tier     string   `json:"tier"`
	Price    string   `json:"price"`
	OldPrice string   `json:"oldPrice"`
	Desc     string   `json:"desc"`
	Features []string `json:"features"`
	Color    string   `json:"color"`
}

// ExternalLinks are ready-made contact URIs for the front-end.
type ExternalLinks struct {
	WhatsAppChat string `json:"whatsappChat"`
	Mailto       string `json:"mailto"`
}

// NavLink is one entry of the top navigation bar.
type NavLink struct {
	Name string `json:"name"`
	ID   View   `json:"id"`
}

// Site is the static marketing content served to the front-end.
type Site struct {
	Name        string        `json:"siteName"`
	Tagline     string        `json:"tagline"`
	Description string        `json:"description"`
	Contact     Contact       `json:"contact"`
	Social      SocialLinks   `json:"socialLinks"`
	NavLinks    []NavLink     `json:"navLinks"`
	Stats       []Stat        `json:"stats"`
	Banners     []Banner      `json:"banners"`
	Reviews     []string      `json:"reviews"`
	Courses     []Course      `json:"courses"`
	Links       ExternalLinks `json:"externalLinks"`
	Disclaimer  string        `json:"disclaimer"`
	Copyright   string        `json:"copyright"`
}

// CarouselState is the persisted position of one session's carousel.
// RunningSince is the time of the last applied auto-advance tick, nil when the timer is stopped.
type CarouselState struct {
	Index        int        `json:"index"`
	RunningSince *time.Time `json:"runningSince,omitempty"`
}

// CarouselResponse is the API response for a carousel: its slides and the current one.
// IntervalMs is zero for carousels that only move on request.
type CarouselResponse struct {
	Items        any   `json:"items"`
	Count        int   `json:"count"`
	CurrentIndex int   `json:"currentIndex"`
	IntervalMs   int64 `json:"intervalMs"`
	Running      bool  `json:"running"`
}

// JumpRequest selects a carousel slide directly.
type JumpRequest struct {
	Index int `json:"index"`
}
