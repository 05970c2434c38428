package model

// InquiryDraft is a buyer's message about one listing, resolved from a
// BuyInquiryRequest and consumed by the composer.
type InquiryDraft struct {
	Listing *ChannelListing
	Message string
}

// SellSubmission holds the fields a seller enters on the sell form.
// Values are kept as entered; the composer formats them verbatim.
type SellSubmission struct {
	Name           string `json:"name"`
	ChannelLink    string `json:"channelLink"`
	Niche          string `json:"niche"`
	Subscribers    string `json:"subscribers"`
	WatchHours     string `json:"watchHours"`
	Monetized      string `json:"monetized"`
	MonthlyRevenue string `json:"monthlyRevenue"`
	AskingPrice    string `json:"askingPrice"`
	Phone          string `json:"phone"`
	Description    string `json:"description"`
}

// BuyInquiryRequest is the API request body for a buy inquiry.
type BuyInquiryRequest struct {
	ListingID string `json:"listingId"`
	Message   string `json:"message"`
}

// CourseInquiryRequest is the API request body for a course enquiry.
type CourseInquiryRequest struct {
	CourseID string `json:"courseId"`
}

// InquiryResponse carries the composed message and the chat link it was handed to.
type InquiryResponse struct {
	Message string `json:"message"`
	ChatURL string `json:"chatUrl"`
}
