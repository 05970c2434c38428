package model

// Niche classifies a listing's content domain.
type Niche string

const (
	NicheGaming        Niche = "Gaming"
	NicheFinance       Niche = "Finance"
	NicheVlog          Niche = "Vlog"
	NicheTech          Niche = "Tech"
	NicheEntertainment Niche = "Entertainment"
	NicheEducation     Niche = "Education"
	NicheOther         Niche = "Other"
)

// NicheAll is the filter sentinel matching every niche. It is never a listing's niche.
const NicheAll Niche = "All"

// Niches lists every listing niche in display order.
var Niches = []Niche{
	NicheGaming,
	NicheFinance,
	NicheVlog,
	NicheTech,
	NicheEntertainment,
	NicheEducation,
	NicheOther,
}

// Valid reports whether n is one of the fixed listing niches.
func (n Niche) Valid() bool {
	for _, v := range Niches {
		if v == n {
			return true
		}
	}
	return false
}

// ListingStatus is the sale status of a listing.
type ListingStatus string

const (
	StatusAvailable ListingStatus = "Available"
	StatusSold      ListingStatus = "Sold"
)

// GrowthPoint is one month of subscriber history.
type GrowthPoint struct {
	Month string `json:"month" yaml:"month"`
	Subs  int64  `json:"subs" yaml:"subs"`
}

// ChannelListing represents a YouTube channel offered for sale.
type ChannelListing struct {
	ID           string        `json:"id" yaml:"id"`
	ListingID    string        `json:"listingId" yaml:"listingId"`
	Name         string        `json:"name" yaml:"name"`
	Niche        Niche         `json:"niche" yaml:"niche"`
	Status       ListingStatus `json:"status" yaml:"status"`
	Description  string        `json:"description" yaml:"description"`
	Language     string        `json:"language" yaml:"language"`
	ChannelType  string        `json:"channelType" yaml:"channelType"`
	ContentType  string        `json:"contentType" yaml:"contentType"`
	CreationDate string        `json:"creationDate" yaml:"creationDate"`
	ImageURL     string        `json:"imageUrl" yaml:"imageUrl"`
	ContactEmail string        `json:"contactEmail,omitempty" yaml:"contactEmail"`

	Subscribers      int64 `json:"subscribers" yaml:"subscribers"`
	WatchHours       int64 `json:"watchHours" yaml:"watchHours"`
	LifetimeViews    int64 `json:"lifetimeViews" yaml:"lifetimeViews"`
	ViewsLast28Days  int64 `json:"viewsLast28Days" yaml:"viewsLast28Days"`
	RealTimeViews    int64 `json:"realTimeViews" yaml:"realTimeViews"`
	CopyrightStrikes int64 `json:"copyrightStrikes" yaml:"copyrightStrikes"`
	CommunityStrikes int64 `json:"communityStrikes" yaml:"communityStrikes"`

	Monetized         bool   `json:"monetized" yaml:"monetized"`
	AskingPrice       int64  `json:"askingPrice" yaml:"askingPrice"`
	MonthlyRevenue    *int64 `json:"monthlyRevenue,omitempty" yaml:"monthlyRevenue"`
	RevenueLast28Days int64  `json:"revenueLast28Days" yaml:"revenueLast28Days"`
	LifetimeRevenue   int64  `json:"lifetimeRevenue" yaml:"lifetimeRevenue"`

	GrowthData []GrowthPoint `json:"growthData" yaml:"growthData"`
}

// ListingsResponse is the API response for a filtered listing query.
// Listings is never null: an empty array means nothing matched.
type ListingsResponse struct {
	Listings []ChannelListing `json:"listings"`
	Total    int              `json:"total"`
	Matched  int              `json:"matched"`
	Criteria FilterCriteria   `json:"criteria"`
}
