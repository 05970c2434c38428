package repository

import "github.com/kbdigital/ytselleradda/internal/model"

func revenue(v int64) *int64 { return &v }

func growth(subs ...int64) []model.GrowthPoint {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	out := make([]model.GrowthPoint, 0, len(subs))
	for i, s := range subs {
		out = append(out, model.GrowthPoint{Month: months[i%len(months)], Subs: s})
	}
	return out
}

// SeedListings returns the built-in catalog used when no catalog source is configured.
func SeedListings() []model.ChannelListing {
	return []model.ChannelListing{
		{
			ID: "1", ListingID: "YT-001", Name: "ProGamer Arena", Niche: model.NicheGaming,
			Status: model.StatusAvailable, Language: "Hindi", ChannelType: "Long videos",
			ContentType: "Original", CreationDate: "2021-03-14",
			Description:  "Gameplay walkthroughs and live tournament highlights with a loyal audience.",
			ImageURL:     "https://picsum.photos/seed/gaming/800/450",
			ContactEmail: "kbdigitalofficial@gmail.com",
			Subscribers:  125_000, WatchHours: 48_000, LifetimeViews: 9_800_000,
			ViewsLast28Days: 420_000, RealTimeViews: 1_900,
			Monetized: true, AskingPrice: 450_000, MonthlyRevenue: revenue(38_000),
			RevenueLast28Days: 36_500, LifetimeRevenue: 910_000,
			GrowthData: growth(98_000, 104_000, 109_000, 114_000, 120_000, 125_000),
		},
		{
			ID: "2", ListingID: "YT-002", Name: "MoneyWise", Niche: model.NicheFinance,
			Status: model.StatusAvailable, Language: "English", ChannelType: "Long videos",
			ContentType: "Original", CreationDate: "2020-08-02",
			Description:  "Personal finance explainers, stock market basics and budgeting guides.",
			ImageURL:     "https://picsum.photos/seed/finance/800/450",
			ContactEmail: "kbdigitalofficial@gmail.com",
			Subscribers:  68_000, WatchHours: 22_500, LifetimeViews: 3_100_000,
			ViewsLast28Days: 150_000, RealTimeViews: 640,
			Monetized: true, AskingPrice: 300_000, MonthlyRevenue: revenue(52_000),
			RevenueLast28Days: 49_000, LifetimeRevenue: 1_240_000,
			GrowthData: growth(55_000, 58_000, 60_500, 63_000, 65_800, 68_000),
		},
		{
			ID: "3", ListingID: "YT-003", Name: "Tech Hub", Niche: model.NicheTech,
			Status: model.StatusAvailable, Language: "Hindi", ChannelType: "Shorts + Long",
			ContentType: "Original", CreationDate: "2022-01-20",
			Description:  "Gadget unboxings, smartphone reviews and quick tech tips.",
			ImageURL:     "https://picsum.photos/seed/tech/800/450",
			ContactEmail: "kbdigitalofficial@gmail.com",
			Subscribers:  42_000, WatchHours: 6_100, LifetimeViews: 2_400_000,
			ViewsLast28Days: 96_000, RealTimeViews: 410,
			Monetized: true, AskingPrice: 180_000, MonthlyRevenue: revenue(14_000),
			RevenueLast28Days: 13_200, LifetimeRevenue: 210_000,
			GrowthData: growth(30_000, 33_000, 35_500, 38_000, 40_200, 42_000),
		},
		{
			ID: "4", ListingID: "YT-004", Name: "Daily Diaries", Niche: model.NicheVlog,
			Status: model.StatusAvailable, Language: "Hindi", ChannelType: "Long videos",
			ContentType: "Original", CreationDate: "2023-05-11",
			Description:  "Travel and lifestyle vlogs. Eligible for monetization soon.",
			ImageURL:     "https://picsum.photos/seed/vlog/800/450",
			ContactEmail: "kbdigitalofficial@gmail.com",
			Subscribers:  8_500, WatchHours: 3_200, LifetimeViews: 410_000,
			ViewsLast28Days: 21_000, RealTimeViews: 85,
			Monetized: false, AskingPrice: 35_000,
			GrowthData: growth(5_000, 5_900, 6_600, 7_200, 7_900, 8_500),
		},
		{
			ID: "5", ListingID: "YT-005", Name: "Laugh Factory", Niche: model.NicheEntertainment,
			Status: model.StatusSold, Language: "Hindi", ChannelType: "Shorts",
			ContentType: "Original", CreationDate: "2021-11-30",
			Description:  "Comedy sketches and shorts with viral reach.",
			ImageURL:     "https://picsum.photos/seed/comedy/800/450",
			ContactEmail: "kbdigitalofficial@gmail.com",
			Subscribers:  210_000, WatchHours: 12_000, LifetimeViews: 54_000_000,
			ViewsLast28Days: 2_300_000, RealTimeViews: 7_400, CommunityStrikes: 1,
			Monetized: true, AskingPrice: 850_000, MonthlyRevenue: revenue(61_000),
			RevenueLast28Days: 58_000, LifetimeRevenue: 1_900_000,
			GrowthData: growth(150_000, 162_000, 175_000, 188_000, 199_000, 210_000),
		},
		{
			ID: "6", ListingID: "YT-006", Name: "Study Smart", Niche: model.NicheEducation,
			Status: model.StatusAvailable, Language: "English", ChannelType: "Long videos",
			ContentType: "Original", CreationDate: "2022-07-04",
			Description:  "Exam preparation lessons for competitive exams.",
			ImageURL:     "https://picsum.photos/seed/education/800/450",
			ContactEmail: "kbdigitalofficial@gmail.com",
			Subscribers:  15_400, WatchHours: 4_300, LifetimeViews: 720_000,
			ViewsLast28Days: 33_000, RealTimeViews: 120,
			Monetized: false, AskingPrice: 60_000,
			GrowthData: growth(11_000, 12_000, 12_900, 13_800, 14_600, 15_400),
		},
	}
}
