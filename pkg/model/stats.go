package model

// TodayStats is the payload of GET /today.
type TodayStats struct {
	NewUsers    int `json:"new_users"`
	NewItems    int `json:"new_items"`
	NewRequests int `json:"new_requests"`
	NewReviews  int `json:"new_reviews"`
}

// TrendPoint is one day of the user registration trend.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CategoryShare is one slice of the item category distribution.
type CategoryShare struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DashboardCounts are the headline numbers of the dashboard.
type DashboardCounts struct {
	TotalUsers      int
	TotalItems      int
	PendingRequests int
	TodayNewItems   int
}
