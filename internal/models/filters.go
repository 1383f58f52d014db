package models

// RankingFilter represents query parameters for the ranking view
type RankingFilter struct {
	Limit int `form:"limit" binding:"omitempty,min=0"` // 0 = all regions
}

// DashboardFilter represents query parameters for the dashboard view
type DashboardFilter struct {
	Region string `form:"region"` // empty = default region
}

// ChartFilter represents query parameters for rendered charts
type ChartFilter struct {
	Limit  int    `form:"limit" binding:"omitempty,min=0"`
	Format string `form:"format" binding:"omitempty,oneof=png svg"` // defaults to png
}
