package dto

// StatsResponse carries the dashboard counters. Revenue figures serialise as
// JSON numbers, matching the rest of the money fields.
type StatsResponse struct {
	TotalOrders      int64   `json:"total_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
	TodayOrders      int64   `json:"today_orders"`
	TodayRevenue     float64 `json:"today_revenue"`
	TotalProducts    int64   `json:"total_products"`
	LowStockProducts int64   `json:"low_stock_products"`
}
