package models

type RecentActivity struct {
	NewListings    int `json:"newListings"`
	NewRequests    int `json:"newRequests"`
	CompletedSales int `json:"completedSales"`
}

type DashboardStats struct {
	TotalCars       int            `json:"totalCars"`
	TotalProperties int            `json:"totalProperties"`
	TotalRequests   int            `json:"totalRequests"`
	RecentActivity  RecentActivity `json:"recentActivity"`
}
