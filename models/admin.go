package models

// UserSummary is a row of the admin users table.
type UserSummary struct {
	ID            string `json:"id" validate:"required"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	TotalBookings int    `json:"totalBookings"`
	IsActive      bool   `json:"isActive"`
}

// Metrics are the platform figures on the admin dashboard.
type Metrics struct {
	Date                     string  `json:"date,omitempty"`
	TotalUsers               int     `json:"totalUsers" validate:"gte=0"`
	ActiveBookings           int     `json:"activeBookings" validate:"gte=0"`
	CustomerSatisfactionRate float64 `json:"customerSatisfactionRate" validate:"gte=0,lte=100"`
	AvgServicePrice          float64 `json:"avgServicePrice" validate:"gte=0"`
	TotalRevenue             float64 `json:"totalRevenue" validate:"gte=0"`
}
