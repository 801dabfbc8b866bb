package dashboard

import (
	"github.com/fleetdesk/attendance-backend-go/internal/domain/company"
)

// StatusCount is one presence bucket on the admin dashboard.
type StatusCount struct {
	PresenceStatus string `json:"presence_status"`
	Display        string `json:"display"`
	Count          int    `json:"count"`
}

type DashboardResponse struct {
	TotalDrivers int                       `json:"total_drivers"`
	StatusCounts []StatusCount             `json:"status_counts"`
	Companies    []company.CompanyResponse `json:"companies"`
}
