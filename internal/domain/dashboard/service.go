package dashboard

import "context"

// Service assembles the admin dashboard view.
type Service interface {
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}
