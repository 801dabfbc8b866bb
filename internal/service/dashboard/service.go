package dashboard

import (
	"context"
	"fmt"

	"github.com/fleetdesk/attendance-backend-go/internal/domain/attendance"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/company"
	"github.com/fleetdesk/attendance-backend-go/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboardRepo  dashboard.Repository
	companyService company.Service
}

func NewDashboardService(dashboardRepo dashboard.Repository, companyService company.Service) dashboard.Service {
	return &DashboardServiceImpl{
		dashboardRepo:  dashboardRepo,
		companyService: companyService,
	}
}

// GetDashboard implements dashboard.Service. Status buckets come back in
// a stable order so the tiles do not reshuffle between refreshes.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	counts, err := s.dashboardRepo.CountDriversByPresence(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, fmt.Errorf("failed to count drivers by presence: %w", err)
	}

	total := 0
	statusCounts := make([]dashboard.StatusCount, 0, len(attendance.WireStatuses))
	for _, wire := range attendance.WireStatuses {
		display := attendance.StatusFromWire(wire)
		count := counts[display]
		total += count
		statusCounts = append(statusCounts, dashboard.StatusCount{
			PresenceStatus: wire,
			Display:        string(display),
			Count:          count,
		})
	}
	// Late drivers share the checked_in wire value but are tallied under
	// their own display status.
	if late, ok := counts[attendance.StatusLate]; ok {
		total += late
		for i := range statusCounts {
			if statusCounts[i].PresenceStatus == "checked_in" {
				statusCounts[i].Count += late
				break
			}
		}
	}

	companies, err := s.companyService.ListCompanies(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	return dashboard.DashboardResponse{
		TotalDrivers: total,
		StatusCounts: statusCounts,
		Companies:    companies,
	}, nil
}
