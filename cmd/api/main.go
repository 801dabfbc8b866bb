package main

import (
	"fmt"
	"net/http"

	"github.com/fleetdesk/attendance-backend-go/internal/config"
	appHTTP "github.com/fleetdesk/attendance-backend-go/internal/handler/http"
	"github.com/fleetdesk/attendance-backend-go/internal/pkg/cron"
	"github.com/fleetdesk/attendance-backend-go/internal/pkg/database"
	"github.com/fleetdesk/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/fleetdesk/attendance-backend-go/internal/service/attendance"
	companyService "github.com/fleetdesk/attendance-backend-go/internal/service/company"
	dashboardService "github.com/fleetdesk/attendance-backend-go/internal/service/dashboard"
	driverService "github.com/fleetdesk/attendance-backend-go/internal/service/driver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	driverRepo := postgresql.NewDriverRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, driverRepo, cfg.Retention.Days)
	companySvc := companyService.NewCompanyService(companyRepo, driverRepo)
	driverSvc := driverService.NewDriverService(db, driverRepo, attendanceRepo, companySvc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, companySvc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	driverHandler := appHTTP.NewDriverHandler(driverSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc, attendanceSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, driverRepo, attendanceSvc)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App.FrontendURL,
		attendanceHandler,
		driverHandler,
		companyHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
