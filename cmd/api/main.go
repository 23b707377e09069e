package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rosterly/attendance-backend-go/internal/config"
	appHTTP "github.com/rosterly/attendance-backend-go/internal/handler/http"
	"github.com/rosterly/attendance-backend-go/internal/pkg/cron"
	"github.com/rosterly/attendance-backend-go/internal/pkg/database"
	"github.com/rosterly/attendance-backend-go/internal/pkg/jwt"
	"github.com/rosterly/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/rosterly/attendance-backend-go/internal/service/attendance"
	authService "github.com/rosterly/attendance-backend-go/internal/service/auth"
	collectorService "github.com/rosterly/attendance-backend-go/internal/service/collector"
	employeeService "github.com/rosterly/attendance-backend-go/internal/service/employee"
	holidayService "github.com/rosterly/attendance-backend-go/internal/service/holiday"
	reportService "github.com/rosterly/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, holidayRepo, cfg.Collector.MultidaySkipHolidays)
	collectorSvc := collectorService.NewCollectorService(attendanceRepo, employeeRepo, holidayRepo, cfg.Collector.SessionTimeout)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, holidayRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(collectorSvc, attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("collector-session-sweep", time.Minute, collectorSvc.SweepExpired)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		holidayHandler,
		attendanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down")
	_ = server.Close()
}
