package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/officehub/insights-gateway-go/internal/client/officeapi"
	"github.com/officehub/insights-gateway-go/internal/config"
	appHTTP "github.com/officehub/insights-gateway-go/internal/handler/http"
	"github.com/officehub/insights-gateway-go/internal/pkg/jwt"
	attendanceService "github.com/officehub/insights-gateway-go/internal/service/attendance"
	dashboardService "github.com/officehub/insights-gateway-go/internal/service/dashboard"
	departmentService "github.com/officehub/insights-gateway-go/internal/service/department"
	rankingService "github.com/officehub/insights-gateway-go/internal/service/ranking"
	taskService "github.com/officehub/insights-gateway-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	officeClient := officeapi.NewClient(cfg.OfficeAPI.BaseURL, cfg.OfficeAPI.Timeout)
	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "insights-gateway"),
	)

	attendanceSvc := attendanceService.NewAttendanceService(officeClient)
	rankingSvc := rankingService.NewRankingService(officeClient)
	departmentSvc := departmentService.NewDepartmentService(officeClient)
	taskSvc := taskService.NewTaskService(officeClient)
	dashboardSvc := dashboardService.NewDashboardService(officeClient, logger)

	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	rankingHandler := appHTTP.NewRankingHandler(rankingSvc, departmentSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		dashboardHandler,
		attendanceHandler,
		rankingHandler,
		taskHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
