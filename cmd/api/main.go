package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/markwaveai/markwave-hr/internal/config"
	appHTTP "github.com/markwaveai/markwave-hr/internal/handler/http"
	"github.com/markwaveai/markwave-hr/internal/pkg/database"
	"github.com/markwaveai/markwave-hr/internal/pkg/jwt"
	"github.com/markwaveai/markwave-hr/internal/pkg/poll"
	"github.com/markwaveai/markwave-hr/internal/repository/postgresql"
	attendanceService "github.com/markwaveai/markwave-hr/internal/service/attendance"
	authService "github.com/markwaveai/markwave-hr/internal/service/auth"
	holidayService "github.com/markwaveai/markwave-hr/internal/service/holiday"
	leaveService "github.com/markwaveai/markwave-hr/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	txManager := postgresql.NewTxManager(db)
	userRepo := postgresql.NewUserRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	wfhRepo := postgresql.NewWFHRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	calendar := holidayService.NewCalendarService(holidayRepo)
	if err := calendar.Refresh(ctx); err != nil {
		slog.Warn("Initial holiday calendar load failed, continuing with empty snapshot", "error", err)
	}
	holidayPoller := poll.NewPoller("holiday_calendar", cfg.Holiday.PollInterval, calendar.Refresh)
	holidayPoller.Start()
	defer holidayPoller.Stop()

	dayCalc := attendanceService.NewDayCalculator(attendanceService.Rules{
		ShiftStartMinute:  cfg.Shift.StartMinute,
		EarlyGraceMinutes: cfg.Shift.EarlyGraceMinutes,
		DefaultShiftLabel: cfg.Shift.DefaultLabel,
	})
	eligibility := leaveService.NewEligibilityValidator(leaveService.Cutoffs{
		OpeningMinute:    cfg.Shift.StartMinute,
		HalfDayMinute:    cfg.Shift.HalfDayCutoff,
		SecondHalfMinute: cfg.Shift.SecondHalfCutoff,
	})

	attendanceSvc := attendanceService.NewAttendanceService(sessionRepo, leaveRequestRepo, calendar, dayCalc, txManager)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, wfhRepo, calendar, eligibility, txManager)
	authSvc := authService.NewAuthService(userRepo, jwtSvc)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(calendar)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		attendanceHandler,
		leaveHandler,
		holidayHandler,
		cfg.App.Env,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down...")
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}
