package main

import (
	"fmt"
	"net/http"

	"github.com/gta-labs/gta-backend-go/internal/config"
	appHTTP "github.com/gta-labs/gta-backend-go/internal/handler/http"
	"github.com/gta-labs/gta-backend-go/internal/pkg/cron"
	"github.com/gta-labs/gta-backend-go/internal/pkg/database"
	"github.com/gta-labs/gta-backend-go/internal/pkg/jwt"
	"github.com/gta-labs/gta-backend-go/internal/repository/postgresql"
	authService "github.com/gta-labs/gta-backend-go/internal/service/auth"
	employeeService "github.com/gta-labs/gta-backend-go/internal/service/employee"
	notificationService "github.com/gta-labs/gta-backend-go/internal/service/notification"
	overtimeService "github.com/gta-labs/gta-backend-go/internal/service/overtime"
	specialHourService "github.com/gta-labs/gta-backend-go/internal/service/specialhour"
	timeEntryService "github.com/gta-labs/gta-backend-go/internal/service/timeentry"
	timesheetService "github.com/gta-labs/gta-backend-go/internal/service/timesheet"
	workCycleService "github.com/gta-labs/gta-backend-go/internal/service/workcycle"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workCycleRepo := postgresql.NewWorkCycleRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	specialHourRepo := postgresql.NewSpecialHourRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	notifService := notificationService.NewNotificationService(notificationRepo, userRepo, employeeRepo)
	engine := timesheetService.NewTimesheetService(
		workCycleRepo,
		timesheetService.NoHolidays{},
		overtimeRepo,
		specialHourRepo,
		notifService,
	)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, workCycleRepo)
	workCycleSvc := workCycleService.NewWorkCycleService(workCycleRepo)
	timeEntrySvc := timeEntryService.NewTimeEntryService(timeEntryRepo, employeeRepo, engine)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo)
	specialHourSvc := specialHourService.NewSpecialHourService(specialHourRepo)

	scheduler := cron.NewScheduler()
	cron.NewTimeEntryJobs(timeEntryRepo, workCycleRepo, engine).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		WorkCycle:    appHTTP.NewWorkCycleHandler(workCycleSvc),
		TimeEntry:    appHTTP.NewTimeEntryHandler(timeEntrySvc),
		Overtime:     appHTTP.NewOvertimeHandler(overtimeSvc),
		SpecialHour:  appHTTP.NewSpecialHourHandler(specialHourSvc),
		Notification: appHTTP.NewNotificationHandler(notifService),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
