package app

import (
	"database/sql"
	"path/filepath"
	"time"

	"github.com/pareverse/hrms/internal/announcement"
	"github.com/pareverse/hrms/internal/authz"
	"github.com/pareverse/hrms/internal/department"
	"github.com/pareverse/hrms/internal/designation"
	"github.com/pareverse/hrms/internal/holiday"
	"github.com/pareverse/hrms/internal/leave"
	"github.com/pareverse/hrms/internal/leavetype"
	"github.com/pareverse/hrms/internal/meeting"
	"github.com/pareverse/hrms/internal/messaging/kafka"
	"github.com/pareverse/hrms/internal/middleware"
	"github.com/pareverse/hrms/internal/report"
	"github.com/pareverse/hrms/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	authzDir string,
) error {
	// --- Repositories ---
	announcementRepo := announcement.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	designationRepo := designation.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	meetingRepo := meeting.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	reportRepo := report.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- AuthZ ---
	authzService, err := authz.NewService(
		filepath.Join(authzDir, "model.conf"),
		filepath.Join(authzDir, "policy.csv"),
	)
	if err != nil {
		return err
	}

	// --- Services ---
	announcementService := announcement.NewService(db, announcementRepo)
	departmentService := department.NewService(db, departmentRepo)
	designationService := designation.NewService(db, designationRepo)
	holidayService := holiday.NewService(db, holidayRepo)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, userRepo, leaveTypeRepo, outboxRepo)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo, rdb)
	meetingService := meeting.NewService(db, meetingRepo, userRepo)
	reportService := report.NewService(db, reportRepo, userRepo)
	userService := user.NewServiceWithOutbox(db, userRepo, outboxRepo)

	// --- Handlers ---
	announcementHandler := announcement.NewHandler(announcementService)
	departmentHandler := department.NewHandler(departmentService)
	designationHandler := designation.NewHandler(designationService)
	holidayHandler := holiday.NewHandler(holidayService)
	leaveHandler := leave.NewHandler(leaveService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	meetingHandler := meeting.NewHandler(meetingService)
	reportHandler := report.NewHandler(reportService)
	userHandler := user.NewHandler(userService)

	// --- Middleware + Routes ---
	router.Use(cors.Default())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Every(time.Second), 30))

	api := router.Group("/api")
	{
		announcement.RegisterRoutes(api, announcementHandler, authzService)
		department.RegisterRoutes(api, departmentHandler, authzService)
		designation.RegisterRoutes(api, designationHandler, authzService)
		holiday.RegisterRoutes(api, holidayHandler, authzService)
		leave.RegisterRoutes(api, leaveHandler, authzService, rdb)
		leavetype.RegisterRoutes(api, leaveTypeHandler, authzService)
		meeting.RegisterRoutes(api, meetingHandler, authzService)
		report.RegisterRoutes(api, reportHandler, authzService)
		user.RegisterRoutes(api, userHandler, authzService)
	}

	return nil
}
