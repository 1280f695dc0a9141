package router

import (
	"net/http"

	"github.com/mflath/TImesheets/internal/auth"
	"github.com/mflath/TImesheets/internal/config"
	"github.com/mflath/TImesheets/internal/handler"
	"github.com/mflath/TImesheets/internal/middleware"
	"github.com/mflath/TImesheets/internal/repository"
	"github.com/mflath/TImesheets/internal/service"
	"github.com/mflath/TImesheets/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Auth primitives ──────────────────────────────────────────────────────
	hasher := auth.NewHasher()
	tokens := auth.NewTokenService(cfg.JWTSecret)
	authMW := middleware.Authenticate(tokens)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	timesheetRepo := repository.NewTimesheetRepository(db)
	vacationRepo := repository.NewVacationRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, hasher, tokens)
	activitySvc := service.NewActivityService(activityRepo)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)
	timesheetSvc := service.NewTimesheetService(timesheetRepo, employeeRepo, vacationRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	usersH := handler.NewUsersHandler(authSvc)
	activitiesH := handler.NewActivitiesHandler(activitySvc, rdb)
	timesheetsH := handler.NewTimesheetsHandler(timesheetSvc, employeeRepo, timesheetRepo, cfg.ReportStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Timesheet App!")
	})
	r.GET("/health", handler.Health(db, rdb))

	users := r.Group("/users")
	{
		// Registration and login bypass the gate by design
		users.POST("/register", usersH.Register)
		users.POST("/login", usersH.Login)

		users.GET("", usersH.List)
		users.GET("/feedback", usersH.ListFeedback)
		users.GET("/:id", usersH.Get)
		users.PUT("/password/:username", usersH.UpdatePassword)
		users.PUT("/deactivate/:id", usersH.Deactivate)
		users.PUT("/reactivate/:id", usersH.Reactivate)
		users.PUT("/:id", usersH.Update)
		users.DELETE("/:id", usersH.Delete)

		// Routes acting on the authenticated user
		users.PUT("/profile", authMW, usersH.UpdateProfile)
		users.PUT("/two-factor", authMW, usersH.ToggleTwoFactor)
		users.POST("/feedback", authMW, usersH.SubmitFeedback)
	}

	// Timesheets — everything behind the gate
	timesheets := r.Group("/api/timesheets", authMW)
	{
		timesheets.GET("", timesheetsH.List)
		timesheets.POST("", timesheetsH.Create)
		timesheets.PUT("/:id", timesheetsH.Update)
		timesheets.DELETE("/:id", timesheetsH.Delete)

		timesheets.POST("/vacation-request", timesheetsH.SubmitVacationRequest)
		timesheets.PUT("/vacation-request/:id", timesheetsH.DecideVacationRequest)

		timesheets.GET("/employee/:id/balances", timesheetsH.Balances)
		timesheets.GET("/employee/:id/report", timesheetsH.Report)
		timesheets.GET("/employees", timesheetsH.ListEmployees)
		timesheets.PUT("/employees/:id", timesheetsH.UpdateEmployee)

		timesheets.GET("/activities", activitiesH.List)
		timesheets.POST("/activities", activitiesH.Create)
	}

	// Activities — public, as the original app serves them
	activities := r.Group("/api/activities")
	{
		activities.GET("", activitiesH.List)
		activities.GET("/active", activitiesH.ListActive)
		activities.POST("", activitiesH.Create)
		activities.PUT("/hide/:id", activitiesH.Hide)
		activities.PUT("/unhide/:id", activitiesH.Unhide)
		activities.PUT("/:id", activitiesH.Update)
		activities.DELETE("/:id", activitiesH.Delete)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
