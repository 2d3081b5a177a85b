package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/adith/hostelcore/internal/app/controllers"
	"github.com/adith/hostelcore/internal/app/queries"
	appRoutes "github.com/adith/hostelcore/internal/app/routes"
	appServices "github.com/adith/hostelcore/internal/app/services"
	"github.com/adith/hostelcore/internal/config"
	appMiddleware "github.com/adith/hostelcore/internal/middleware"
	pkgAuth "github.com/adith/hostelcore/internal/pkg/auth"
	"github.com/adith/hostelcore/internal/pkg/logger"
	"github.com/adith/hostelcore/internal/pkg/validation"
	"github.com/adith/hostelcore/internal/pkg/websocket"
	"github.com/adith/hostelcore/internal/seed"
	"github.com/adith/hostelcore/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store   *store.Store
	Queries *queries.Queries

	AuthService         *appServices.AuthService
	StudentService      *appServices.StudentService
	RoomService         *appServices.RoomService
	ComplaintService    *appServices.ComplaintService
	LeaveService        *appServices.LeaveService
	NotificationService *appServices.NotificationService
	StaffService        *appServices.StaffService
	RecordsService      *appServices.RecordsService

	AuthController         *appControllers.AuthController
	StudentController      *appControllers.StudentController
	RoomController         *appControllers.RoomController
	ComplaintController    *appControllers.ComplaintController
	LeaveController        *appControllers.LeaveController
	NotificationController *appControllers.NotificationController
	StaffController        *appControllers.StaffController
	DashboardController    *appControllers.DashboardController
	RecordsController      *appControllers.RecordsController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Hub            *websocket.Hub
	WSHandler      *websocket.Handler
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore creates the in-memory store and seeds it when enabled.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, error) {
	s := store.New()

	if cfg.Hostel.Seed {
		if err := seed.CreateDefaultData(s, cfg, lgr); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// BuildDependencies initializes queries, services, and controllers.
func BuildDependencies(cfg *config.Config, s *store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: s, Logger: lgr}

	if err := validation.RegisterCustomValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	deps.Queries = queries.New(s)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(s, deps.Queries, deps.JWTService)
	deps.StudentService = appServices.NewStudentService(s, deps.Queries)
	deps.RoomService = appServices.NewRoomService(s, deps.Queries)
	deps.ComplaintService = appServices.NewComplaintService(s, deps.Queries)
	deps.LeaveService = appServices.NewLeaveService(s, deps.Queries)
	deps.NotificationService = appServices.NewNotificationService(s)
	deps.StaffService = appServices.NewStaffService(s)
	deps.RecordsService = appServices.NewRecordsService(s, deps.Queries)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.Queries)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService, deps.Queries, s)
	deps.ComplaintController = appControllers.NewComplaintController(deps.ComplaintService, deps.Queries, s)
	deps.LeaveController = appControllers.NewLeaveController(deps.LeaveService, deps.Queries, s)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService, deps.Queries)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService, deps.Queries, s)
	deps.DashboardController = appControllers.NewDashboardController(deps.Queries)
	deps.RecordsController = appControllers.NewRecordsController(deps.RecordsService, deps.Queries, s)

	deps.Hub = websocket.NewHub(s, lgr)
	deps.WSHandler = websocket.NewHandler(deps.Hub, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.RoomController,
		deps.ComplaintController,
		deps.LeaveController,
		deps.NotificationController,
		deps.StaffController,
		deps.DashboardController,
		deps.RecordsController,
		deps.WSHandler,
		deps.AuthMiddleware,
	)

	// Liveness endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
