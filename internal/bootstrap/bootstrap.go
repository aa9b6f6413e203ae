// Package bootstrap wires configuration, database, repositories, services,
// controllers and routes together.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rahulm/campusdesk/internal/app/controllers"
	appMigrations "github.com/rahulm/campusdesk/internal/app/migrations"
	appRepos "github.com/rahulm/campusdesk/internal/app/repositories"
	appRoutes "github.com/rahulm/campusdesk/internal/app/routes"
	appServices "github.com/rahulm/campusdesk/internal/app/services"
	"github.com/rahulm/campusdesk/internal/config"
	"github.com/rahulm/campusdesk/internal/db"
	appMiddleware "github.com/rahulm/campusdesk/internal/middleware"
	pkgAuth "github.com/rahulm/campusdesk/internal/pkg/auth"
	"github.com/rahulm/campusdesk/internal/pkg/helpers"
	"github.com/rahulm/campusdesk/internal/pkg/logger"
	"github.com/rahulm/campusdesk/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	AccountService       *appServices.AccountService
	StudentService       *appServices.StudentService
	StaffService         *appServices.StaffService
	AttendanceService    *appServices.AttendanceService
	MarksService         *appServices.MarksService
	GrievanceService     *appServices.GrievanceService
	AuthController       *appControllers.AuthController
	StudentController    *appControllers.StudentController
	StaffController      *appControllers.StaffController
	AttendanceController *appControllers.AttendanceController
	MarksController      *appControllers.MarksController
	GrievanceController  *appControllers.GrievanceController
	AccountController    *appControllers.AccountController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	runInTx := func(ctx context.Context, fn db.TransactionFn) error {
		return db.WithTransaction(ctx, dbPool, fn)
	}

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.AccountRepository,
		deps.Repos.StudentRepository,
		deps.Repos.StaffRepository,
		deps.JWTService,
		dbPool,
		runInTx,
	)
	deps.AccountService = appServices.NewAccountService(
		deps.Repos.AccountRepository,
		deps.Repos.StudentRepository,
		deps.Repos.StaffRepository,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.AccountRepository,
		runInTx,
	)
	deps.StaffService = appServices.NewStaffService(
		deps.Repos.StaffRepository,
		deps.Repos.AccountRepository,
		runInTx,
	)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.AttendanceRepository,
		deps.Repos.StudentRepository,
	)
	deps.MarksService = appServices.NewMarksService(
		deps.Repos.MarksRepository,
		deps.Repos.StudentRepository,
	)
	deps.GrievanceService = appServices.NewGrievanceService(deps.Repos.GrievanceRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(
		deps.JWTService,
		deps.Repos.AccountRepository,
		deps.Repos.StudentRepository,
		deps.Repos.StaffRepository,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.AuthService, lgr)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService, deps.AuthService, lgr)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService, lgr)
	deps.MarksController = appControllers.NewMarksController(deps.MarksService, lgr)
	deps.GrievanceController = appControllers.NewGrievanceController(deps.GrievanceService, lgr)
	deps.AccountController = appControllers.NewAccountController(deps.AccountService, lgr)

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

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORS.AllowedOrigin}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.StaffController,
		deps.AttendanceController,
		deps.MarksController,
		deps.GrievanceController,
		deps.AccountController,
		deps.AuthMiddleware,
	)

	return router
}
