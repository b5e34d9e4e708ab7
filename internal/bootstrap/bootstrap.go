package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rkabir/profscope/internal/app/controllers"
	appMigrations "github.com/rkabir/profscope/internal/app/migrations"
	appRepos "github.com/rkabir/profscope/internal/app/repositories"
	appRoutes "github.com/rkabir/profscope/internal/app/routes"
	appServices "github.com/rkabir/profscope/internal/app/services"
	"github.com/rkabir/profscope/internal/config"
	"github.com/rkabir/profscope/internal/db"
	appMiddleware "github.com/rkabir/profscope/internal/middleware"
	pkgAuth "github.com/rkabir/profscope/internal/pkg/auth"
	"github.com/rkabir/profscope/internal/pkg/logger"
	"github.com/rkabir/profscope/internal/scraper"
	"github.com/rkabir/profscope/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService          *appServices.UserService
	DepartmentService    *appServices.DepartmentService
	CourseService        *appServices.CourseService
	ProfessorService     *appServices.ProfessorService
	ReviewService        *appServices.ReviewService
	FacultySyncService   *appServices.FacultySyncService
	AuthController       *appControllers.AuthController
	FacultyController    *appControllers.FacultyController
	DepartmentController *appControllers.DepartmentController
	CourseController     *appControllers.CourseController
	ProfessorController  *appControllers.ProfessorController
	ReviewController     *appControllers.ReviewController
	AdminController      *appControllers.AdminController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	Verifier             *pkgAuth.Verifier
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
// seeds the baseline catalog.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

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

	deps.Verifier = pkgAuth.NewVerifier(pkgAuth.Config{
		Secret: cfg.Identity.Secret,
		Issuer: cfg.Identity.Issuer,
	})

	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.ReviewRepository,
	)
	deps.ProfessorService = appServices.NewProfessorService(
		deps.Repos.ProfessorRepository,
		deps.Repos.ReviewRepository,
	)
	deps.ReviewService = appServices.NewReviewService(
		deps.Repos.ReviewRepository,
		deps.Repos.ProfessorRepository,
		deps.Repos.CourseRepository,
	)
	deps.FacultySyncService = appServices.NewFacultySyncService(
		scraper.New(cfg),
		deps.Repos.ProfessorRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Verifier, deps.UserService)

	deps.AuthController = appControllers.NewAuthController(deps.UserService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultySyncService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)
	deps.ReviewController = appControllers.NewReviewController(deps.ReviewService)
	deps.AdminController = appControllers.NewAdminController(dbPool)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.FacultyController,
		deps.DepartmentController,
		deps.CourseController,
		deps.ProfessorController,
		deps.ReviewController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
