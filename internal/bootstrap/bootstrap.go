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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appControllers "github.com/genius/elearning/internal/app/controllers"
	appMigrations "github.com/genius/elearning/internal/app/migrations"
	appModels "github.com/genius/elearning/internal/app/models"
	appRepos "github.com/genius/elearning/internal/app/repositories"
	appRoutes "github.com/genius/elearning/internal/app/routes"
	appServices "github.com/genius/elearning/internal/app/services"
	"github.com/genius/elearning/internal/config"
	"github.com/genius/elearning/internal/db"
	appMiddleware "github.com/genius/elearning/internal/middleware"
	pkgAuth "github.com/genius/elearning/internal/pkg/auth"
	"github.com/genius/elearning/internal/pkg/cache"
	"github.com/genius/elearning/internal/pkg/filestorage"
	"github.com/genius/elearning/internal/pkg/helpers"
	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/genius/elearning/internal/pkg/telemetry"
	"github.com/genius/elearning/internal/pkg/validation"
	"github.com/genius/elearning/internal/pkg/websocket"
	"github.com/genius/elearning/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	UserCache      *cache.UserCache
	RedisClient    *redis.Client
	FileStorage    *filestorage.LocalStorage
	Hub            *websocket.Hub
	WSHandler      *websocket.Handler
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger

	stopHub context.CancelFunc
}

// Close stops the websocket hub and releases the Redis connection
func (d *Dependencies) Close() {
	if d.stopHub != nil {
		d.stopHub()
	}
	if d.UserCache != nil {
		if err := d.UserCache.Close(); err != nil {
			d.Logger.Error().Err(err).Msg("Failed to close redis client")
		}
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: cfg.Telemetry.ServiceName,
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupTelemetry installs the OpenTelemetry tracer provider when an OTLP endpoint is configured.
func SetupTelemetry(cfg *config.Config, lgr zerolog.Logger) (func(context.Context) error, error) {
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize tracing")
		return nil, err
	}
	if cfg.Telemetry.OTLPEndpoint != "" {
		lgr.Info().Str("endpoint", cfg.Telemetry.OTLPEndpoint).Msg("Tracing enabled")
	}
	return shutdown, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// SeedDefaults creates the default educational levels and admin account.
func SeedDefaults(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := seed.CreateDefaultData(ctx, repos.EducationalLevelRepository, repos.UserRepository, cfg.Seed, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if err := validation.RegisterBindingValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	fileStorageBaseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.RedisClient, err = cache.NewRedisClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to redis")
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	deps.UserCache = cache.NewUserCache(deps.RedisClient, helpers.ParseDuration(cfg.Redis.UserCacheTTL, cache.DefaultUserTTL))

	hubCtx, stopHub := context.WithCancel(context.Background())
	deps.stopHub = stopHub
	deps.Hub = websocket.NewHub(lgr)
	go deps.Hub.Run(hubCtx)
	deps.WSHandler = websocket.NewHandler(deps.Hub, cfg.Server.AllowedOrigins, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 168*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository, deps.UserCache)

	repos := deps.Repos
	notificationService := appServices.NewNotificationService(repos.NotificationRepository, repos.UserRepository, deps.Hub, lgr)
	authService := appServices.NewAuthService(repos.UserRepository, repos.EducationalLevelRepository, deps.JWTService, deps.UserCache, lgr)
	userService := appServices.NewUserService(repos.UserRepository, repos.EducationalLevelRepository, deps.UserCache, lgr)
	levelService := appServices.NewEducationalLevelService(repos.EducationalLevelRepository, lgr)
	courseService := appServices.NewCourseService(repos.CourseRepository, repos.EducationalLevelRepository, lgr)
	lessonService := appServices.NewLessonService(repos.LessonRepository, repos.CourseRepository, repos.SubscriptionRepository, lgr)
	assessmentService := appServices.NewAssessmentService(repos.AssessmentRepository, repos.CourseRepository, repos.LessonRepository, lgr)
	questionService := appServices.NewQuestionService(repos.QuestionRepository, repos.AssessmentRepository, lgr)
	gradingService := appServices.NewGradingService(repos.AssessmentRepository, repos.QuestionRepository, repos.SubmissionRepository, notificationService, lgr)
	subscriptionService := appServices.NewSubscriptionService(repos.SubscriptionRepository, repos.CourseRepository, notificationService, lgr)
	noteService := appServices.NewNoteService(repos.NoteRepository, lgr)
	uploadService := appServices.NewUploadService(deps.FileStorage, repos.FileRepository, lgr)
	statsService := appServices.NewStatsService(repos.StatsRepository)

	deps.Controllers = appRoutes.Controllers{
		Auth:             appControllers.NewAuthController(authService, lgr),
		User:             appControllers.NewUserController(userService),
		EducationalLevel: appControllers.NewEducationalLevelController(levelService),
		Course:           appControllers.NewCourseController(courseService, lessonService),
		Lesson:           appControllers.NewLessonController(lessonService),
		Exam:             appControllers.NewAssessmentController(appModels.KindExam, assessmentService, questionService, gradingService),
		Assignment:       appControllers.NewAssessmentController(appModels.KindAssignment, assessmentService, questionService, gradingService),
		Question:         appControllers.NewQuestionController(questionService),
		Subscription:     appControllers.NewSubscriptionController(subscriptionService, uploadService),
		Notification:     appControllers.NewNotificationController(notificationService),
		Note:             appControllers.NewNoteController(noteService),
		Admin:            appControllers.NewAdminController(uploadService, statsService),
	}

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
	router.Use(
		gin.Recovery(),
		appMiddleware.Tracing(telemetry.Tracer()),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.WSHandler)

	return router
}
