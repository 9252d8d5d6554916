package router

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"edumarket/internal/api/v1/handler"
	"edumarket/internal/config"
	"edumarket/internal/middleware"
	"edumarket/internal/repository"
	"edumarket/internal/security"
	"edumarket/internal/service"

	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New wires the full request path: DB pool, repositories, services, handlers
// and middleware. The returned *sql.DB is owned by the caller.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	// 1. Open DB connection (connection pooling)
	dsn := cfg.DatabaseURL
	// In a development environment, ensure that SSL is disabled for local
	// testing. In production, the connection string should be provided with
	// the correct SSL settings.
	if cfg.Environment == "development" && !strings.Contains(dsn, "sslmode") {
		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}
		dsn += separator + "sslmode=disable"
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Error().Msgf("Failed to open DB connection: %v", err)
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		logger.Error().Msgf("Failed to ping DB: %v", err)
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	// Set reasonable connection pool limits
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	// 2. Initialize validator and security primitives
	validate := validator.New(validator.WithRequiredStructEnabled())
	hasher := security.NewPasswordHasher()
	tokens := security.NewTokenManager(cfg.JWTSecret)

	// 3. Initialize repositories & services & handlers
	accountRepo := repository.NewAccountRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	institutionRepo := repository.NewInstitutionRepo(db)
	profileRepo := repository.NewProfileRepo(db)

	authSvc := service.NewAuthService(accountRepo, hasher, tokens)
	courseSvc := service.NewCourseService(courseRepo)
	institutionSvc := service.NewInstitutionService(institutionRepo)
	userSvc := service.NewUserService(accountRepo, profileRepo)

	authHandler := handler.NewAuthHandler(authSvc, validate, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, logger)
	institutionHandler := handler.NewInstitutionHandler(institutionSvc, logger)
	userHandler := handler.NewUserHandler(userSvc, validate, logger)

	// 4. Initialize middleware
	authMiddleware := middleware.AuthMiddleware(tokens)

	// 5. Create ServeMux router and mount the API under /api
	apiMux := http.NewServeMux()
	authHandler.RegisterRoutes(apiMux)
	courseHandler.RegisterRoutes(apiMux)
	institutionHandler.RegisterRoutes(apiMux)
	userHandler.RegisterRoutes(apiMux, authMiddleware)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))

	// 6. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(c.Handler(mux)), db, nil
}
