package container

import (
	"fmt"
	"time"

	"github.com/campusmeet/campusmeet-backend/internal/config"
	"github.com/campusmeet/campusmeet-backend/internal/delivery/http"
	"github.com/campusmeet/campusmeet-backend/internal/delivery/http/handler"
	"github.com/campusmeet/campusmeet-backend/internal/delivery/http/middleware"
	"github.com/campusmeet/campusmeet-backend/internal/infrastructure/database"
	"github.com/campusmeet/campusmeet-backend/internal/infrastructure/gemini"
	"github.com/campusmeet/campusmeet-backend/internal/infrastructure/server"
	"github.com/campusmeet/campusmeet-backend/internal/realtime"
	"github.com/campusmeet/campusmeet-backend/internal/repository/postgres"
	"github.com/campusmeet/campusmeet-backend/internal/usecase/auth"
	"github.com/campusmeet/campusmeet-backend/internal/usecase/feed"
	"github.com/campusmeet/campusmeet-backend/internal/usecase/match"
	"github.com/campusmeet/campusmeet-backend/internal/usecase/message"
	"github.com/campusmeet/campusmeet-backend/internal/usecase/profile"
	"github.com/campusmeet/campusmeet-backend/internal/usecase/swipe"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Bus    *realtime.Bus
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis. Realtime events degrade to no-ops without it.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize Redis: %v\n", err)
			redisClient = nil
		}
	}
	bus := realtime.NewBus(redisClient)

	// Initialize Gemini client. AI icebreakers are optional.
	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize Gemini client: %v\n", err)
			geminiClient = nil
		}
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
	)

	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		userRepo,
	)

	feedUseCase := feed.NewFeedUseCase(
		profileRepo,
		swipeRepo,
	)

	swipeUseCase := swipe.NewSwipeUseCase(
		swipeRepo,
		matchRepo,
		profileRepo,
		bus,
		geminiClient,
	)

	matchUseCase := match.NewMatchUseCase(
		matchRepo,
		messageRepo,
		profileRepo,
	)

	messageUseCase := message.NewMessageUseCase(
		messageRepo,
		matchRepo,
		profileRepo,
		bus,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	feedHandler := handler.NewFeedHandler(feedUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	messageHandler := handler.NewMessageHandler(messageUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		feedHandler,
		swipeHandler,
		matchHandler,
		messageHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Bus:    bus,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Gemini
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
