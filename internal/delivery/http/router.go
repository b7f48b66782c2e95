package http

import (
	"regexp"

	"github.com/campusmeet/campusmeet-backend/internal/delivery/http/handler"
	"github.com/campusmeet/campusmeet-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func validPhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

type Router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	feedHandler    *handler.FeedHandler
	swipeHandler   *handler.SwipeHandler
	matchHandler   *handler.MatchHandler
	messageHandler *handler.MessageHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	feedHandler *handler.FeedHandler,
	swipeHandler *handler.SwipeHandler,
	matchHandler *handler.MatchHandler,
	messageHandler *handler.MessageHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		feedHandler:    feedHandler,
		swipeHandler:   swipeHandler,
		matchHandler:   matchHandler,
		messageHandler: messageHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", validPhone)
	}

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.POST("", r.profileHandler.CreateProfile)
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.DELETE("/me", r.profileHandler.DeleteAccount)
				profile.POST("/verify-phone", r.profileHandler.VerifyPhone)
				profile.POST("/verify-school", r.profileHandler.VerifySchool)
				profile.GET("/:user_id", r.profileHandler.GetProfileByUserID)
			}

			// Feed routes
			feed := protected.Group("/feed")
			{
				feed.GET("/candidates", r.feedHandler.GetCandidates)
			}

			// Swipe routes
			swipe := protected.Group("/swipe")
			{
				swipe.POST("", r.swipeHandler.CreateSwipe)
				swipe.GET("/likes-received", r.swipeHandler.GetLikesReceived)
			}

			// Match routes
			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.ListMatches)
				matches.POST("/block", r.matchHandler.Block)
				matches.DELETE("/:match_id", r.matchHandler.Unmatch)
				matches.POST("/:match_id/messages", r.messageHandler.SendMessage)
				matches.GET("/:match_id/messages", r.messageHandler.ListMessages)
			}
		}
	}

	return router
}
