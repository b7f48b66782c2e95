package handler

import (
	"errors"
	"net/http"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/usecase/feed"
	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
	}
}

// GetCandidates handles GET /feed/candidates
// @Summary Get swipe deck
// @Description Get eligible candidates for one context with compatibility scores
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Param context query string true "friends or dating"
// @Success 200 {array} feed.CandidateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feed/candidates [get]
func (h *FeedHandler) GetCandidates(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	candidates, err := h.feedUseCase.Candidates(c.Request.Context(), userID.(string), c.Query("context"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidContext) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "context must be friends or dating",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to build feed",
		})
		return
	}

	c.JSON(http.StatusOK, candidates)
}
