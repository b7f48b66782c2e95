package handler

import (
	"errors"
	"net/http"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/usecase/swipe"
	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	swipeUseCase *swipe.SwipeUseCase
}

func NewSwipeHandler(swipeUseCase *swipe.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
	}
}

// CreateSwipe handles POST /swipe
// @Summary Record swipe
// @Description Record a like or pass; reports a match when the like is mutual
// @Tags swipe
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body swipe.SwipeRequest true "Swipe data"
// @Success 200 {object} swipe.SwipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /swipe [post]
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req swipe.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.swipeUseCase.RecordSwipe(c.Request.Context(), userID.(string), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotSwipeSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot swipe on yourself",
			})
		case errors.Is(err, domain.ErrInvalidContext):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "context must be friends or dating",
			})
		case errors.Is(err, domain.ErrPhoneNotVerified):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "phone verification required",
			})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to record swipe",
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLikesReceived handles GET /swipe/likes-received
// @Summary Likes received
// @Description List likes received in one context
// @Tags swipe
// @Security BearerAuth
// @Produce json
// @Param context query string true "friends or dating"
// @Success 200 {array} domain.Swipe
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /swipe/likes-received [get]
func (h *SwipeHandler) GetLikesReceived(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	likes, err := h.swipeUseCase.GetLikesReceived(c.Request.Context(), userID.(string), c.Query("context"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidContext) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "context must be friends or dating",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get likes",
		})
		return
	}

	c.JSON(http.StatusOK, likes)
}
