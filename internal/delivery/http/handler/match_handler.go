package handler

import (
	"errors"
	"net/http"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// ListMatches handles GET /matches
// @Summary List matches
// @Description List the user's matches across both contexts
// @Tags match
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Match
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	matches, err := h.matchUseCase.ListMatches(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list matches",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// Unmatch handles DELETE /matches/:match_id
// @Summary Unmatch
// @Description Delete a match and its messages
// @Tags match
// @Security BearerAuth
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/{match_id} [delete]
func (h *MatchHandler) Unmatch(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	err := h.matchUseCase.Unmatch(c.Request.Context(), userID.(string), c.Param("match_id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "match not found",
			})
		case errors.Is(err, domain.ErrNotMatchMember):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "not a member of this match",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to unmatch",
			})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "unmatched",
	})
}

// BlockRequest represents a block action
type BlockRequest struct {
	TargetID string `json:"target_id" binding:"required"`
}

// Block handles POST /matches/block
// @Summary Block user
// @Description Block a user and destroy any matches with them
// @Tags match
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body BlockRequest true "Block data"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/block [post]
func (h *MatchHandler) Block(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	err := h.matchUseCase.Block(c.Request.Context(), userID.(string), req.TargetID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotBlockSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "cannot block yourself",
			})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to block user",
			})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "user blocked",
	})
}
