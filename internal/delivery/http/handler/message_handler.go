package handler

import (
	"errors"
	"net/http"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/usecase/message"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUseCase *message.MessageUseCase
}

func NewMessageHandler(messageUseCase *message.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

// SendMessage handles POST /matches/:match_id/messages
// @Summary Send message
// @Description Send a message within a match
// @Tags message
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match_id path string true "Match ID"
// @Param request body message.SendRequest true "Message data"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/{match_id}/messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req message.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	msg, err := h.messageUseCase.Send(c.Request.Context(), userID.(string), c.Param("match_id"), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "message text is empty",
			})
		case errors.Is(err, domain.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "match not found",
			})
		case errors.Is(err, domain.ErrNotMatchMember):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "not a member of this match",
			})
		case errors.Is(err, domain.ErrPhoneNotVerified):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "phone verification required",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to send message",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListMessages handles GET /matches/:match_id/messages
// @Summary List messages
// @Description List a match's messages in chronological order
// @Tags message
// @Security BearerAuth
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {array} domain.Message
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/{match_id}/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	messages, err := h.messageUseCase.List(c.Request.Context(), userID.(string), c.Param("match_id"))
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
				Error: "failed to list messages",
			})
		}
		return
	}

	c.JSON(http.StatusOK, messages)
}
