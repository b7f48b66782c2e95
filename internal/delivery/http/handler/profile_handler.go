package handler

import (
	"errors"
	"net/http"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// CreateProfile handles POST /profile
// @Summary Create profile
// @Description Create profile and complete onboarding
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.CreateProfileRequest true "Profile creation data"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req profile.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	newProfile, err := h.profileUseCase.CreateProfile(c.Request.Context(), userID.(string), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileAlreadyExists):
			c.JSON(http.StatusConflict, ErrorResponse{
				Error: "profile already exists",
			})
		case errors.Is(err, domain.ErrUnderage):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "must be 18 or older",
			})
		case errors.Is(err, domain.ErrTooManyPhotos):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "too many photos",
			})
		case errors.Is(err, domain.ErrTooManyBadges):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "too many badges",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to create profile",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, newProfile)
}

// GetMyProfile handles GET /profile/me
// @Summary Get my profile
// @Description Get current user's profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	p, err := h.profileUseCase.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get profile",
		})
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateMyProfile handles PUT /profile/me
// @Summary Update my profile
// @Description Update current user's profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body profile.UpdateProfileRequest true "Profile update data"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	updatedProfile, err := h.profileUseCase.UpdateProfile(c.Request.Context(), userID.(string), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
		case errors.Is(err, domain.ErrTooManyPhotos):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "too many photos",
			})
		case errors.Is(err, domain.ErrTooManyBadges):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "too many badges",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to update profile",
			})
		}
		return
	}

	c.JSON(http.StatusOK, updatedProfile)
}

// GetProfileByUserID handles GET /profile/:user_id
// @Summary Get user profile
// @Description Get another user's profile by user ID
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/{user_id} [get]
func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	_, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	targetUserID := c.Param("user_id")
	p, err := h.profileUseCase.GetProfile(c.Request.Context(), targetUserID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get profile",
		})
		return
	}

	c.JSON(http.StatusOK, p)
}

// VerifyPhone handles POST /profile/verify-phone
// @Summary Verify phone
// @Description Mark the user's phone as verified
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/verify-phone [post]
func (h *ProfileHandler) VerifyPhone(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	if err := h.profileUseCase.VerifyPhone(c.Request.Context(), userID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to verify phone",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "phone verified",
	})
}

// VerifySchool handles POST /profile/verify-school
// @Summary Verify school
// @Description Mark the user's school affiliation as verified
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/verify-school [post]
func (h *ProfileHandler) VerifySchool(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	if err := h.profileUseCase.VerifySchool(c.Request.Context(), userID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to verify school",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "school verified",
	})
}

// DeleteAccount handles DELETE /profile/me
// @Summary Delete account
// @Description Delete the account with its profile, swipes, matches and messages
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profile/me [delete]
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	if err := h.profileUseCase.DeleteAccount(c.Request.Context(), userID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to delete account",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "account deleted",
	})
}
