package api

import (
	"errors"
	"net/http"

	"court-reserve/internal/domain/user"
	reqdto "court-reserve/internal/handler/dto/request"
	"court-reserve/internal/handler/middleware"
	"court-reserve/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// @Summary Get profile
// @Description Get the current user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} readmodel.ProfileRM
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	profile, err := h.profileUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Profile not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Update profile
// @Description Update the current user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} readmodel.ProfileRM
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	profile, err := h.profileUseCase.UpdateProfile(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Profile not found",
			})
		case errors.Is(err, user.ErrEmptyFullName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Full name is required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}
