package api

import (
	"errors"
	"net/http"

	reqdto "court-reserve/internal/handler/dto/request"
	resdto "court-reserve/internal/handler/dto/response"
	"court-reserve/internal/handler/middleware"
	"court-reserve/internal/pkg/config"
	"court-reserve/internal/pkg/cookie"
	"court-reserve/internal/pkg/guard"
	"court-reserve/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	cookieCfg      config.CookieConfig
}

func NewAccountHandler(accountUseCase usecase.AccountUseCase, cookieCfg config.CookieConfig) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		cookieCfg:      cookieCfg,
	}
}

// @Summary Request account deletion
// @Description Start account deletion; returns a confirmation token that must be presented to execute it
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TokenIssuedResponse
// @Failure 401 {object} map[string]string
// @Router /account/delete-request [post]
func (h *AccountHandler) RequestDeletion(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	token, err := h.accountUseCase.RequestDeletion(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.TokenIssuedResponse{
		Message: "Deletion requested; confirm with the issued token to proceed",
		Token:   token,
	})
}

// @Summary Confirm account deletion
// @Description Execute account deletion with the confirmation token; removes reservations, profile and identity
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AccountDeleteRequest true "Deletion confirmation"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /account/delete [post]
func (h *AccountHandler) ConfirmDeletion(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.AccountDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.accountUseCase.ConfirmDeletion(c.Request.Context(), userID, req.Token); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidOrExpiredToken):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
		case errors.Is(err, guard.ErrRequestInFlight):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Deletion already in progress",
			})
		case errors.Is(err, usecase.ErrDeletionIncomplete):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Account deletion could not be completed; the account is still active",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Account deleted"})
}
