package api

import (
	"net/http"

	resdto "court-reserve/internal/handler/dto/response"
	"court-reserve/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CourtHandler struct {
	courtUseCase usecase.CourtUseCase
}

func NewCourtHandler(courtUseCase usecase.CourtUseCase) *CourtHandler {
	return &CourtHandler{
		courtUseCase: courtUseCase,
	}
}

// @Summary List courts
// @Description List courts open for booking
// @Tags courts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CourtResponse
// @Failure 401 {object} map[string]string
// @Router /courts [get]
func (h *CourtHandler) ListCourts(c *gin.Context) {
	courts, err := h.courtUseCase.ListCourts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourtRMs(courts))
}
