package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/services"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// closureHandler handles HTTP requests related to monthly closures.
type closureHandler struct {
	closureService portssvc.ClosureSvcFacade
}

// newClosureHandler creates a new closureHandler.
func newClosureHandler(cs portssvc.ClosureSvcFacade) *closureHandler {
	return &closureHandler{closureService: cs}
}

// registerClosureRoutes registers routes related to monthly closures.
func registerClosureRoutes(rg *gin.RouterGroup, closureService portssvc.ClosureSvcFacade) {
	h := newClosureHandler(closureService)

	closure := rg.Group("/closure")
	{
		closure.GET("", h.getMonthlyClosure)
		closure.GET("/export.xlsx", h.exportClosureXLSX)
	}
}

// getMonthlyClosure godoc
// @Summary Get the monthly closure
// @Description Reduces one month's freights and expenses into the per-fund breakdown with nets.
// @Tags closure
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.ClosureResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build closure"
// @Security BearerAuth
// @Router /closure [get]
func (h *closureHandler) getMonthlyClosure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ClosureParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	closure, err := h.closureService.GetMonthlyClosure(c.Request.Context(), userID, params.Year, time.Month(params.Month))
	if err != nil {
		logger.Error("Failed to build closure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build closure"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClosureResponse(closure))
}

// exportClosureXLSX godoc
// @Summary Export the monthly closure as a spreadsheet
// @Description Renders the closure as a printable XLSX statement.
// @Tags closure
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to export closure"
// @Security BearerAuth
// @Router /closure/export.xlsx [get]
func (h *closureHandler) exportClosureXLSX(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ClosureParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	data, filename, err := h.closureService.ExportClosureXLSX(c.Request.Context(), userID, params.Year, time.Month(params.Month))
	if err != nil {
		logger.Error("Failed to export closure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export closure"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
