package handlers

import (
	"net/http"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/utils/calendar"
	"github.com/gin-gonic/gin"
)

// CalendarParams selects the month to lay out.
type CalendarParams struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// registerCalendarRoutes registers the month-grid route used by date pickers.
func registerCalendarRoutes(rg *gin.RouterGroup) {
	rg.GET("/calendar", getCalendarGrid)
}

// getCalendarGrid godoc
// @Summary Get the month day grid
// @Description Returns the Sunday-first cell grid for one month, leading blanks included.
// @Tags calendar
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {array} calendar.Cell
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /calendar [get]
func getCalendarGrid(c *gin.Context) {
	var params CalendarParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, calendar.MonthGrid(params.Year, time.Month(params.Month)))
}
