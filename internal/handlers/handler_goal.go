package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	portssvc "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/services"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests related to the monthly goal.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// newGoalHandler creates a new goalHandler.
func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{goalService: gs}
}

// registerGoalRoutes registers routes related to goal tracking.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goal := rg.Group("/goal")
	{
		goal.GET("/summary", h.getGoalSummary)
		goal.POST("/history", h.snapshotGoal)
		goal.DELETE("/history/:id", h.deleteGoalHistoryEntry)
	}
}

// getGoalSummary godoc
// @Summary Get goal progress and history
// @Description Returns the current month's progress against the live goal plus the reconstructed six-month history.
// @Tags goal
// @Produce json
// @Success 200 {object} dto.GoalSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute goal summary"
// @Security BearerAuth
// @Router /goal/summary [get]
func (h *goalHandler) getGoalSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	progress, history, err := h.goalService.GetGoalSummary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute goal summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute goal summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalSummaryResponse(progress, history))
}

// snapshotGoal godoc
// @Summary Snapshot the live goal for a month
// @Description Records the live monthly goal against a "YYYY-MM" month so later history reads stay correct.
// @Tags goal
// @Accept json
// @Produce json
// @Param snapshot body dto.SnapshotGoalRequest true "Month to snapshot"
// @Success 201 {object} dto.GoalHistoryEntryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save goal snapshot"
// @Security BearerAuth
// @Router /goal/history [post]
func (h *goalHandler) snapshotGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SnapshotGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.goalService.SnapshotGoal(c.Request.Context(), userID, req.Month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save goal snapshot", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save goal snapshot"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToGoalHistoryEntryResponse(entry))
}

// deleteGoalHistoryEntry godoc
// @Summary Delete a goal snapshot
// @Description Removes one goal snapshot. The underlying freight records are untouched.
// @Tags goal
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Snapshot not found"
// @Failure 500 {object} map[string]string "Failed to delete goal snapshot"
// @Security BearerAuth
// @Router /goal/history/{id} [delete]
func (h *goalHandler) deleteGoalHistoryEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.goalService.DeleteGoalHistoryEntry(c.Request.Context(), entryID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Snapshot not found"})
		} else {
			logger.Error("Failed to delete goal snapshot", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal snapshot"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
