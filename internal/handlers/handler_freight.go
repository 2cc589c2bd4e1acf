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

// freightHandler handles HTTP requests related to freights.
type freightHandler struct {
	freightService portssvc.FreightSvcFacade
}

// newFreightHandler creates a new freightHandler.
func newFreightHandler(fs portssvc.FreightSvcFacade) *freightHandler {
	return &freightHandler{freightService: fs}
}

// registerFreightRoutes registers routes related to freights.
func registerFreightRoutes(rg *gin.RouterGroup, freightService portssvc.FreightSvcFacade) {
	h := newFreightHandler(freightService)

	freights := rg.Group("/freights")
	{
		freights.POST("", h.createFreight)
		freights.GET("", h.listFreights)
		freights.GET("/feed", h.getFreightFeed)
		freights.GET("/:id", h.getFreight)
		freights.PUT("/:id", h.updateFreight)
		freights.DELETE("/:id", h.deleteFreight)
	}
}

// createFreight godoc
// @Summary Create a new freight
// @Description Creates a freight, computing and freezing the split values and payment status.
// @Tags freights
// @Accept json
// @Produce json
// @Param freight body dto.SaveFreightRequest true "Freight details"
// @Success 201 {object} dto.SaveFreightResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create freight"
// @Security BearerAuth
// @Router /freights [post]
func (h *freightHandler) createFreight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveFreightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createFreight", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	freight, warning, err := h.freightService.CreateFreight(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create freight", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create freight"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.SaveFreightResponse{
		Freight: dto.ToFreightResponse(freight),
		Warning: warning,
	})
}

// listFreights godoc
// @Summary List freights
// @Description Lists the caller's freights, by month when year and month are given, otherwise paginated newest first.
// @Tags freights
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Param year query int false "Filter year"
// @Param month query int false "Filter month (1-12)"
// @Success 200 {object} dto.ListFreightsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list freights"
// @Security BearerAuth
// @Router /freights [get]
func (h *freightHandler) listFreights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListFreightsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	freights, err := h.freightService.ListFreights(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to list freights", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list freights"})
		return
	}

	resp := dto.ListFreightsResponse{Freights: make([]dto.FreightResponse, len(freights))}
	for i := range freights {
		resp.Freights[i] = dto.ToFreightResponse(&freights[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getFreightFeed godoc
// @Summary Get the merged freight feed
// @Description Returns native freights and marketplace requests as one date-descending listing.
// @Tags freights
// @Produce json
// @Success 200 {array} dto.FreightFeedItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build freight feed"
// @Security BearerAuth
// @Router /freights/feed [get]
func (h *freightHandler) getFreightFeed(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	items, err := h.freightService.GetFreightFeed(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build freight feed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build freight feed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFreightFeedResponse(items))
}

// getFreight godoc
// @Summary Get a freight by ID
// @Description Retrieves one of the caller's freights.
// @Tags freights
// @Produce json
// @Param id path string true "Freight ID"
// @Success 200 {object} dto.FreightResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Freight not found"
// @Failure 500 {object} map[string]string "Failed to retrieve freight"
// @Security BearerAuth
// @Router /freights/{id} [get]
func (h *freightHandler) getFreight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	freightID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	freight, err := h.freightService.GetFreightByID(c.Request.Context(), freightID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Freight not found"})
		} else {
			logger.Error("Failed to get freight", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve freight"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFreightResponse(freight))
}

// updateFreight godoc
// @Summary Update a freight
// @Description Fully replaces a freight, re-deriving split values and payment status from the request.
// @Tags freights
// @Accept json
// @Produce json
// @Param id path string true "Freight ID"
// @Param freight body dto.SaveFreightRequest true "Freight details"
// @Success 200 {object} dto.SaveFreightResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Freight not found"
// @Failure 500 {object} map[string]string "Failed to update freight"
// @Security BearerAuth
// @Router /freights/{id} [put]
func (h *freightHandler) updateFreight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	freightID := c.Param("id")

	var req dto.SaveFreightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	freight, warning, err := h.freightService.UpdateFreight(c.Request.Context(), freightID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Freight not found"})
		} else {
			logger.Error("Failed to update freight", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update freight"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SaveFreightResponse{
		Freight: dto.ToFreightResponse(freight),
		Warning: warning,
	})
}

// deleteFreight godoc
// @Summary Delete a freight
// @Description Removes one of the caller's freights.
// @Tags freights
// @Produce json
// @Param id path string true "Freight ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Freight not found"
// @Failure 500 {object} map[string]string "Failed to delete freight"
// @Security BearerAuth
// @Router /freights/{id} [delete]
func (h *freightHandler) deleteFreight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	freightID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.freightService.DeleteFreight(c.Request.Context(), freightID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Freight not found"})
		} else {
			logger.Error("Failed to delete freight", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete freight"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
