package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	portssvc "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/services"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ofretejaHandler handles HTTP requests for marketplace freight requests.
type ofretejaHandler struct {
	ofretejaService portssvc.OFretejaSvcFacade
}

// newOFretejaHandler creates a new ofretejaHandler.
func newOFretejaHandler(os portssvc.OFretejaSvcFacade) *ofretejaHandler {
	return &ofretejaHandler{ofretejaService: os}
}

// registerOFretejaRoutes registers routes for the marketplace workflow.
func registerOFretejaRoutes(rg *gin.RouterGroup, ofretejaService portssvc.OFretejaSvcFacade) {
	h := newOFretejaHandler(ofretejaService)

	requests := rg.Group("/ofreteja")
	{
		requests.POST("", h.createRequest)
		requests.GET("", h.listRequests)
		requests.GET("/:id", h.getRequest)
		requests.POST("/:id/transition", h.transitionRequest)
		requests.POST("/:id/import", h.importRequest)
	}
}

// TransitionRequestBody names the target workflow status.
type TransitionRequestBody struct {
	Status domain.OFretejaStatus `json:"status" binding:"required"`
}

// createRequest godoc
// @Summary Register a marketplace freight request
// @Description Registers an incoming O FreteJa request in awaiting-review state.
// @Tags ofreteja
// @Accept json
// @Produce json
// @Param request body dto.CreateOFretejaRequest true "Request details"
// @Success 201 {object} dto.OFretejaResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create request"
// @Security BearerAuth
// @Router /ofreteja [post]
func (h *ofretejaHandler) createRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOFretejaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request, err := h.ofretejaService.CreateRequest(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create marketplace request", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToOFretejaResponse(request))
}

// listRequests godoc
// @Summary List marketplace requests
// @Description Lists the caller's O FreteJa requests, newest first.
// @Tags ofreteja
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListOFretejaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list requests"
// @Security BearerAuth
// @Router /ofreteja [get]
func (h *ofretejaHandler) listRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListOFretejaParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	requests, err := h.ofretejaService.ListRequests(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list marketplace requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list requests"})
		return
	}

	resp := dto.ListOFretejaResponse{Requests: make([]dto.OFretejaResponse, len(requests))}
	for i := range requests {
		resp.Requests[i] = dto.ToOFretejaResponse(&requests[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getRequest godoc
// @Summary Get a marketplace request
// @Description Retrieves one of the caller's O FreteJa requests.
// @Tags ofreteja
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} dto.OFretejaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to retrieve request"
// @Security BearerAuth
// @Router /ofreteja/{id} [get]
func (h *ofretejaHandler) getRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request, err := h.ofretejaService.GetRequestByID(c.Request.Context(), requestID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		} else {
			logger.Error("Failed to get marketplace request", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve request"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOFretejaResponse(request))
}

// transitionRequest godoc
// @Summary Move a request through the review workflow
// @Description Applies one workflow transition; illegal moves are rejected.
// @Tags ofreteja
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param transition body TransitionRequestBody true "Target status"
// @Success 200 {object} dto.OFretejaResponse
// @Failure 400 {object} map[string]string "Invalid input format or illegal transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to transition request"
// @Security BearerAuth
// @Router /ofreteja/{id}/transition [post]
func (h *ofretejaHandler) transitionRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	var body TransitionRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request, err := h.ofretejaService.TransitionRequest(c.Request.Context(), requestID, body.Status, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		} else {
			logger.Error("Failed to transition marketplace request", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transition request"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOFretejaResponse(request))
}

// importRequest godoc
// @Summary Import an approved request as a native freight
// @Description Creates a native freight from an approved request using the given split percentages, then marks the request imported.
// @Tags ofreteja
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param import body dto.ImportOFretejaRequest true "Split percentages"
// @Success 201 {object} dto.FreightResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to import request"
// @Security BearerAuth
// @Router /ofreteja/{id}/import [post]
func (h *ofretejaHandler) importRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("id")

	var req dto.ImportOFretejaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	freight, err := h.ofretejaService.ImportRequest(c.Request.Context(), requestID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		} else {
			logger.Error("Failed to import marketplace request", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import request"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToFreightResponse(freight))
}
