package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tracknest/timetrack_app/internal/apperrors"
	portssvc "github.com/tracknest/timetrack_app/internal/core/ports/services"
	"github.com/tracknest/timetrack_app/internal/dto"
	"github.com/tracknest/timetrack_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// referenceHandler handles HTTP requests for the reference data time
// entries point at: projects, areas of focus and cost codes.
type referenceHandler struct {
	referenceService portssvc.ReferenceSvcFacade
}

func newReferenceHandler(rs portssvc.ReferenceSvcFacade) *referenceHandler {
	return &referenceHandler{
		referenceService: rs,
	}
}

// registerReferenceRoutes registers all reference-data routes.
func registerReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceSvcFacade) {
	h := newReferenceHandler(referenceService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
	}

	areas := rg.Group("/areas-of-focus")
	{
		areas.POST("", h.createArea)
		areas.GET("", h.listAreas)
		areas.GET("/:id", h.getArea)
		areas.PUT("/:id", h.updateArea)
	}

	costCodes := rg.Group("/cost-codes")
	{
		costCodes.POST("", h.createCostCode)
		costCodes.GET("", h.listCostCodes)
		costCodes.GET("/:code", h.getCostCode)
		costCodes.PUT("/:code", h.updateCostCode)
	}
}

// createProject godoc
// @Summary Create a project
// @Tags reference-data
// @Accept  json
// @Produce  json
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create project"
// @Security BearerAuth
// @Router /projects [post]
func (h *referenceHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	project, err := h.referenceService.CreateProject(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create project", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects
// @Tags reference-data
// @Produce  json
// @Param   includeInactive query bool false "Include inactive projects" default(false)
// @Success 200 {array} dto.ProjectResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list projects"
// @Security BearerAuth
// @Router /projects [get]
func (h *referenceHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	projects, err := h.referenceService.ListProjects(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Error("Failed to list projects", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponses(projects))
}

// getProject godoc
// @Summary Get a project
// @Tags reference-data
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to retrieve project"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *referenceHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	project, err := h.referenceService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to get project", slog.String("project_id", projectID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update a project
// @Tags reference-data
// @Accept  json
// @Produce  json
// @Param   id path string true "Project ID"
// @Param   project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to update project"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *referenceHandler) updateProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	project, err := h.referenceService.UpdateProject(c.Request.Context(), projectID, req, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to update project", slog.String("project_id", projectID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// createArea godoc
// @Summary Create an area of focus
// @Tags reference-data
// @Accept  json
// @Produce  json
// @Param   area body dto.CreateAreaRequest true "Area details"
// @Success 201 {object} dto.AreaResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create area of focus"
// @Security BearerAuth
// @Router /areas-of-focus [post]
func (h *referenceHandler) createArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	area, err := h.referenceService.CreateArea(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create area of focus", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create area of focus"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToAreaResponse(area))
}

// listAreas godoc
// @Summary List areas of focus
// @Tags reference-data
// @Produce  json
// @Param   includeInactive query bool false "Include inactive areas" default(false)
// @Success 200 {array} dto.AreaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list areas of focus"
// @Security BearerAuth
// @Router /areas-of-focus [get]
func (h *referenceHandler) listAreas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	areas, err := h.referenceService.ListAreas(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Error("Failed to list areas of focus", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list areas of focus"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAreaResponses(areas))
}

// getArea godoc
// @Summary Get an area of focus
// @Tags reference-data
// @Produce  json
// @Param   id path string true "Area ID"
// @Success 200 {object} dto.AreaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Area of focus not found"
// @Failure 500 {object} map[string]string "Failed to retrieve area of focus"
// @Security BearerAuth
// @Router /areas-of-focus/{id} [get]
func (h *referenceHandler) getArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	areaID := c.Param("id")

	area, err := h.referenceService.GetAreaByID(c.Request.Context(), areaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Area of focus not found"})
		} else {
			logger.Error("Failed to get area of focus", slog.String("area_id", areaID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve area of focus"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAreaResponse(area))
}

// updateArea godoc
// @Summary Update an area of focus
// @Tags reference-data
// @Accept  json
// @Produce  json
// @Param   id path string true "Area ID"
// @Param   area body dto.UpdateAreaRequest true "Fields to update"
// @Success 200 {object} dto.AreaResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Area of focus not found"
// @Failure 500 {object} map[string]string "Failed to update area of focus"
// @Security BearerAuth
// @Router /areas-of-focus/{id} [put]
func (h *referenceHandler) updateArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	areaID := c.Param("id")

	var req dto.UpdateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	area, err := h.referenceService.UpdateArea(c.Request.Context(), areaID, req, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Area of focus not found"})
		} else {
			logger.Error("Failed to update area of focus", slog.String("area_id", areaID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update area of focus"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAreaResponse(area))
}

// createCostCode godoc
// @Summary Create a cost code
// @Tags reference-data
// @Accept  json
// @Produce  json
// @Param   costCode body dto.CreateCostCodeRequest true "Cost code details"
// @Success 201 {object} dto.CostCodeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create cost code"
// @Security BearerAuth
// @Router /cost-codes [post]
func (h *referenceHandler) createCostCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCostCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	costCode, err := h.referenceService.CreateCostCode(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create cost code", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cost code"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCostCodeResponse(costCode))
}

// listCostCodes godoc
// @Summary List cost codes
// @Tags reference-data
// @Produce  json
// @Param   includeInactive query bool false "Include inactive cost codes" default(false)
// @Success 200 {array} dto.CostCodeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list cost codes"
// @Security BearerAuth
// @Router /cost-codes [get]
func (h *referenceHandler) listCostCodes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	costCodes, err := h.referenceService.ListCostCodes(c.Request.Context(), includeInactive)
	if err != nil {
		logger.Error("Failed to list cost codes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cost codes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCostCodeResponses(costCodes))
}

// getCostCode godoc
// @Summary Get a cost code
// @Tags reference-data
// @Produce  json
// @Param   code path string true "Cost code"
// @Success 200 {object} dto.CostCodeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Cost code not found"
// @Failure 500 {object} map[string]string "Failed to retrieve cost code"
// @Security BearerAuth
// @Router /cost-codes/{code} [get]
func (h *referenceHandler) getCostCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	costCode, err := h.referenceService.GetCostCodeByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cost code not found"})
		} else {
			logger.Error("Failed to get cost code", slog.String("code", code), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cost code"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCostCodeResponse(costCode))
}

// updateCostCode godoc
// @Summary Update a cost code
// @Tags reference-data
// @Accept  json
// @Produce  json
// @Param   code path string true "Cost code"
// @Param   costCode body dto.UpdateCostCodeRequest true "Fields to update"
// @Success 200 {object} dto.CostCodeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Cost code not found"
// @Failure 500 {object} map[string]string "Failed to update cost code"
// @Security BearerAuth
// @Router /cost-codes/{code} [put]
func (h *referenceHandler) updateCostCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	var req dto.UpdateCostCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	costCode, err := h.referenceService.UpdateCostCode(c.Request.Context(), code, req, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cost code not found"})
		} else {
			logger.Error("Failed to update cost code", slog.String("code", code), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cost code"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCostCodeResponse(costCode))
}
