package handler

import (
	"net/http"
	"time"

	"github.com/gestorhq/gestor-be/repository"
	"github.com/gestorhq/gestor-be/types"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	repo repository.ProjectRepo
}

func NewProjectHandler(repo repository.ProjectRepo) *ProjectHandler {
	return &ProjectHandler{
		repo: repo,
	}
}

func (h *ProjectHandler) HandleCreateProject(c *gin.Context) {
	var req types.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "Project name is required",
		})
		return
	}

	now := time.Now().Unix()
	project := &types.Project{
		Name:            req.Name,
		Description:     req.Description,
		Budget:          req.Budget,
		StartDate:       req.StartDate,
		ExpectedEndDate: req.ExpectedEndDate,
		Technologies:    req.Technologies,
		Status:          req.Status,
		TeamID:          req.TeamID,
		CreatedBy:       userIDFromContext(c),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if project.Status == "" {
		project.Status = types.ProjectStatusPlanning
	}
	if err := h.repo.CreateProject(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    project,
	})
}

func (h *ProjectHandler) HandleListProjects(c *gin.Context) {
	teamID := c.Query("team_id")
	status := c.QueryArray("status")
	projects, err := h.repo.ListProjects(c.Request.Context(), teamID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    projects,
	})
}
