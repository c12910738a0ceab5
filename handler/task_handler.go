package handler

import (
	"net/http"
	"time"

	"github.com/gestorhq/gestor-be/repository"
	"github.com/gestorhq/gestor-be/types"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	repo repository.TaskRepo
}

func NewTaskHandler(repo repository.TaskRepo) *TaskHandler {
	return &TaskHandler{
		repo: repo,
	}
}

func (h *TaskHandler) HandleCreateTask(c *gin.Context) {
	var req types.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "Task title is required",
		})
		return
	}

	now := time.Now().Unix()
	task := &types.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      "open",
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		Assignee:    req.Assignee,
		ProjectID:   req.ProjectID,
		TeamID:      req.TeamID,
		CreatedBy:   userIDFromContext(c),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Priority == "" {
		task.Priority = types.PriorityMedium
	}
	if err := h.repo.CreateTask(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    task,
	})
}

func (h *TaskHandler) HandleListTasks(c *gin.Context) {
	teamID := c.Query("team_id")
	assignee := c.Query("assignee")
	status := c.QueryArray("status")
	tasks, err := h.repo.ListTasks(c.Request.Context(), teamID, assignee, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    tasks,
	})
}
