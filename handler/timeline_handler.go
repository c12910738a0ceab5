package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gestorhq/gestor-be/repository"
	"github.com/gestorhq/gestor-be/types"
	"github.com/gin-gonic/gin"
)

type TimelineHandler struct {
	repo repository.TimelineRepo
}

func NewTimelineHandler(repo repository.TimelineRepo) *TimelineHandler {
	return &TimelineHandler{
		repo: repo,
	}
}

func (h *TimelineHandler) HandleCreateEvent(c *gin.Context) {
	var req types.CreateEventRequest
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
			Error:   "Event title is required",
		})
		return
	}

	event := &types.TimelineEvent{
		Title:       req.Title,
		Description: req.Description,
		Kind:        req.Kind,
		Timestamp:   req.Timestamp,
		Priority:    req.Priority,
		TeamID:      req.TeamID,
		CreatedBy:   userIDFromContext(c),
		CreatedAt:   time.Now().Unix(),
	}
	if event.Kind == "" {
		event.Kind = types.EventKindMessage
	}
	if event.Timestamp == "" {
		event.Timestamp = time.Now().Format("2006-01-02")
	}
	if err := h.repo.CreateEvent(c.Request.Context(), event); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    event,
	})
}

func (h *TimelineHandler) HandleListEvents(c *gin.Context) {
	teamID := c.Query("team_id")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	events, err := h.repo.ListEvents(c.Request.Context(), teamID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    events,
	})
}
