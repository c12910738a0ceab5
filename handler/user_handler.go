package handler

import (
	"net/http"

	"github.com/gestorhq/gestor-be/service"
	"github.com/gestorhq/gestor-be/types"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) HandleCreateUser(c *gin.Context) {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "Username and password are required",
		})
		return
	}

	user := &types.User{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
		TeamID:   req.TeamID,
	}
	if err := h.userService.CreateUser(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    user,
	})
}

func (h *UserHandler) HandleListTeamUsers(c *gin.Context) {
	teamID := c.Query("team_id")
	users, err := h.userService.ListUsersByTeam(c.Request.Context(), teamID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	for _, u := range users {
		u.Password = ""
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Success: true,
		Data:    users,
	})
}
