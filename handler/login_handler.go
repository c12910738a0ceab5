package handler

import (
	"net/http"

	"github.com/gestorhq/gestor-be/service"
	"github.com/gestorhq/gestor-be/types"
	"github.com/gestorhq/gestor-be/utils"
	"github.com/gin-gonic/gin"
)

type LoginHandler interface {
	HandleLogin(c *gin.Context)
}

type loginHandler struct {
	userService service.UserService
}

func NewLoginHandler(userService service.UserService) LoginHandler {
	return &loginHandler{
		userService: userService,
	}
}

func (h *loginHandler) HandleLogin(c *gin.Context) {

	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	user, err := h.userService.GetUserByUsername(c, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	if user.Password != req.Password {
		c.JSON(http.StatusUnauthorized, types.DataResponse{
			Success: false,
			Error:   "Invalid password",
		})
		return
	}
	token, err := utils.GenerateUserToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	resp := types.DataResponse{
		Success: true,
		Data: types.LoginResponse{
			AccessToken: token,
		},
	}
	c.JSON(http.StatusOK, resp)
}
