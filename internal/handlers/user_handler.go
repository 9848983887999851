package handlers

import (
	"net/http"

	"socialink_backend/internal/services"
	"socialink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(base BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup, authRequired, authOptional gin.HandlerFunc) {
	group := r.Group("/users")
	group.GET("/me", authRequired, h.GetMe)
	group.GET("/:id", authOptional, h.GetProfile)
	group.PATCH("/me", authRequired, h.UpdateProfile)
	group.DELETE("/me", authRequired, h.DeleteAccount)
	group.POST("/:id/toggle-follow", authRequired, h.ToggleFollow)
	group.GET("/:id/followers", authOptional, h.GetFollowers)
	group.GET("/:id/following", authOptional, h.GetFollowing)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.userService.GetProfile(userID, &userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	resp, err := h.userService.GetProfile(userID, h.OptionalUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteAccount(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}

func (h *UserHandler) ToggleFollow(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	targetID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	resp, err := h.userService.ToggleFollow(userID, targetID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetFollowers(c *gin.Context) {
	userID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	resp, err := h.userService.GetFollowers(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetFollowing(c *gin.Context) {
	userID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	resp, err := h.userService.GetFollowing(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
