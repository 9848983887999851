package handlers

import (
	"net/http"

	"socialink_backend/internal/services"
	"socialink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	BaseHandler
	commentService services.CommentService
}

func NewCommentHandler(base BaseHandler, commentService services.CommentService) *CommentHandler {
	return &CommentHandler{BaseHandler: base, commentService: commentService}
}

func (h *CommentHandler) RegisterRoutes(r *gin.RouterGroup, authRequired, authOptional gin.HandlerFunc) {
	group := r.Group("/comment")
	group.GET("/post/:postId", authOptional, h.GetComments)
	group.POST("/post/:postId", authRequired, h.CreateComment)
	group.POST("/:id/toggle-like", authRequired, h.ToggleLike)
	group.DELETE("/:id", authRequired, h.DeleteComment)
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	postID, ok := h.ParamUint(c, "postId")
	if !ok {
		return
	}

	resp, err := h.commentService.GetComments(postID, h.OptionalUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	postID, ok := h.ParamUint(c, "postId")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.commentService.CreateComment(userID, postID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CommentHandler) ToggleLike(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	commentID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	resp, err := h.commentService.ToggleLike(userID, commentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	commentID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(userID, commentID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted successfully"})
}
