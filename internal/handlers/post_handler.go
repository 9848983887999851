package handlers

import (
	"net/http"
	"path/filepath"

	"socialink_backend/internal/services"
	"socialink_backend/internal/services/dto"
	"socialink_backend/internal/storage"
	"socialink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 10 << 20 // 10 MiB

type PostHandler struct {
	BaseHandler
	postService services.PostService
	storage     storage.Storage
}

func NewPostHandler(base BaseHandler, postService services.PostService, store storage.Storage) *PostHandler {
	return &PostHandler{BaseHandler: base, postService: postService, storage: store}
}

func (h *PostHandler) RegisterRoutes(r *gin.RouterGroup, authRequired, authOptional gin.HandlerFunc) {
	group := r.Group("/posts")
	group.GET("/all", authOptional, h.GetPosts)
	group.GET("/:id", authOptional, h.GetPost)
	group.POST("/create", authRequired, h.CreatePost)
	group.POST("/:id/toggle-like", authRequired, h.ToggleLike)
	group.DELETE("/delete/:id", authRequired, h.DeletePost)
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	var query dto.FeedQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.postService.GetPosts(query, h.OptionalUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	resp, err := h.postService.GetPostByID(postID, h.OptionalUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreatePost accepts multipart form data: a content field and an optional
// image file.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	req := dto.CreatePostRequest{Content: c.PostForm("content")}

	if file, err := c.FormFile("image"); err == nil {
		if file.Size > maxImageSize {
			h.HandleServiceError(c, apperrors.NewBadRequestError("Image exceeds the 10MB limit"))
			return
		}

		src, err := file.Open()
		if err != nil {
			h.HandleServiceError(c, apperrors.InternalError(err))
			return
		}
		defer src.Close()

		path := "posts/" + uuid.New().String() + filepath.Ext(file.Filename)
		contentType := file.Header.Get("Content-Type")
		if err := h.storage.Save(c.Request.Context(), path, src, contentType); err != nil {
			h.HandleServiceError(c, apperrors.InternalError(err))
			return
		}

		url, err := h.storage.GetURL(c.Request.Context(), path)
		if err != nil {
			h.HandleServiceError(c, apperrors.InternalError(err))
			return
		}
		req.Image = url
	}

	if !h.validate(c, &req) {
		return
	}

	resp, err := h.postService.CreatePost(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PostHandler) ToggleLike(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	postID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	resp, err := h.postService.ToggleLike(userID, postID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	postID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.postService.DeletePost(userID, postID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Post deleted successfully"})
}
