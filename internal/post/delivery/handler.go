package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"pinflow-backend/internal/post/usecase"

	"github.com/gin-gonic/gin"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postUsecase usecase.PostUsecase
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postUsecase usecase.PostUsecase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

// GetPosts returns all posts for the authenticated user
// GET /api/posts?limit=50&offset=0
func (h *PostHandler) GetPosts(c *gin.Context) {
	userID := c.GetString("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	posts, total, err := h.postUsecase.GetUserPosts(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"total": total,
	})
}

// GetPostByID returns a specific post
// GET /api/posts/:id
func (h *PostHandler) GetPostByID(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("id")

	post, err := h.postUsecase.GetPostByID(userID, postID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost creates a new post
// POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.PostCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUsecase.CreatePost(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost updates an existing post
// PUT /api/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("id")

	var req usecase.PostUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUsecase.UpdatePost(userID, postID, req)
	if err != nil {
		if errors.Is(err, usecase.ErrRescheduleAfterPublish) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post
// DELETE /api/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("id")

	if err := h.postUsecase.DeletePost(userID, postID); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func (h *PostHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
