package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	pc PostUseCase
	fc FeedUseCase
}

func NewPostController(pc PostUseCase, fc FeedUseCase) *PostController {
	return &PostController{pc: pc, fc: fc}
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		Content  string `json:"content"`
		ImageURL string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	p, err := ctl.pc.CreatePost(c.Request.Context(), userID.(string), req.Content, req.ImageURL)
	if err != nil {
		respondError(c, err, "could not create post")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Post created", "post": p})
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	if err := ctl.pc.DeletePost(c.Request.Context(), c.Param("id"), userID.(string)); err != nil {
		respondError(c, err, "could not delete post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (ctl *PostController) ToggleLike(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	res, err := ctl.pc.ToggleLike(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		respondError(c, err, "could not toggle like")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) AddComment(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	p, err := ctl.pc.AddComment(c.Request.Context(), c.Param("id"), userID.(string), req.Text)
	if err != nil {
		respondError(c, err, "could not add comment")
		return
	}

	// Return the updated post with author identities resolved for display.
	resolved, err := ctl.fc.ResolvePost(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "could not resolve post")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Comment added", "post": resolved})
}

func (ctl *PostController) DeleteComment(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	err := ctl.pc.DeleteComment(c.Request.Context(), c.Param("id"), c.Param("commentId"), userID.(string))
	if err != nil {
		respondError(c, err, "could not delete comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
