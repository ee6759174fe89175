package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FeedController struct{ fc FeedUseCase }

func NewFeedController(fc FeedUseCase) *FeedController {
	return &FeedController{fc: fc}
}

func (ctl *FeedController) GetFeed(c *gin.Context) {
	feed, err := ctl.fc.GetFeed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch feed"})
		return
	}
	c.JSON(http.StatusOK, feed)
}
