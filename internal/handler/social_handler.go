package handler

import (
	"log"
	"net/http"

	"coastwatch/internal/domain"
	"coastwatch/internal/models"

	"github.com/gin-gonic/gin"
)

// SocialPostStore is the slice of the social repository the handler
// needs.
type SocialPostStore interface {
	Create(p *models.SocialPost) error
	ListRecent(limit int) ([]models.SocialPost, error)
}

// SocialHandler is the interface the scraping jobs call into. Posts are
// archival: appended as received, never deduplicated or validated.
type SocialHandler struct {
	repo SocialPostStore
}

func NewSocialHandler(repo SocialPostStore) *SocialHandler {
	return &SocialHandler{repo: repo}
}

type StorePostRequest struct {
	Platform  string `json:"platform"`
	Content   string `json:"content"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
}

func (h *SocialHandler) StorePost(c *gin.Context) {
	var req StorePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	post := &models.SocialPost{
		Platform:  req.Platform,
		Content:   req.Content,
		Username:  req.Username,
		Timestamp: req.Timestamp,
	}
	if err := h.repo.Create(post); err != nil {
		log.Printf("[social] store post failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *SocialHandler) Recent(c *gin.Context) {
	posts, err := h.repo.ListRecent(domain.RecentPostLimit)
	if err != nil {
		log.Printf("[social] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}
