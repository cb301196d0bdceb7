package handler

import (
	"net/http"

	"coastwatch/pkg/storage"

	"github.com/gin-gonic/gin"
)

// MediaHandler serves previously uploaded files back by stored name.
type MediaHandler struct {
	store *storage.LocalStore
}

func NewMediaHandler(store *storage.LocalStore) *MediaHandler {
	return &MediaHandler{store: store}
}

func (h *MediaHandler) Serve(c *gin.Context) {
	f, err := h.store.Open(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	path := f.Name()
	f.Close()
	c.File(path)
}
