package handler

import (
	"log"
	"net/http"
	"strconv"

	"coastwatch/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Create accepts a multipart form: uploader_id plus optional category,
// description, latitude, longitude and a single media attachment.
func (h *ReportHandler) Create(c *gin.Context) {
	uploaderID, err := strconv.ParseUint(c.PostForm("uploader_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid uploader_id"})
		return
	}

	in := service.CreateReportInput{
		UploaderID:  uint(uploaderID),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
	}
	if v := c.PostForm("latitude"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid latitude"})
			return
		}
		in.Latitude = &lat
	}
	if v := c.PostForm("longitude"); v != "" {
		lng, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid longitude"})
			return
		}
		in.Longitude = &lng
	}

	if fh, err := c.FormFile("media"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "could not read media"})
			return
		}
		defer f.Close()
		in.Media = f
		in.MediaName = fh.Filename
		in.MediaMIME = fh.Header.Get("Content-Type")
	}

	id, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		switch err {
		case service.ErrInvalidUploader, service.ErrUnknownCategory,
			service.ErrUnsupportedMedia, service.ErrDescriptionTooLong:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			log.Printf("[report] create failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "report submission failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Report submitted successfully.", "id": id})
}

// List returns merged report views, optionally filtered by verification
// status and uploader.
func (h *ReportHandler) List(c *gin.Context) {
	var filter service.ListFilter
	switch c.Query("verified") {
	case "true":
		v := true
		filter.Verified = &v
	case "false":
		v := false
		filter.Verified = &v
	}
	if raw := c.Query("uploader_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uploader_id"})
			return
		}
		uid := uint(id)
		filter.UploaderID = &uid
	}

	views, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[report] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load reports"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ReportHandler) Overview(c *gin.Context) {
	counts, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		log.Printf("[report] overview failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load overview"})
		return
	}
	c.JSON(http.StatusOK, counts)
}
