package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"coastwatch/internal/models"
	"coastwatch/internal/repository"
	"coastwatch/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler exposes the employee-only surface: report moderation and
// NGO/volunteer onboarding.
type AdminHandler struct {
	moderation *service.ModerationService
	authSvc    *service.AuthService
	ngoRepo    *repository.NGORepository
}

func NewAdminHandler(moderation *service.ModerationService, authSvc *service.AuthService, ngoRepo *repository.NGORepository) *AdminHandler {
	return &AdminHandler{moderation: moderation, authSvc: authSvc, ngoRepo: ngoRepo}
}

func (h *AdminHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid report id"})
		return
	}
	if err := h.moderation.Approve(id); err != nil {
		if err == service.ErrReportNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		log.Printf("[moderation] approve %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "approval failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Report approved (verified)."})
}

// Reject succeeds whether zero, one or two record halves existed; only
// a storage failure is an error.
func (h *AdminHandler) Reject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid report id"})
		return
	}
	if err := h.moderation.Reject(c.Request.Context(), id); err != nil {
		log.Printf("[moderation] reject %d failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "rejection failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Report rejected and deleted."})
}

type CreateNGORequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Pincode string `json:"pincode" binding:"required"`
	Contact string `json:"contact" binding:"required"`
}

func (h *AdminHandler) CreateNGO(c *gin.Context) {
	var req CreateNGORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing fields"})
		return
	}
	if _, err := h.ngoRepo.GetByName(req.Name); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "ngo already registered"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[admin] ngo lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ngo creation failed"})
		return
	}

	n := &models.NGO{Name: req.Name, Pincode: req.Pincode, Contact: req.Contact}
	if req.Email != "" {
		n.Email = &req.Email
	}
	if err := h.ngoRepo.Create(n); err != nil {
		log.Printf("[admin] ngo create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ngo creation failed"})
		return
	}
	c.JSON(http.StatusCreated, n)
}

type CreateVolunteerRequest struct {
	Contact  string `json:"contact" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required,min=8"`
	NGOID    uint   `json:"ngo_id" binding:"required"`
}

func (h *AdminHandler) CreateVolunteer(c *gin.Context) {
	var req CreateVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing fields"})
		return
	}
	v, err := h.authSvc.RegisterVolunteer(req.Contact, req.Email, req.Password, req.NGOID)
	if err != nil {
		switch err {
		case service.ErrNGONotFound:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case service.ErrContactExists:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("[admin] volunteer create failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "volunteer creation failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, v)
}
