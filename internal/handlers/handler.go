package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/samparc/medical-api/internal/cache"
	"github.com/samparc/medical-api/internal/chat"
	"github.com/samparc/medical-api/internal/config"
	"github.com/samparc/medical-api/internal/models"
	"github.com/samparc/medical-api/internal/services"
	"github.com/samparc/medical-api/internal/store"
)

// Notifier is implemented by services.NotificationService.
type Notifier interface {
	AppointmentSubmitted(apt *models.Appointment)
	AppointmentStatusChanged(apt *models.Appointment)
	SellerStatusChanged(seller *models.Seller)
}

// Handler carries the dependencies shared by every route.
type Handler struct {
	Store    store.Store
	Notifier Notifier
	Content  *cache.ContentCache
	Chat     *chat.Responder
	Reports  *services.ReportService
	Admins   []config.AdminCredential
}

func NewHandler(db store.Store, notifier Notifier, content *cache.ContentCache, admins []config.AdminCredential) *Handler {
	return &Handler{
		Store:    db,
		Notifier: notifier,
		Content:  content,
		Chat:     chat.New(chat.Samparc),
		Reports:  services.NewReportService(chat.Samparc.Name),
		Admins:   admins,
	}
}

// paramID parses the :id path parameter, answering 400 when it is not a positive integer.
func paramID(c *gin.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " ID"})
		return 0, false
	}
	return id, true
}

// storeError answers a failed store call: 404 for missing records, 409 for
// duplicates, 500 otherwise.
func storeError(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
	case errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": what + " already exists"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process " + strings.ToLower(what)})
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
