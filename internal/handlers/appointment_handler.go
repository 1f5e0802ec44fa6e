package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samparc/medical-api/internal/metrics"
	"github.com/samparc/medical-api/internal/models"
)

// AppointmentRequest is the public contact form.
type AppointmentRequest struct {
	PatientName   string `json:"patientName" binding:"notblank"`
	Phone         string `json:"phone" binding:"notblank"`
	Email         string `json:"email" binding:"omitempty,email"`
	Department    string `json:"department" binding:"notblank"`
	PreferredDate string `json:"preferredDate" binding:"required,datetime=2006-01-02"`
	Message       string `json:"message"`
}

type AppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,appointmentstatus"`
}

// --- SUBMIT APPOINTMENT (public, emails hospital and patient) ---
func (h *Handler) SubmitAppointment(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apt := models.Appointment{
		PatientName:   strings.TrimSpace(req.PatientName),
		Phone:         strings.TrimSpace(req.Phone),
		Email:         strings.TrimSpace(req.Email),
		Department:    strings.TrimSpace(req.Department),
		PreferredDate: req.PreferredDate,
		Message:       strings.TrimSpace(req.Message),
		Status:        models.AppointmentPending,
		SubmittedAt:   time.Now().UTC(),
	}
	if err := h.Store.CreateAppointment(c.Request.Context(), &apt); err != nil {
		storeError(c, err, "Appointment")
		return
	}
	metrics.AppointmentsSubmitted.Inc()
	log.Printf("SubmitAppointment: appointment %d for %s on %s.", apt.ID, apt.Department, apt.PreferredDate)

	// --- NOTIFICATION ---
	notified := apt
	h.Notifier.AppointmentSubmitted(&notified)

	c.JSON(http.StatusCreated, apt)
}

// --- LIST APPOINTMENTS (newest first, e.g. /api/appointments?status=Pending) ---
func (h *Handler) ListAppointments(c *gin.Context) {
	status := models.AppointmentStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown appointment status " + string(status)})
		return
	}

	appointments, err := h.Store.ListAppointments(c.Request.Context(), status)
	if err != nil {
		storeError(c, err, "Appointments")
		return
	}
	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := paramID(c, "appointment")
	if !ok {
		return
	}
	apt, err := h.Store.GetAppointment(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Appointment")
		return
	}
	c.JSON(http.StatusOK, apt)
}

// --- UPDATE STATUS (texts the patient) ---
func (h *Handler) UpdateAppointmentStatus(c *gin.Context) {
	id, ok := paramID(c, "appointment")
	if !ok {
		return
	}
	var req AppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of Pending, Confirmed, Cancelled"})
		return
	}

	ctx := c.Request.Context()
	if err := h.Store.UpdateAppointmentStatus(ctx, id, req.Status); err != nil {
		storeError(c, err, "Appointment")
		return
	}
	apt, err := h.Store.GetAppointment(ctx, id)
	if err != nil {
		storeError(c, err, "Appointment")
		return
	}

	h.Notifier.AppointmentStatusChanged(apt)
	c.JSON(http.StatusOK, apt)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := paramID(c, "appointment")
	if !ok {
		return
	}
	if err := h.Store.DeleteAppointment(c.Request.Context(), id); err != nil {
		storeError(c, err, "Appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

// AppointmentsReport downloads the appointment list as a PDF, honoring ?status=.
func (h *Handler) AppointmentsReport(c *gin.Context) {
	status := models.AppointmentStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown appointment status " + string(status)})
		return
	}

	appointments, err := h.Store.ListAppointments(c.Request.Context(), status)
	if err != nil {
		storeError(c, err, "Appointments")
		return
	}
	pdf, err := h.Reports.AppointmentsPDF(appointments)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}

	filename := fmt.Sprintf("appointments-%s.pdf", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
