package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samparc/medical-api/internal/metrics"
	"github.com/samparc/medical-api/internal/models"
	"github.com/samparc/medical-api/internal/store"
	"github.com/samparc/medical-api/internal/utils"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterCustomerRequest struct {
	Name            string `json:"name" binding:"notblank"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"notblank"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

type RegisterSellerRequest struct {
	Name            string   `json:"name" binding:"notblank"`
	BusinessName    string   `json:"businessName" binding:"notblank"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone" binding:"notblank"`
	Password        string   `json:"password" binding:"required,min=6"`
	ConfirmPassword string   `json:"confirmPassword" binding:"required,eqfield=Password"`
	Documents       []string `json:"documents" binding:"required,min=1,dive,notblank"`
}

// AdminLogin checks the configured back-office credentials and issues an admin token.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	email := normalizeEmail(req.Email)
	for i, admin := range h.Admins {
		if admin.Email == email && utils.EqualSecret(req.Password, admin.Password) {
			token, err := utils.GenerateJWT(int64(i+1), email, utils.RoleAdmin)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
				return
			}
			metrics.Logins.WithLabelValues(utils.RoleAdmin, "success").Inc()
			log.Printf("AdminLogin: %s signed in.", email)
			c.JSON(http.StatusOK, gin.H{"token": token, "user": gin.H{"email": email, "role": utils.RoleAdmin}})
			return
		}
	}

	metrics.Logins.WithLabelValues(utils.RoleAdmin, "failure").Inc()
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
}

// RegisterCustomer creates a customer account and signs it in.
func (h *Handler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	customer := models.Customer{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Store.CreateCustomer(c.Request.Context(), &customer); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		storeError(c, err, "Customer")
		return
	}
	log.Printf("RegisterCustomer: customer %d registered.", customer.ID)

	token, err := utils.GenerateJWT(customer.ID, customer.Email, utils.RoleCustomer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": customer})
}

func (h *Handler) CustomerLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	customer, err := h.Store.GetCustomerByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		storeError(c, err, "Customer")
		return
	}
	if err != nil || !utils.CheckPasswordHash(req.Password, customer.PasswordHash) {
		metrics.Logins.WithLabelValues(utils.RoleCustomer, "failure").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(customer.ID, customer.Email, utils.RoleCustomer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	metrics.Logins.WithLabelValues(utils.RoleCustomer, "success").Inc()
	c.JSON(http.StatusOK, gin.H{"token": token, "user": customer})
}

// RegisterSeller records a seller application. New sellers wait in Pending
// until an admin reviews their documents.
func (h *Handler) RegisterSeller(c *gin.Context) {
	var req RegisterSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	docs := make([]string, 0, len(req.Documents))
	for _, d := range req.Documents {
		docs = append(docs, strings.TrimSpace(d))
	}
	seller := models.Seller{
		Name:               strings.TrimSpace(req.Name),
		BusinessName:       strings.TrimSpace(req.BusinessName),
		Email:              normalizeEmail(req.Email),
		Phone:              strings.TrimSpace(req.Phone),
		PasswordHash:       hashedPassword,
		Status:             models.SellerPending,
		DocumentsSubmitted: docs,
		CreatedAt:          time.Now().UTC(),
	}
	if err := h.Store.CreateSeller(c.Request.Context(), &seller); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		storeError(c, err, "Seller")
		return
	}
	log.Printf("RegisterSeller: seller %d registered, awaiting review.", seller.ID)

	c.JSON(http.StatusCreated, seller)
}

// SellerLogin signs in a seller of any status; the dashboard shows the status.
func (h *Handler) SellerLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	seller, err := h.Store.GetSellerByEmail(c.Request.Context(), normalizeEmail(req.Email))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		storeError(c, err, "Seller")
		return
	}
	if err != nil || !utils.CheckPasswordHash(req.Password, seller.PasswordHash) {
		metrics.Logins.WithLabelValues(utils.RoleSeller, "failure").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(seller.ID, seller.Email, utils.RoleSeller)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}
	metrics.Logins.WithLabelValues(utils.RoleSeller, "success").Inc()
	c.JSON(http.StatusOK, gin.H{"token": token, "user": seller})
}
