package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samparc/medical-api/internal/middleware"
	"github.com/samparc/medical-api/internal/models"
	"github.com/samparc/medical-api/internal/store"
)

type SellerMedicineRequest struct {
	Name        string `json:"name" binding:"notblank"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"notblank"`
	Price       int64  `json:"price" binding:"gt=0"`
	Available   *bool  `json:"available"`
}

// currentSeller loads the seller behind the session token.
func (h *Handler) currentSeller(c *gin.Context) (*models.Seller, bool) {
	seller, err := h.Store.GetSeller(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Seller account no longer exists"})
			return nil, false
		}
		storeError(c, err, "Seller")
		return nil, false
	}
	return seller, true
}

// approvedSeller is currentSeller restricted to sellers allowed to list products.
func (h *Handler) approvedSeller(c *gin.Context) (*models.Seller, bool) {
	seller, ok := h.currentSeller(c)
	if !ok {
		return nil, false
	}
	if seller.Status != models.SellerApproved {
		c.JSON(http.StatusForbidden, gin.H{"error": "Seller account is " + string(seller.Status) + ", only approved sellers can list medicines"})
		return nil, false
	}
	return seller, true
}

// ownedSellerMedicine loads :id and answers 404 unless it belongs to seller.
func (h *Handler) ownedSellerMedicine(c *gin.Context, seller *models.Seller) (*models.SellerMedicine, bool) {
	id, ok := paramID(c, "medicine")
	if !ok {
		return nil, false
	}
	medicine, err := h.Store.GetSellerMedicine(c.Request.Context(), id)
	if err == nil && medicine.SellerID != seller.ID {
		err = store.ErrNotFound
	}
	if err != nil {
		storeError(c, err, "Medicine")
		return nil, false
	}
	return medicine, true
}

func (h *Handler) ListOwnSellerMedicines(c *gin.Context) {
	seller, ok := h.currentSeller(c)
	if !ok {
		return
	}
	h.respondSellerMedicines(c, seller.ID)
}

func (h *Handler) AddSellerMedicine(c *gin.Context) {
	seller, ok := h.approvedSeller(c)
	if !ok {
		return
	}
	var req SellerMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	medicine := models.SellerMedicine{
		SellerID:    seller.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Price:       req.Price,
		Available:   req.Available == nil || *req.Available,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.Store.CreateSellerMedicine(c.Request.Context(), &medicine); err != nil {
		storeError(c, err, "Medicine")
		return
	}
	c.JSON(http.StatusCreated, medicine)
}

func (h *Handler) EditSellerMedicine(c *gin.Context) {
	seller, ok := h.approvedSeller(c)
	if !ok {
		return
	}
	medicine, ok := h.ownedSellerMedicine(c, seller)
	if !ok {
		return
	}
	var req SellerMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	medicine.Name = strings.TrimSpace(req.Name)
	medicine.Description = strings.TrimSpace(req.Description)
	medicine.Category = strings.TrimSpace(req.Category)
	medicine.Price = req.Price
	if req.Available != nil {
		medicine.Available = *req.Available
	}
	if err := h.Store.UpdateSellerMedicine(c.Request.Context(), medicine); err != nil {
		storeError(c, err, "Medicine")
		return
	}
	c.JSON(http.StatusOK, medicine)
}

// DeleteSellerMedicine lets a seller withdraw a listing whatever their status.
func (h *Handler) DeleteSellerMedicine(c *gin.Context) {
	seller, ok := h.currentSeller(c)
	if !ok {
		return
	}
	medicine, ok := h.ownedSellerMedicine(c, seller)
	if !ok {
		return
	}
	if err := h.Store.DeleteSellerMedicine(c.Request.Context(), medicine.ID); err != nil {
		storeError(c, err, "Medicine")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medicine deleted successfully"})
}

// ListAllSellerMedicines is the admin view across sellers, e.g. /api/seller-medicines?sellerId=3
func (h *Handler) ListAllSellerMedicines(c *gin.Context) {
	var sellerID int64
	if v := c.Query("sellerId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seller ID"})
			return
		}
		sellerID = id
	}
	h.respondSellerMedicines(c, sellerID)
}

func (h *Handler) AdminDeleteSellerMedicine(c *gin.Context) {
	id, ok := paramID(c, "medicine")
	if !ok {
		return
	}
	if err := h.Store.DeleteSellerMedicine(c.Request.Context(), id); err != nil {
		storeError(c, err, "Medicine")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medicine deleted successfully"})
}

func (h *Handler) respondSellerMedicines(c *gin.Context, sellerID int64) {
	medicines, err := h.Store.ListSellerMedicines(c.Request.Context(), sellerID)
	if err != nil {
		storeError(c, err, "Medicines")
		return
	}
	if medicines == nil {
		medicines = make([]models.SellerMedicine, 0)
	}
	c.JSON(http.StatusOK, medicines)
}
