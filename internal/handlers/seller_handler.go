package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samparc/medical-api/internal/models"
)

type SellerStatusRequest struct {
	Status models.SellerStatus `json:"status" binding:"required,sellerstatus"`
}

// GetCurrentSeller returns the signed-in seller, including their review status.
func (h *Handler) GetCurrentSeller(c *gin.Context) {
	seller, ok := h.currentSeller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, seller)
}

// ListSellers lists applications, e.g. /api/sellers?status=Pending.
// With ?email= it looks up a single seller instead.
func (h *Handler) ListSellers(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		seller, err := h.Store.GetSellerByEmail(c.Request.Context(), normalizeEmail(email))
		if err != nil {
			storeError(c, err, "Seller")
			return
		}
		c.JSON(http.StatusOK, seller)
		return
	}

	status := models.SellerStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown seller status " + string(status)})
		return
	}
	sellers, err := h.Store.ListSellers(c.Request.Context(), status)
	if err != nil {
		storeError(c, err, "Sellers")
		return
	}
	if sellers == nil {
		sellers = make([]models.Seller, 0)
	}
	c.JSON(http.StatusOK, sellers)
}

func (h *Handler) GetSeller(c *gin.Context) {
	id, ok := paramID(c, "seller")
	if !ok {
		return
	}
	seller, err := h.Store.GetSeller(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Seller")
		return
	}
	c.JSON(http.StatusOK, seller)
}

// UpdateSellerStatus records an admin review decision and emails the seller.
func (h *Handler) UpdateSellerStatus(c *gin.Context) {
	id, ok := paramID(c, "seller")
	if !ok {
		return
	}
	var req SellerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of Pending, Approved, Rejected, Suspended"})
		return
	}

	ctx := c.Request.Context()
	if err := h.Store.UpdateSellerStatus(ctx, id, req.Status); err != nil {
		storeError(c, err, "Seller")
		return
	}
	seller, err := h.Store.GetSeller(ctx, id)
	if err != nil {
		storeError(c, err, "Seller")
		return
	}
	log.Printf("UpdateSellerStatus: seller %d is now %s.", seller.ID, seller.Status)

	h.Notifier.SellerStatusChanged(seller)
	c.JSON(http.StatusOK, seller)
}

// DeleteSeller removes the seller and every medicine they listed.
func (h *Handler) DeleteSeller(c *gin.Context) {
	id, ok := paramID(c, "seller")
	if !ok {
		return
	}
	if err := h.Store.DeleteSeller(c.Request.Context(), id); err != nil {
		storeError(c, err, "Seller")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Seller deleted successfully"})
}
