package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samparc/medical-api/internal/middleware"
	"github.com/samparc/medical-api/internal/models"
	"github.com/samparc/medical-api/internal/store"
)

// GetCurrentCustomer retrieves the profile of the signed-in customer.
func (h *Handler) GetCurrentCustomer(c *gin.Context) {
	customer, err := h.Store.GetCustomer(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer account no longer exists"})
			return
		}
		storeError(c, err, "Customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.Store.ListCustomers(c.Request.Context())
	if err != nil {
		storeError(c, err, "Customers")
		return
	}
	if customers == nil {
		customers = make([]models.Customer, 0)
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := paramID(c, "customer")
	if !ok {
		return
	}
	customer, err := h.Store.GetCustomer(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := paramID(c, "customer")
	if !ok {
		return
	}
	if err := h.Store.DeleteCustomer(c.Request.Context(), id); err != nil {
		storeError(c, err, "Customer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
