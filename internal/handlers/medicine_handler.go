package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/samparc/medical-api/internal/models"
)

// MedicineRequest is the admin catalog form. Available defaults to true on create.
type MedicineRequest struct {
	Name        string `json:"name" binding:"notblank"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"notblank"`
	Price       int64  `json:"price" binding:"gte=0"`
	Available   *bool  `json:"available"`
}

// ListMedicines serves the catalog, e.g. /medicines?available=true&category=Tablets&q=para&sort=price
func (h *Handler) ListMedicines(c *gin.Context) {
	var filter models.MedicineFilter

	if v := c.Query("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available must be true or false"})
			return
		}
		filter.Available = &available
	}
	switch sort := c.Query("sort"); sort {
	case "":
	case "price":
		filter.SortByPrice = true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported sort " + strconv.Quote(sort)})
		return
	}
	filter.Category = strings.TrimSpace(c.Query("category"))
	filter.Search = strings.TrimSpace(c.Query("q"))

	h.respondMedicines(c, filter)
}

func (h *Handler) GetAvailableMedicines(c *gin.Context) {
	h.respondMedicines(c, models.AvailableFilter(true))
}

// SearchMedicines matches q case-insensitively against name, description and
// category. An empty query lists everything.
func (h *Handler) SearchMedicines(c *gin.Context) {
	h.respondMedicines(c, models.MedicineFilter{Search: strings.TrimSpace(c.Query("q"))})
}

func (h *Handler) GetMedicinesByCategory(c *gin.Context) {
	h.respondMedicines(c, models.MedicineFilter{Category: c.Param("category")})
}

func (h *Handler) respondMedicines(c *gin.Context, filter models.MedicineFilter) {
	medicines, err := h.Store.ListMedicines(c.Request.Context(), filter)
	if err != nil {
		storeError(c, err, "Medicines")
		return
	}
	if medicines == nil {
		medicines = make([]models.Medicine, 0)
	}
	c.JSON(http.StatusOK, medicines)
}

func (h *Handler) GetMedicine(c *gin.Context) {
	id, ok := paramID(c, "medicine")
	if !ok {
		return
	}
	medicine, err := h.Store.GetMedicine(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Medicine")
		return
	}
	c.JSON(http.StatusOK, medicine)
}

func (h *Handler) AddMedicine(c *gin.Context) {
	var req MedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	medicine := models.Medicine{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Price:       req.Price,
		Available:   req.Available == nil || *req.Available,
	}
	if err := h.Store.CreateMedicine(c.Request.Context(), &medicine); err != nil {
		storeError(c, err, "Medicine")
		return
	}
	c.JSON(http.StatusCreated, medicine)
}

// EditMedicine replaces every field of a catalog entry. Available keeps its
// current value when omitted.
func (h *Handler) EditMedicine(c *gin.Context) {
	id, ok := paramID(c, "medicine")
	if !ok {
		return
	}
	var req MedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	medicine, err := h.Store.GetMedicine(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "Medicine")
		return
	}
	medicine.Name = strings.TrimSpace(req.Name)
	medicine.Description = strings.TrimSpace(req.Description)
	medicine.Category = strings.TrimSpace(req.Category)
	medicine.Price = req.Price
	if req.Available != nil {
		medicine.Available = *req.Available
	}

	if err := h.Store.UpdateMedicine(c.Request.Context(), medicine); err != nil {
		storeError(c, err, "Medicine")
		return
	}
	c.JSON(http.StatusOK, medicine)
}

func (h *Handler) DeleteMedicine(c *gin.Context) {
	id, ok := paramID(c, "medicine")
	if !ok {
		return
	}
	if err := h.Store.DeleteMedicine(c.Request.Context(), id); err != nil {
		storeError(c, err, "Medicine")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medicine deleted successfully"})
}
