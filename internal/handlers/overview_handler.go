package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samparc/medical-api/internal/models"
)

// GetOverview returns the admin dashboard counters.
func (h *Handler) GetOverview(c *gin.Context) {
	ctx := c.Request.Context()
	overview := models.Overview{
		Appointments: map[string]int64{
			string(models.AppointmentPending):   0,
			string(models.AppointmentConfirmed): 0,
			string(models.AppointmentCancelled): 0,
		},
		Sellers: map[string]int64{
			string(models.SellerPending):   0,
			string(models.SellerApproved):  0,
			string(models.SellerRejected):  0,
			string(models.SellerSuspended): 0,
		},
	}

	medicines, err := h.Store.ListMedicines(ctx, models.MedicineFilter{})
	if err != nil {
		storeError(c, err, "Overview")
		return
	}
	categories := make(map[string]struct{})
	for _, m := range medicines {
		overview.Medicines++
		if m.Available {
			overview.AvailableMedicines++
		}
		categories[m.Category] = struct{}{}
	}
	overview.Categories = int64(len(categories))

	appointments, err := h.Store.ListAppointments(ctx, "")
	if err != nil {
		storeError(c, err, "Overview")
		return
	}
	for _, a := range appointments {
		overview.Appointments[string(a.Status)]++
	}

	sellers, err := h.Store.ListSellers(ctx, "")
	if err != nil {
		storeError(c, err, "Overview")
		return
	}
	for _, s := range sellers {
		overview.Sellers[string(s.Status)]++
	}

	customers, err := h.Store.ListCustomers(ctx)
	if err != nil {
		storeError(c, err, "Overview")
		return
	}
	overview.Customers = int64(len(customers))

	sellerMedicines, err := h.Store.ListSellerMedicines(ctx, 0)
	if err != nil {
		storeError(c, err, "Overview")
		return
	}
	overview.SellerMedicines = int64(len(sellerMedicines))

	c.JSON(http.StatusOK, overview)
}
