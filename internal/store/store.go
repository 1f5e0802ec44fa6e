// Package store defines the persistence contract behind the API handlers.
// Two implementations exist: mongostore (MongoDB) and sqlstore (gorm over
// Postgres or SQLite).
package store

import (
	"context"
	"errors"

	"github.com/samparc/medical-api/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type Store interface {
	MedicineStore
	SellerStore
	CustomerStore
	AppointmentStore
	ContentStore

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type MedicineStore interface {
	CreateMedicine(ctx context.Context, m *models.Medicine) error
	GetMedicine(ctx context.Context, id int64) (*models.Medicine, error)
	ListMedicines(ctx context.Context, f models.MedicineFilter) ([]models.Medicine, error)
	UpdateMedicine(ctx context.Context, m *models.Medicine) error
	DeleteMedicine(ctx context.Context, id int64) error

	CreateSellerMedicine(ctx context.Context, m *models.SellerMedicine) error
	GetSellerMedicine(ctx context.Context, id int64) (*models.SellerMedicine, error)
	// ListSellerMedicines lists one seller's products, or every seller's when sellerID is 0.
	ListSellerMedicines(ctx context.Context, sellerID int64) ([]models.SellerMedicine, error)
	UpdateSellerMedicine(ctx context.Context, m *models.SellerMedicine) error
	DeleteSellerMedicine(ctx context.Context, id int64) error
}

type SellerStore interface {
	CreateSeller(ctx context.Context, s *models.Seller) error
	GetSeller(ctx context.Context, id int64) (*models.Seller, error)
	GetSellerByEmail(ctx context.Context, email string) (*models.Seller, error)
	// ListSellers returns all sellers, filtered by status when status is non-empty.
	ListSellers(ctx context.Context, status models.SellerStatus) ([]models.Seller, error)
	UpdateSellerStatus(ctx context.Context, id int64, status models.SellerStatus) error
	// DeleteSeller removes the seller together with its listed medicines.
	DeleteSeller(ctx context.Context, id int64) error
}

type CustomerStore interface {
	CreateCustomer(ctx context.Context, c *models.Customer) error
	GetCustomer(ctx context.Context, id int64) (*models.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type AppointmentStore interface {
	CreateAppointment(ctx context.Context, a *models.Appointment) error
	GetAppointment(ctx context.Context, id int64) (*models.Appointment, error)
	// ListAppointments returns appointments newest first, filtered by status when non-empty.
	ListAppointments(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, status models.AppointmentStatus) error
	DeleteAppointment(ctx context.Context, id int64) error
}

type ContentStore interface {
	GetContent(ctx context.Context, section string) (*models.ContentSection, error)
	ListContent(ctx context.Context) ([]models.ContentSection, error)
	PutContent(ctx context.Context, c *models.ContentSection) error
}
