// Package sqlstore implements store.Store with gorm on Postgres or SQLite.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/samparc/medical-api/internal/models"
	"github.com/samparc/medical-api/internal/store"
)

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// Open connects with the named driver ("postgres" or "sqlite") and migrates the schema.
func Open(driver, dsn string) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// One connection keeps an in-memory database alive and serializes writers.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(
		&models.Medicine{},
		&models.SellerMedicine{},
		&models.Seller{},
		&models.Customer{},
		&models.Appointment{},
		&models.ContentSection{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, store.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, store.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// affected turns an update/delete result into ErrNotFound when no row matched.
func affected(res *gorm.DB, what string) error {
	if res.Error != nil {
		return translate(res.Error, what)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", what, store.ErrNotFound)
	}
	return nil
}

func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(q)) + "%"
}

// --- Medicines ---

func (s *Store) CreateMedicine(ctx context.Context, m *models.Medicine) error {
	return translate(s.db.WithContext(ctx).Create(m).Error, "create medicine")
}

func (s *Store) GetMedicine(ctx context.Context, id int64) (*models.Medicine, error) {
	var m models.Medicine
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "get medicine")
	}
	return &m, nil
}

func (s *Store) ListMedicines(ctx context.Context, f models.MedicineFilter) ([]models.Medicine, error) {
	q := s.db.WithContext(ctx).Model(&models.Medicine{})
	if f.Available != nil {
		q = q.Where("available = ?", *f.Available)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		p := likePattern(search)
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\'`, p, p, p)
	}
	if f.SortByPrice {
		q = q.Order("price ASC").Order("id ASC")
	} else {
		q = q.Order("id ASC")
	}

	medicines := make([]models.Medicine, 0)
	if err := q.Find(&medicines).Error; err != nil {
		return nil, translate(err, "list medicines")
	}
	return medicines, nil
}

func (s *Store) UpdateMedicine(ctx context.Context, m *models.Medicine) error {
	res := s.db.WithContext(ctx).Model(&models.Medicine{}).Where("id = ?", m.ID).
		Select("name", "description", "available", "category", "price").
		Updates(m)
	return affected(res, "update medicine")
}

func (s *Store) DeleteMedicine(ctx context.Context, id int64) error {
	return affected(s.db.WithContext(ctx).Delete(&models.Medicine{}, id), "delete medicine")
}

func (s *Store) CreateSellerMedicine(ctx context.Context, m *models.SellerMedicine) error {
	return translate(s.db.WithContext(ctx).Create(m).Error, "create seller medicine")
}

func (s *Store) GetSellerMedicine(ctx context.Context, id int64) (*models.SellerMedicine, error) {
	var m models.SellerMedicine
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "get seller medicine")
	}
	return &m, nil
}

func (s *Store) ListSellerMedicines(ctx context.Context, sellerID int64) ([]models.SellerMedicine, error) {
	q := s.db.WithContext(ctx).Order("id ASC")
	if sellerID != 0 {
		q = q.Where("seller_id = ?", sellerID)
	}
	medicines := make([]models.SellerMedicine, 0)
	if err := q.Find(&medicines).Error; err != nil {
		return nil, translate(err, "list seller medicines")
	}
	return medicines, nil
}

func (s *Store) UpdateSellerMedicine(ctx context.Context, m *models.SellerMedicine) error {
	res := s.db.WithContext(ctx).Model(&models.SellerMedicine{}).Where("id = ?", m.ID).
		Select("name", "description", "available", "category", "price").
		Updates(m)
	return affected(res, "update seller medicine")
}

func (s *Store) DeleteSellerMedicine(ctx context.Context, id int64) error {
	return affected(s.db.WithContext(ctx).Delete(&models.SellerMedicine{}, id), "delete seller medicine")
}

// --- Sellers ---

func (s *Store) CreateSeller(ctx context.Context, seller *models.Seller) error {
	return translate(s.db.WithContext(ctx).Create(seller).Error, "create seller")
}

func (s *Store) GetSeller(ctx context.Context, id int64) (*models.Seller, error) {
	var seller models.Seller
	if err := s.db.WithContext(ctx).First(&seller, id).Error; err != nil {
		return nil, translate(err, "get seller")
	}
	return &seller, nil
}

func (s *Store) GetSellerByEmail(ctx context.Context, email string) (*models.Seller, error) {
	var seller models.Seller
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&seller).Error; err != nil {
		return nil, translate(err, "get seller by email")
	}
	return &seller, nil
}

func (s *Store) ListSellers(ctx context.Context, status models.SellerStatus) ([]models.Seller, error) {
	q := s.db.WithContext(ctx).Order("id ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	sellers := make([]models.Seller, 0)
	if err := q.Find(&sellers).Error; err != nil {
		return nil, translate(err, "list sellers")
	}
	return sellers, nil
}

func (s *Store) UpdateSellerStatus(ctx context.Context, id int64, status models.SellerStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Seller{}).Where("id = ?", id).Update("status", status)
	return affected(res, "update seller status")
}

func (s *Store) DeleteSeller(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := affected(tx.Delete(&models.Seller{}, id), "delete seller"); err != nil {
			return err
		}
		return translate(tx.Where("seller_id = ?", id).Delete(&models.SellerMedicine{}).Error, "delete seller medicines")
	})
}

// --- Customers ---

func (s *Store) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return translate(s.db.WithContext(ctx).Create(c).Error, "create customer")
}

func (s *Store) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, "get customer")
	}
	return &c, nil
}

func (s *Store) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		return nil, translate(err, "get customer by email")
	}
	return &c, nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&customers).Error; err != nil {
		return nil, translate(err, "list customers")
	}
	return customers, nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id int64) error {
	return affected(s.db.WithContext(ctx).Delete(&models.Customer{}, id), "delete customer")
}

// --- Appointments ---

func (s *Store) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	return translate(s.db.WithContext(ctx).Create(a).Error, "create appointment")
}

func (s *Store) GetAppointment(ctx context.Context, id int64) (*models.Appointment, error) {
	var a models.Appointment
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, translate(err, "get appointment")
	}
	return &a, nil
}

func (s *Store) ListAppointments(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error) {
	q := s.db.WithContext(ctx).Order("submitted_at DESC").Order("id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	appointments := make([]models.Appointment, 0)
	if err := q.Find(&appointments).Error; err != nil {
		return nil, translate(err, "list appointments")
	}
	return appointments, nil
}

func (s *Store) UpdateAppointmentStatus(ctx context.Context, id int64, status models.AppointmentStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	return affected(res, "update appointment status")
}

func (s *Store) DeleteAppointment(ctx context.Context, id int64) error {
	return affected(s.db.WithContext(ctx).Delete(&models.Appointment{}, id), "delete appointment")
}

// --- Content ---

func (s *Store) GetContent(ctx context.Context, section string) (*models.ContentSection, error) {
	var c models.ContentSection
	if err := s.db.WithContext(ctx).Where("section = ?", section).First(&c).Error; err != nil {
		return nil, translate(err, "get content")
	}
	return &c, nil
}

func (s *Store) ListContent(ctx context.Context) ([]models.ContentSection, error) {
	sections := make([]models.ContentSection, 0)
	if err := s.db.WithContext(ctx).Order("section ASC").Find(&sections).Error; err != nil {
		return nil, translate(err, "list content")
	}
	return sections, nil
}

func (s *Store) PutContent(ctx context.Context, c *models.ContentSection) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(c).Error
	return translate(err, "put content")
}
