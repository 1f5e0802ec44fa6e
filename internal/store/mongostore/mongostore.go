// Package mongostore implements store.Store on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/samparc/medical-api/internal/models"
	"github.com/samparc/medical-api/internal/store"
)

const (
	colMedicines       = "medicines"
	colSellerMedicines = "seller_medicines"
	colSellers         = "sellers"
	colCustomers       = "customers"
	colAppointments    = "appointments"
	colContent         = "content"
	colCounters        = "counters"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ store.Store = (*Store)(nil)

// Connect dials MongoDB, selects the database and ensures the unique email indexes.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	s := &Store{client: client, db: client.Database(database)}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	for _, col := range []string{colSellers, colCustomers} {
		_, err := s.db.Collection(col).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("create %s email index: %w", col, err)
		}
	}
	_, err := s.db.Collection(colSellerMedicines).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "sellerId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create seller medicines index: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// nextID atomically increments the named counter and returns the new value.
func (s *Store) nextID(ctx context.Context, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := s.db.Collection(colCounters).
		FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": int64(1)}}, opts).
		Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return counter.Seq, nil
}

func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", what, store.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", what, store.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func (s *Store) insert(ctx context.Context, col string, id *int64, doc any) error {
	next, err := s.nextID(ctx, col)
	if err != nil {
		return err
	}
	*id = next
	_, err = s.db.Collection(col).InsertOne(ctx, doc)
	return translate(err, "insert into "+col)
}

func (s *Store) findOne(ctx context.Context, col string, filter bson.M, out any) error {
	return translate(s.db.Collection(col).FindOne(ctx, filter).Decode(out), "find in "+col)
}

func (s *Store) findAll(ctx context.Context, col string, filter bson.M, sort bson.D, out any) error {
	cursor, err := s.db.Collection(col).Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return translate(err, "find in "+col)
	}
	defer cursor.Close(ctx)
	return translate(cursor.All(ctx, out), "decode "+col)
}

func (s *Store) update(ctx context.Context, col string, id int64, set bson.M) error {
	result, err := s.db.Collection(col).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return translate(err, "update "+col)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("update %s: %w", col, store.ErrNotFound)
	}
	return nil
}

func (s *Store) delete(ctx context.Context, col string, id int64) error {
	result, err := s.db.Collection(col).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err, "delete from "+col)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("delete from %s: %w", col, store.ErrNotFound)
	}
	return nil
}

// --- Medicines ---

func (s *Store) CreateMedicine(ctx context.Context, m *models.Medicine) error {
	return s.insert(ctx, colMedicines, &m.ID, m)
}

func (s *Store) GetMedicine(ctx context.Context, id int64) (*models.Medicine, error) {
	var m models.Medicine
	if err := s.findOne(ctx, colMedicines, bson.M{"_id": id}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) ListMedicines(ctx context.Context, f models.MedicineFilter) ([]models.Medicine, error) {
	filter := bson.M{}
	if f.Available != nil {
		filter["available"] = *f.Available
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		re := containsInsensitive(search)
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"category": re},
		}
	}

	sort := bson.D{{Key: "_id", Value: 1}}
	if f.SortByPrice {
		sort = bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}}
	}

	medicines := make([]models.Medicine, 0)
	if err := s.findAll(ctx, colMedicines, filter, sort, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

func (s *Store) UpdateMedicine(ctx context.Context, m *models.Medicine) error {
	return s.update(ctx, colMedicines, m.ID, bson.M{
		"name":        m.Name,
		"description": m.Description,
		"available":   m.Available,
		"category":    m.Category,
		"price":       m.Price,
	})
}

func (s *Store) DeleteMedicine(ctx context.Context, id int64) error {
	return s.delete(ctx, colMedicines, id)
}

func (s *Store) CreateSellerMedicine(ctx context.Context, m *models.SellerMedicine) error {
	return s.insert(ctx, colSellerMedicines, &m.ID, m)
}

func (s *Store) GetSellerMedicine(ctx context.Context, id int64) (*models.SellerMedicine, error) {
	var m models.SellerMedicine
	if err := s.findOne(ctx, colSellerMedicines, bson.M{"_id": id}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) ListSellerMedicines(ctx context.Context, sellerID int64) ([]models.SellerMedicine, error) {
	filter := bson.M{}
	if sellerID != 0 {
		filter["sellerId"] = sellerID
	}
	medicines := make([]models.SellerMedicine, 0)
	if err := s.findAll(ctx, colSellerMedicines, filter, bson.D{{Key: "_id", Value: 1}}, &medicines); err != nil {
		return nil, err
	}
	return medicines, nil
}

func (s *Store) UpdateSellerMedicine(ctx context.Context, m *models.SellerMedicine) error {
	return s.update(ctx, colSellerMedicines, m.ID, bson.M{
		"name":        m.Name,
		"description": m.Description,
		"available":   m.Available,
		"category":    m.Category,
		"price":       m.Price,
	})
}

func (s *Store) DeleteSellerMedicine(ctx context.Context, id int64) error {
	return s.delete(ctx, colSellerMedicines, id)
}

// --- Sellers ---

func (s *Store) CreateSeller(ctx context.Context, seller *models.Seller) error {
	return s.insert(ctx, colSellers, &seller.ID, seller)
}

func (s *Store) GetSeller(ctx context.Context, id int64) (*models.Seller, error) {
	var seller models.Seller
	if err := s.findOne(ctx, colSellers, bson.M{"_id": id}, &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (s *Store) GetSellerByEmail(ctx context.Context, email string) (*models.Seller, error) {
	var seller models.Seller
	if err := s.findOne(ctx, colSellers, bson.M{"email": email}, &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

func (s *Store) ListSellers(ctx context.Context, status models.SellerStatus) ([]models.Seller, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	sellers := make([]models.Seller, 0)
	if err := s.findAll(ctx, colSellers, filter, bson.D{{Key: "_id", Value: 1}}, &sellers); err != nil {
		return nil, err
	}
	return sellers, nil
}

func (s *Store) UpdateSellerStatus(ctx context.Context, id int64, status models.SellerStatus) error {
	return s.update(ctx, colSellers, id, bson.M{"status": status})
}

func (s *Store) DeleteSeller(ctx context.Context, id int64) error {
	if err := s.delete(ctx, colSellers, id); err != nil {
		return err
	}
	_, err := s.db.Collection(colSellerMedicines).DeleteMany(ctx, bson.M{"sellerId": id})
	return translate(err, "delete seller medicines")
}

// --- Customers ---

func (s *Store) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return s.insert(ctx, colCustomers, &c.ID, c)
}

func (s *Store) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	var c models.Customer
	if err := s.findOne(ctx, colCustomers, bson.M{"_id": id}, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var c models.Customer
	if err := s.findOne(ctx, colCustomers, bson.M{"email": email}, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := make([]models.Customer, 0)
	if err := s.findAll(ctx, colCustomers, bson.M{}, bson.D{{Key: "_id", Value: 1}}, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id int64) error {
	return s.delete(ctx, colCustomers, id)
}

// --- Appointments ---

func (s *Store) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	return s.insert(ctx, colAppointments, &a.ID, a)
}

func (s *Store) GetAppointment(ctx context.Context, id int64) (*models.Appointment, error) {
	var a models.Appointment
	if err := s.findOne(ctx, colAppointments, bson.M{"_id": id}, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) ListAppointments(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	// -1 for descending (newest first)
	sort := bson.D{{Key: "submittedAt", Value: -1}, {Key: "_id", Value: -1}}
	appointments := make([]models.Appointment, 0)
	if err := s.findAll(ctx, colAppointments, filter, sort, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *Store) UpdateAppointmentStatus(ctx context.Context, id int64, status models.AppointmentStatus) error {
	return s.update(ctx, colAppointments, id, bson.M{"status": status})
}

func (s *Store) DeleteAppointment(ctx context.Context, id int64) error {
	return s.delete(ctx, colAppointments, id)
}

// --- Content ---

func (s *Store) GetContent(ctx context.Context, section string) (*models.ContentSection, error) {
	var c models.ContentSection
	if err := s.findOne(ctx, colContent, bson.M{"_id": section}, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListContent(ctx context.Context) ([]models.ContentSection, error) {
	sections := make([]models.ContentSection, 0)
	if err := s.findAll(ctx, colContent, bson.M{}, bson.D{{Key: "_id", Value: 1}}, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *Store) PutContent(ctx context.Context, c *models.ContentSection) error {
	_, err := s.db.Collection(colContent).UpdateOne(ctx,
		bson.M{"_id": c.Section},
		bson.M{"$set": bson.M{"content": c.Content, "updatedAt": c.UpdatedAt}},
		options.Update().SetUpsert(true),
	)
	return translate(err, "put content")
}

func containsInsensitive(search string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
}
