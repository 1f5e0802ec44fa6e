package models

import "time"

// Medicine is an entry of the hospital pharmacy catalog. Price is in paise.
type Medicine struct {
	ID          int64  `bson:"_id" json:"id" gorm:"primaryKey"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Available   bool   `bson:"available" json:"available"`
	Category    string `bson:"category" json:"category" gorm:"index"`
	Price       int64  `bson:"price" json:"price"`
}

// SellerMedicine is a product listed by an approved third-party seller.
type SellerMedicine struct {
	ID          int64     `bson:"_id" json:"id" gorm:"primaryKey"`
	SellerID    int64     `bson:"sellerId" json:"sellerId" gorm:"index"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Available   bool      `bson:"available" json:"available"`
	Category    string    `bson:"category" json:"category"`
	Price       int64     `bson:"price" json:"price"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// MedicineFilter narrows ListMedicines. The zero value lists the whole catalog by id.
type MedicineFilter struct {
	// Available filters on stock state when set; nil lists both.
	Available   *bool
	Category    string
	Search      string
	SortByPrice bool
}

// AvailableFilter returns a filter restricted to the given stock state.
func AvailableFilter(available bool) MedicineFilter {
	return MedicineFilter{Available: &available}
}
