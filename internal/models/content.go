package models

import "time"

// ContentSection is an editable block of homepage copy keyed by section name.
type ContentSection struct {
	Section   string    `bson:"_id" json:"section" gorm:"primaryKey"`
	Content   string    `bson:"content" json:"content"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Section keys rendered by the public site.
const (
	SectionHero          = "hero"
	SectionAbout         = "about"
	SectionServices      = "services"
	SectionAnnouncements = "announcements"
)

// Overview holds the admin dashboard counters.
type Overview struct {
	Medicines          int64            `json:"medicines"`
	AvailableMedicines int64            `json:"availableMedicines"`
	Categories         int64            `json:"categories"`
	Customers          int64            `json:"customers"`
	SellerMedicines    int64            `json:"sellerMedicines"`
	Appointments       map[string]int64 `json:"appointments"`
	Sellers            map[string]int64 `json:"sellers"`
}
