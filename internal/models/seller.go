package models

import "time"

type SellerStatus string

const (
	SellerPending   SellerStatus = "Pending"
	SellerApproved  SellerStatus = "Approved"
	SellerRejected  SellerStatus = "Rejected"
	SellerSuspended SellerStatus = "Suspended"
)

func (s SellerStatus) Valid() bool {
	switch s {
	case SellerPending, SellerApproved, SellerRejected, SellerSuspended:
		return true
	}
	return false
}

type Seller struct {
	ID                 int64        `bson:"_id" json:"id" gorm:"primaryKey"`
	Name               string       `bson:"name" json:"name"`
	BusinessName       string       `bson:"businessName" json:"businessName"`
	Email              string       `bson:"email" json:"email" gorm:"uniqueIndex"`
	Phone              string       `bson:"phone" json:"phone"`
	PasswordHash       string       `bson:"passwordHash" json:"-"` // Hide from JSON responses
	Status             SellerStatus `bson:"status" json:"status" gorm:"index"`
	DocumentsSubmitted []string     `bson:"documentsSubmitted" json:"documentsSubmitted" gorm:"serializer:json"`
	CreatedAt          time.Time    `bson:"createdAt" json:"createdAt"`
}

type Customer struct {
	ID           int64     `bson:"_id" json:"id" gorm:"primaryKey"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email" gorm:"uniqueIndex"`
	Phone        string    `bson:"phone" json:"phone"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
