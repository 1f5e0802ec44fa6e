package models

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "Pending"
	AppointmentConfirmed AppointmentStatus = "Confirmed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// Valid reports whether s is one of the known appointment states.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a consultation request submitted from the contact page.
type Appointment struct {
	ID            int64             `bson:"_id" json:"id" gorm:"primaryKey"`
	PatientName   string            `bson:"patientName" json:"patientName"`
	Phone         string            `bson:"phone" json:"phone"`
	Email         string            `bson:"email" json:"email"`
	Department    string            `bson:"department" json:"department"`
	PreferredDate string            `bson:"preferredDate" json:"preferredDate"` // YYYY-MM-DD
	Message       string            `bson:"message" json:"message"`
	Status        AppointmentStatus `bson:"status" json:"status" gorm:"index"`
	SubmittedAt   time.Time         `bson:"submittedAt" json:"submittedAt"`
}
