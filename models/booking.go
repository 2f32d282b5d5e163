package models

import (
	"time"

	"locker-booking/store"
)

type Booking struct {
	BookingID        uint      `gorm:"column:booking_id;primaryKey" json:"BookingID"`
	UserID           uint      `gorm:"column:user_id;index" json:"UserID"`
	NumberOfGuests   int       `gorm:"column:number_of_guests" json:"NumberOfGuests"`
	NumberOfKeycards int       `gorm:"column:number_of_keycards" json:"NumberOfKeycards"`
	MomentStart      time.Time `gorm:"column:moment_start" json:"MomentStart"`
	MomentEnd        time.Time `gorm:"column:moment_end" json:"MomentEnd"`
	PlaceNumber      int       `gorm:"column:place_number;index" json:"PlaceNumber"`
	CheckedIn        bool      `gorm:"column:checked_in" json:"CheckedIn"`
	Note             string    `gorm:"column:note;size:1000" json:"Note,omitempty"`
}

func (Booking) TableName() string { return "bookings" }

// Bookings are created and deleted only, so no column is writable through
// UPDATE statements.
var BookingTable = store.Table{Name: "bookings", Key: "booking_id"}

type CreateBookingRequest struct {
	Email            string `json:"Email" binding:"required,email"`
	NumberOfGuests   int    `json:"NumberOfGuests" binding:"required,min=1,max=8"`
	NumberOfKeycards int    `json:"NumberOfKeycards" binding:"required,min=1,max=8"`
	MomentStart      Moment `json:"MomentStart" binding:"required,moment"`
	MomentEnd        Moment `json:"MomentEnd" binding:"required,moment"`
	PlaceNumber      int    `json:"PlaceNumber" binding:"required,min=1,max=50"`
	CheckedIn        bool   `json:"CheckedIn"`
	Note             string `json:"Note" binding:"max=1000"`
}

func (r *CreateBookingRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}
