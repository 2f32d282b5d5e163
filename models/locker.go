package models

import (
	"time"

	"locker-booking/store"
)

// Locker is keyed by a caller-assigned LockerID.
type Locker struct {
	LockerID        uint      `gorm:"column:locker_id;primaryKey;autoIncrement:false" json:"LockerID"`
	BookingID       uint      `gorm:"column:booking_id;index" json:"BookingID"`
	MomentDelivered time.Time `gorm:"column:moment_delivered" json:"MomentDelivered"`
}

func (Locker) TableName() string { return "lockers" }

var LockerTable = store.Table{
	Name:    "lockers",
	Key:     "locker_id",
	Columns: []string{"locker_id", "booking_id", "moment_delivered"},
}

type CreateLockerRequest struct {
	LockerID        uint   `json:"LockerID" column:"locker_id" binding:"required,gt=0"`
	BookingID       uint   `json:"BookingID" column:"booking_id" binding:"required,gt=0"`
	MomentDelivered Moment `json:"MomentDelivered" column:"moment_delivered" binding:"required,moment"`
}

type ReplaceLockerRequest struct {
	BookingID       uint   `json:"BookingID" column:"booking_id" binding:"required,gt=0"`
	MomentDelivered Moment `json:"MomentDelivered" column:"moment_delivered" binding:"required,moment"`
}

type PatchLockerRequest struct {
	LockerID        *uint   `json:"LockerID" column:"locker_id" binding:"omitempty,gt=0"`
	BookingID       *uint   `json:"BookingID" column:"booking_id" binding:"omitempty,gt=0"`
	MomentDelivered *Moment `json:"MomentDelivered" column:"moment_delivered" binding:"omitempty,moment"`
}
