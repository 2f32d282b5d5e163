package models

import (
	"time"

	"locker-booking/store"
)

type Order struct {
	OrderID         uint       `gorm:"column:order_id;primaryKey" json:"OrderID"`
	BookingID       uint       `gorm:"column:booking_id;index" json:"BookingID"`
	LockerID        uint       `gorm:"column:locker_id;index" json:"LockerID"`
	Price           int        `gorm:"column:price" json:"Price"`
	MomentCreated   time.Time  `gorm:"column:moment_created" json:"MomentCreated"`
	MomentDelivered *time.Time `gorm:"column:moment_delivered" json:"MomentDelivered"`
	MomentGathered  *time.Time `gorm:"column:moment_gathered" json:"MomentGathered"`
}

func (Order) TableName() string { return "orders" }

var OrderTable = store.Table{
	Name:    "orders",
	Key:     "order_id",
	Columns: []string{"booking_id", "locker_id", "price", "moment_created", "moment_delivered", "moment_gathered"},
}

// CreateOrderRequest also serves PUT: an empty MomentDelivered or
// MomentGathered clears the column.
type CreateOrderRequest struct {
	BookingID       uint   `json:"BookingID" column:"booking_id" binding:"required,gt=0"`
	LockerID        uint   `json:"LockerID" column:"locker_id" binding:"required,gt=0"`
	Price           int    `json:"Price" column:"price" binding:"min=0"`
	MomentCreated   Moment `json:"MomentCreated" column:"moment_created" binding:"required,moment"`
	MomentDelivered Moment `json:"MomentDelivered" column:"moment_delivered" binding:"omitempty,moment"`
	MomentGathered  Moment `json:"MomentGathered" column:"moment_gathered" binding:"omitempty,moment"`
}

type PatchOrderRequest struct {
	BookingID       *uint   `json:"BookingID" column:"booking_id" binding:"omitempty,gt=0"`
	LockerID        *uint   `json:"LockerID" column:"locker_id" binding:"omitempty,gt=0"`
	Price           *int    `json:"Price" column:"price" binding:"omitempty,min=0"`
	MomentCreated   *Moment `json:"MomentCreated" column:"moment_created" binding:"omitempty,moment"`
	MomentDelivered *Moment `json:"MomentDelivered" column:"moment_delivered" binding:"omitempty,moment"`
	MomentGathered  *Moment `json:"MomentGathered" column:"moment_gathered" binding:"omitempty,moment"`
}
