package models

import "locker-booking/store"

type OrderedProduct struct {
	OrderedProductID uint `gorm:"column:ordered_product_id;primaryKey" json:"OrderedProductID"`
	OrderID          uint `gorm:"column:order_id;index" json:"OrderID"`
	ProductID        uint `gorm:"column:product_id;index" json:"ProductID"`
	Amount           int  `gorm:"column:amount" json:"Amount"`
}

func (OrderedProduct) TableName() string { return "ordered_products" }

var OrderedProductTable = store.Table{
	Name:    "ordered_products",
	Key:     "ordered_product_id",
	Columns: []string{"order_id", "product_id", "amount"},
}

type OrderedProductRequest struct {
	OrderID   uint `json:"OrderID" column:"order_id" binding:"required,gt=0"`
	ProductID uint `json:"ProductID" column:"product_id" binding:"required,gt=0"`
	Amount    int  `json:"Amount" column:"amount" binding:"required,min=1"`
}

type PatchOrderedProductRequest struct {
	OrderID   *uint `json:"OrderID" column:"order_id" binding:"omitempty,gt=0"`
	ProductID *uint `json:"ProductID" column:"product_id" binding:"omitempty,gt=0"`
	Amount    *int  `json:"Amount" column:"amount" binding:"omitempty,min=1"`
}
