package models

import (
	"strings"

	"locker-booking/store"
)

type Product struct {
	ProductID     uint   `gorm:"column:product_id;primaryKey" json:"ProductID"`
	CategoryID    uint   `gorm:"column:category_id;index" json:"CategoryID"`
	Name          string `gorm:"column:name;size:100;uniqueIndex" json:"Name"`
	AssetsURL     string `gorm:"column:assets_url;size:100" json:"AssetsURL"`
	Price         int    `gorm:"column:price" json:"Price"`
	Size          string `gorm:"column:size;size:10" json:"Size"`
	AmountInStock int    `gorm:"column:amount_in_stock" json:"AmountInStock"`
}

func (Product) TableName() string { return "products" }

var ProductTable = store.Table{
	Name:    "products",
	Key:     "product_id",
	Columns: []string{"category_id", "name", "assets_url", "price", "size", "amount_in_stock"},
}

// ProductRequest is the body of POST and PUT.
type ProductRequest struct {
	CategoryID    uint   `json:"CategoryID" column:"category_id" binding:"required,gt=0"`
	Name          string `json:"Name" column:"name" binding:"required,notblank,min=1,max=100"`
	AssetsURL     string `json:"AssetsURL" column:"assets_url" binding:"omitempty,url,max=100"`
	Price         int    `json:"Price" column:"price" binding:"min=0"`
	Size          string `json:"Size" column:"size" binding:"max=10"`
	AmountInStock int    `json:"AmountInStock" column:"amount_in_stock" binding:"min=0"`
}

func (r *ProductRequest) Normalize() {
	r.Name = trim(r.Name)
}

type PatchProductRequest struct {
	CategoryID    *uint   `json:"CategoryID" column:"category_id" binding:"omitempty,gt=0"`
	Name          *string `json:"Name" column:"name" binding:"omitempty,notblank,min=1,max=100"`
	AssetsURL     *string `json:"AssetsURL" column:"assets_url" binding:"omitempty,url,max=100"`
	Price         *int    `json:"Price" column:"price" binding:"omitempty,min=0"`
	Size          *string `json:"Size" column:"size" binding:"omitempty,max=10"`
	AmountInStock *int    `json:"AmountInStock" column:"amount_in_stock" binding:"omitempty,min=0"`
}

func (r *PatchProductRequest) Normalize() {
	if r.Name != nil {
		n := trim(*r.Name)
		r.Name = &n
	}
}

func trim(s string) string { return strings.TrimSpace(s) }
