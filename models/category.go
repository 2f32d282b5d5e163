package models

import "locker-booking/store"

type Category struct {
	CategoryID uint   `gorm:"column:category_id;primaryKey" json:"CategoryID"`
	Name       string `gorm:"column:name;size:100;uniqueIndex" json:"Name"`
}

func (Category) TableName() string { return "product_categories" }

var CategoryTable = store.Table{
	Name:    "product_categories",
	Key:     "category_id",
	Columns: []string{"name"},
}

type CategoryRequest struct {
	Name string `json:"Name" column:"name" binding:"required,notblank,min=1,max=100"`
}

func (r *CategoryRequest) Normalize() {
	r.Name = trim(r.Name)
}

type PatchCategoryRequest struct {
	Name *string `json:"Name" column:"name" binding:"omitempty,notblank,min=1,max=100"`
}

func (r *PatchCategoryRequest) Normalize() {
	if r.Name != nil {
		n := trim(*r.Name)
		r.Name = &n
	}
}
