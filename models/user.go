package models

import (
	"strings"

	"locker-booking/store"
)

type User struct {
	UserID      uint   `gorm:"column:user_id;primaryKey" json:"UserID"`
	Email       string `gorm:"column:email;size:255;uniqueIndex" json:"Email"`
	Phone       string `gorm:"column:phone;size:20" json:"Phone"`
	Firstname   string `gorm:"column:firstname;size:32" json:"Firstname"`
	Lastname    string `gorm:"column:lastname;size:32" json:"Lastname"`
	Housenumber string `gorm:"column:housenumber;size:6" json:"Housenumber"`
	Streetname  string `gorm:"column:streetname;size:30" json:"Streetname"`
	Postalcode  string `gorm:"column:postalcode;size:10" json:"Postalcode"`
	Country     string `gorm:"column:country;size:30" json:"Country"`
}

func (User) TableName() string { return "users" }

var UserTable = store.Table{
	Name: "users",
	Key:  "user_id",
	Columns: []string{
		"email", "phone", "firstname", "lastname",
		"housenumber", "streetname", "postalcode", "country",
	},
}

// UserFilters maps the accepted ?filter= values to their columns.
var UserFilters = map[string]string{
	"email":       "email",
	"phone":       "phone",
	"lastname":    "lastname",
	"firstname":   "firstname",
	"country":     "country",
	"postalcode":  "postalcode",
	"housenumber": "housenumber",
}

type CreateUserRequest struct {
	Email       string `json:"Email" column:"email" binding:"required,email"`
	Phone       string `json:"Phone" column:"phone" binding:"required,phone"`
	Firstname   string `json:"Firstname" column:"firstname" binding:"required,min=3,max=32"`
	Lastname    string `json:"Lastname" column:"lastname" binding:"required,min=3,max=32"`
	Housenumber string `json:"Housenumber" column:"housenumber" binding:"required,min=1,max=6"`
	Streetname  string `json:"Streetname" column:"streetname" binding:"required,min=3,max=30,streetname"`
	Postalcode  string `json:"Postalcode" column:"postalcode" binding:"required,min=4,max=10,postalcode"`
	Country     string `json:"Country" column:"country" binding:"required,min=4,max=30,country"`
}

func (r *CreateUserRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
	r.Phone = DigitsOnly(r.Phone)
}

// ReplaceUserRequest carries every user column; PUT uses the same rules as POST.
type ReplaceUserRequest CreateUserRequest

func (r *ReplaceUserRequest) Normalize() {
	(*CreateUserRequest)(r).Normalize()
}

type PatchUserRequest struct {
	Email       *string `json:"Email" column:"email" binding:"omitempty,email"`
	Phone       *string `json:"Phone" column:"phone" binding:"omitempty,phone"`
	Firstname   *string `json:"Firstname" column:"firstname" binding:"omitempty,min=3,max=32"`
	Lastname    *string `json:"Lastname" column:"lastname" binding:"omitempty,min=3,max=32"`
	Housenumber *string `json:"Housenumber" column:"housenumber" binding:"omitempty,min=1,max=6"`
	Streetname  *string `json:"Streetname" column:"streetname" binding:"omitempty,min=3,max=30,streetname"`
	Postalcode  *string `json:"Postalcode" column:"postalcode" binding:"omitempty,min=4,max=10,postalcode"`
	Country     *string `json:"Country" column:"country" binding:"omitempty,min=4,max=30,country"`
}

func (r *PatchUserRequest) Normalize() {
	if r.Email != nil {
		e := NormalizeEmail(*r.Email)
		r.Email = &e
	}
	if r.Phone != nil {
		p := DigitsOnly(*r.Phone)
		r.Phone = &p
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DigitsOnly strips everything but 0-9, so "+31 6-1234 5678" becomes "31612345678".
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
