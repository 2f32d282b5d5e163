package models

import (
	"database/sql/driver"
	"time"

	"github.com/jinzhu/copier"
)

// MomentLayout is the MySQL DATETIME layout every request timestamp uses.
const MomentLayout = "2006-01-02 15:04:05"

// Moment is a request timestamp ("YYYY-MM-DD HH:MM:SS") in the server's local
// time zone. The empty Moment is NULL.
type Moment string

func (m Moment) Time() (time.Time, error) {
	return time.ParseInLocation(MomentLayout, string(m), time.Local)
}

func (m Moment) Value() (driver.Value, error) {
	if m == "" {
		return nil, nil
	}
	t, err := m.Time()
	if err != nil {
		return nil, err
	}
	return t, nil
}

// MomentConverters lets copier fill time.Time and *time.Time model fields
// from Moment request fields.
var MomentConverters = []copier.TypeConverter{
	{
		SrcType: Moment(""),
		DstType: time.Time{},
		Fn: func(src interface{}) (interface{}, error) {
			m := src.(Moment)
			if m == "" {
				return time.Time{}, nil
			}
			return m.Time()
		},
	},
	{
		SrcType: Moment(""),
		DstType: (*time.Time)(nil),
		Fn: func(src interface{}) (interface{}, error) {
			m := src.(Moment)
			if m == "" {
				return (*time.Time)(nil), nil
			}
			t, err := m.Time()
			if err != nil {
				return nil, err
			}
			return &t, nil
		},
	},
}

// FromRequest copies the matching fields of a request DTO into a model.
func FromRequest(model, req any) error {
	return copier.CopyWithOption(model, req, copier.Option{Converters: MomentConverters})
}
