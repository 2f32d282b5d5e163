package utils

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locker-booking/models"
)

func validUser() models.CreateUserRequest {
	return models.CreateUserRequest{
		Email:       "anna@example.com",
		Phone:       "06-12345678",
		Firstname:   "Anna",
		Lastname:    "Visser",
		Housenumber: "12a",
		Streetname:  "Main Street",
		Postalcode:  "1234 AB",
		Country:     "Netherlands",
	}
}

func validate(t *testing.T, v any) []FieldError {
	t.Helper()
	RegisterValidators()

	err := binding.Validator.ValidateStruct(v)
	if err == nil {
		return nil
	}
	fields, ok := FieldErrors(err)
	require.True(t, ok, err)
	return fields
}

func TestValidators_User(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateUserRequest)
		want   []FieldError
	}{
		{name: "valid", mutate: func(*models.CreateUserRequest) {}},
		{
			name:   "german phone with country code",
			mutate: func(r *models.CreateUserRequest) { r.Phone = "+49 30 1234567" },
		},
		{
			name:   "foreign phone",
			mutate: func(r *models.CreateUserRequest) { r.Phone = "+44 20 7946 0958" },
			want: []FieldError{{Field: "Phone", Message: "Invalid phone number format. Please enter a valid Dutch or German phone number."}},
		},
		{
			name:   "short phone",
			mutate: func(r *models.CreateUserRequest) { r.Phone = "0612" },
			want: []FieldError{{Field: "Phone", Message: "Invalid phone number format. Please enter a valid Dutch or German phone number."}},
		},
		{
			name:   "missing email",
			mutate: func(r *models.CreateUserRequest) { r.Email = "" },
			want:   []FieldError{{Field: "Email", Message: "Email is required"}},
		},
		{
			name:   "short firstname",
			mutate: func(r *models.CreateUserRequest) { r.Firstname = "Al" },
			want:   []FieldError{{Field: "Firstname", Message: "Firstname must be at least 3 characters long"}},
		},
		{
			name:   "street with symbols",
			mutate: func(r *models.CreateUserRequest) { r.Streetname = "Main <Street>" },
			want:   []FieldError{{Field: "Streetname", Message: "Streetname contains invalid characters"}},
		},
		{
			name:   "country with digits",
			mutate: func(r *models.CreateUserRequest) { r.Country = "Land 42" },
			want:   []FieldError{{Field: "Country", Message: "Country contains invalid characters"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUser()
			tt.mutate(&req)
			assert.Equal(t, tt.want, validate(t, &req))
		})
	}
}

func TestValidators_Booking(t *testing.T) {
	req := models.CreateBookingRequest{
		Email:            "anna@example.com",
		NumberOfGuests:   9,
		NumberOfKeycards: 1,
		MomentStart:      "2025-03-13T10:00:00",
		MomentEnd:        "2025-03-13 12:00:00",
		PlaceNumber:      5,
	}

	assert.Equal(t, []FieldError{
		{Field: "NumberOfGuests", Message: "NumberOfGuests must be at most 8"},
		{Field: "MomentStart", Message: "MomentStart must be in MySQL DATETIME format (YYYY-MM-DD HH:MM:SS)"},
	}, validate(t, &req))
}

func TestValidators_PatchSkipsAbsentFields(t *testing.T) {
	assert.Nil(t, validate(t, &models.PatchProductRequest{}))

	bad := "not a url"
	assert.Equal(t,
		[]FieldError{{Field: "AssetsURL", Message: "AssetsURL must be a valid URL"}},
		validate(t, &models.PatchProductRequest{AssetsURL: &bad}),
	)
}

func TestValidators_BlankName(t *testing.T) {
	want := []FieldError{{Field: "Name", Message: "Name cannot be blank"}}

	assert.Equal(t, want, validate(t, &models.CategoryRequest{Name: "   "}))
	assert.Equal(t, want, validate(t, &models.ProductRequest{CategoryID: 1, Name: "\t \n"}))

	blank := " "
	assert.Equal(t, want, validate(t, &models.PatchCategoryRequest{Name: &blank}))
	assert.Equal(t, want, validate(t, &models.PatchProductRequest{Name: &blank}))

	name := " Chips "
	assert.Nil(t, validate(t, &models.PatchProductRequest{Name: &name}))
}

func TestFieldErrors_NotValidation(t *testing.T) {
	_, ok := FieldErrors(assert.AnError)
	assert.False(t, ok)
}
