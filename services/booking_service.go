// services/booking_service.go
package services

import (
	"context"
	"errors"
	"time"

	"locker-booking/models"
	"locker-booking/store"
	"locker-booking/utils"
)

const placeLockScope = "bookings.place_number"

// BookingService creates bookings behind the place overlap check. Bookings
// are never updated, only created and deleted.
type BookingService struct {
	*resource[models.Booking]

	// Now is the clock "in the future" is measured against.
	Now func() time.Time
}

func NewBookingService(s store.Store) *BookingService {
	return &BookingService{
		resource: &resource[models.Booking]{
			store:    s,
			table:    models.BookingTable,
			notFound: "No booking found with given booking id",
			empty:    "No bookings found",
		},
		Now: time.Now,
	}
}

// Create books a place for the user owning req.Email. The place is locked
// and its bookings read in the insert's transaction, so two overlapping
// requests cannot both succeed.
func (s *BookingService) Create(ctx context.Context, req models.CreateBookingRequest) (models.Booking, error) {
	const op = "services.BookingService.Create"

	var booking models.Booking

	window, err := s.window(req)
	if err != nil {
		return booking, err
	}

	if err := models.FromRequest(&booking, &req); err != nil {
		return booking, err
	}

	err = s.store.Transaction(ctx, func(tx store.Store) error {
		user, err := userByEmail(ctx, tx, req.Email)
		if err != nil {
			return err
		}

		if err := tx.LockKey(ctx, placeLockScope, int64(req.PlaceNumber)); err != nil {
			return storeErr(op, err)
		}

		q := s.table.Where("place_number", req.PlaceNumber)
		q.Lock = true

		var existing []models.Booking
		if err := tx.Find(ctx, &existing, q); err != nil {
			return storeErr(op, err)
		}

		booked := intervals(existing)
		if HasConflict(window, booked) {
			return Conflict("The selected place is already booked for the chosen dates",
				CheckOverlap(window, booked).Messages()...)
		}

		booking.UserID = user.UserID
		if err := tx.Create(ctx, &booking); err != nil {
			return storeErr(op, err)
		}
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// ByEmail lists the bookings of the user owning email.
func (s *BookingService) ByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	user, err := userByEmail(ctx, s.store, models.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	q := s.table.Where("user_id", user.UserID)
	q.Order = "moment_start"
	return s.find(ctx, q, "No bookings found for this user")
}

func (s *BookingService) window(req models.CreateBookingRequest) (Interval, error) {
	start, err := req.MomentStart.Time()
	if err != nil {
		return Interval{}, Invalid("Invalid booking window", utils.FieldError{
			Field: "MomentStart", Message: "Moment Start must be in MySQL DATETIME format (YYYY-MM-DD HH:MM:SS)",
		})
	}
	end, err := req.MomentEnd.Time()
	if err != nil {
		return Interval{}, Invalid("Invalid booking window", utils.FieldError{
			Field: "MomentEnd", Message: "Moment End must be in MySQL DATETIME format (YYYY-MM-DD HH:MM:SS)",
		})
	}

	var fields []utils.FieldError
	if !start.After(s.Now()) {
		fields = append(fields, utils.FieldError{Field: "MomentStart", Message: "Moment Start must be in the future"})
	}
	if !end.After(start) {
		fields = append(fields, utils.FieldError{Field: "MomentEnd", Message: "Moment End must be after Moment Start"})
	}
	if len(fields) > 0 {
		return Interval{}, Invalid("Invalid booking window", fields...)
	}

	return Interval{Start: start, End: end}, nil
}

func userByEmail(ctx context.Context, s store.Store, email string) (models.User, error) {
	const op = "services.userByEmail"

	var user models.User
	if err := s.First(ctx, &user, models.UserTable.Where("email", email)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return user, NotFound("No user found with given email")
		}
		return user, storeErr(op, err)
	}
	return user, nil
}

func intervals(bookings []models.Booking) []Interval {
	out := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, Interval{Start: b.MomentStart, End: b.MomentEnd})
	}
	return out
}
