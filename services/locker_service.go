package services

import (
	"context"

	"locker-booking/models"
	"locker-booking/store"
)

type LockerService struct {
	*resource[models.Locker]
}

func NewLockerService(s store.Store) *LockerService {
	return &LockerService{&resource[models.Locker]{
		store:    s,
		table:    models.LockerTable,
		notFound: "No locker found with given Locker ID",
		empty:    "No lockers found",
		unique: []uniqueRule{
			{Column: "locker_id", Msg: "Locker ID already exists", CreateMsg: "Locker already in use"},
		},
		refs: []refRule{
			{Column: "booking_id", Target: models.BookingTable, Msg: "No Booking found with given BookingID"},
		},
	}}
}

func (s *LockerService) Create(ctx context.Context, req models.CreateLockerRequest) (models.Locker, error) {
	var locker models.Locker
	if err := models.FromRequest(&locker, &req); err != nil {
		return locker, err
	}
	if err := s.create(ctx, &locker, store.Candidates(req)); err != nil {
		return locker, err
	}
	return locker, nil
}

func (s *LockerService) Replace(ctx context.Context, id uint, req models.ReplaceLockerRequest) error {
	return s.replace(ctx, id, store.Candidates(req))
}

func (s *LockerService) Patch(ctx context.Context, id uint, req models.PatchLockerRequest) error {
	return s.patch(ctx, id, store.Candidates(req))
}
