package services

import (
	"context"

	"locker-booking/models"
	"locker-booking/store"
)

type OrderService struct {
	*resource[models.Order]
}

func NewOrderService(s store.Store) *OrderService {
	return &OrderService{&resource[models.Order]{
		store:    s,
		table:    models.OrderTable,
		notFound: "No order found with given order ID",
		empty:    "No orders found",
		refs: []refRule{
			{Column: "booking_id", Target: models.BookingTable, Msg: "No Booking found with given BookingID"},
			{Column: "locker_id", Target: models.LockerTable, Msg: "No locker found with given LockerID"},
		},
	}}
}

func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	var order models.Order
	if err := models.FromRequest(&order, &req); err != nil {
		return order, err
	}
	if err := s.create(ctx, &order, store.Candidates(req)); err != nil {
		return order, err
	}
	return order, nil
}

func (s *OrderService) Replace(ctx context.Context, id uint, req models.CreateOrderRequest) error {
	return s.replace(ctx, id, store.Candidates(req))
}

func (s *OrderService) Patch(ctx context.Context, id uint, req models.PatchOrderRequest) error {
	return s.patch(ctx, id, store.Candidates(req))
}
