package services

import (
	"context"

	"locker-booking/models"
	"locker-booking/store"
)

type OrderedProductService struct {
	*resource[models.OrderedProduct]
}

func NewOrderedProductService(s store.Store) *OrderedProductService {
	return &OrderedProductService{&resource[models.OrderedProduct]{
		store:    s,
		table:    models.OrderedProductTable,
		notFound: "No ordered product found with given ID",
		empty:    "No ordered products found",
		refs: []refRule{
			{Column: "order_id", Target: models.OrderTable, Msg: "No order found with given OrderID"},
			{Column: "product_id", Target: models.ProductTable, Msg: "No product found with given ProductID"},
		},
	}}
}

// ByOrder lists the products of one order.
func (s *OrderedProductService) ByOrder(ctx context.Context, orderID uint) ([]models.OrderedProduct, error) {
	q := s.table.Where("order_id", orderID)
	q.Order = s.table.Key
	return s.find(ctx, q, "No ordered products found for given OrderID")
}

func (s *OrderedProductService) Create(ctx context.Context, req models.OrderedProductRequest) (models.OrderedProduct, error) {
	var op models.OrderedProduct
	if err := models.FromRequest(&op, &req); err != nil {
		return op, err
	}
	if err := s.create(ctx, &op, store.Candidates(req)); err != nil {
		return op, err
	}
	return op, nil
}

func (s *OrderedProductService) Replace(ctx context.Context, id uint, req models.OrderedProductRequest) error {
	return s.replace(ctx, id, store.Candidates(req))
}

func (s *OrderedProductService) Patch(ctx context.Context, id uint, req models.PatchOrderedProductRequest) error {
	return s.patch(ctx, id, store.Candidates(req))
}
