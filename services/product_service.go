package services

import (
	"context"

	"locker-booking/models"
	"locker-booking/store"
)

type ProductService struct {
	*resource[models.Product]
}

func NewProductService(s store.Store) *ProductService {
	return &ProductService{&resource[models.Product]{
		store:    s,
		table:    models.ProductTable,
		notFound: "No product found with given product ID",
		empty:    "No products found",
		unique:   []uniqueRule{{Column: "name", Msg: "product already exists"}},
		refs: []refRule{
			{Column: "category_id", Target: models.CategoryTable, Msg: "invalid category ID"},
		},
	}}
}

func (s *ProductService) Create(ctx context.Context, req models.ProductRequest) (models.Product, error) {
	var product models.Product
	if err := models.FromRequest(&product, &req); err != nil {
		return product, err
	}
	if err := s.create(ctx, &product, store.Candidates(req)); err != nil {
		return product, err
	}
	return product, nil
}

func (s *ProductService) Replace(ctx context.Context, id uint, req models.ProductRequest) error {
	return s.replace(ctx, id, store.Candidates(req))
}

func (s *ProductService) Patch(ctx context.Context, id uint, req models.PatchProductRequest) error {
	return s.patch(ctx, id, store.Candidates(req))
}
