package services

import (
	"context"

	"locker-booking/models"
	"locker-booking/store"
)

type CategoryService struct {
	*resource[models.Category]
	products *resource[models.Product]
}

func NewCategoryService(s store.Store) *CategoryService {
	return &CategoryService{
		resource: &resource[models.Category]{
			store:    s,
			table:    models.CategoryTable,
			notFound: "No category found with given ID",
			empty:    "No categories found",
			unique:   []uniqueRule{{Column: "name", Msg: "Category already exists"}},
		},
		products: &resource[models.Product]{store: s, table: models.ProductTable},
	}
}

// Products lists the products filed under a category.
func (s *CategoryService) Products(ctx context.Context, id uint) ([]models.Product, error) {
	q := models.ProductTable.Where("category_id", id)
	q.Order = models.ProductTable.Key
	return s.products.find(ctx, q, "No products found for given category ID")
}

func (s *CategoryService) Create(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	category := models.Category{Name: req.Name}
	if err := s.create(ctx, &category, store.Candidates(req)); err != nil {
		return category, err
	}
	return category, nil
}

func (s *CategoryService) Replace(ctx context.Context, id uint, req models.CategoryRequest) error {
	return s.replace(ctx, id, store.Candidates(req))
}

func (s *CategoryService) Patch(ctx context.Context, id uint, req models.PatchCategoryRequest) error {
	return s.patch(ctx, id, store.Candidates(req))
}
